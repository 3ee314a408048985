package core

import "context"

type contextKey string

const suppressHeaderKey contextKey = "suppressHeader"

// WithSuppressHeader marks the context so pipeline runs skip their
// stderr status lines. Used by the MCP surface where stderr noise
// would interleave with protocol traffic.
func WithSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

// isHeaderSuppressed reports whether status lines should be skipped.
func isHeaderSuppressed(ctx context.Context) bool {
	v, ok := ctx.Value(suppressHeaderKey).(bool)
	return ok && v
}
