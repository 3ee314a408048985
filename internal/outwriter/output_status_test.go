package outwriter

import (
	"bytes"
	"testing"

	"github.com/angela-xuanye/MSDS-Colorado/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCacheStatusText(t *testing.T) {
	status := schema.CacheStatus{
		Backend:    "sqlite",
		Location:   "/home/user/.shootings_cache.db",
		EntryCount: 1,
		TotalBytes: 4096,
		OldestUnix: 1700000000,
		NewestUnix: 1700000000,
	}

	var buf bytes.Buffer
	err := writeCacheStatusText(&buf, status)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Backend:  sqlite")
	assert.Contains(t, out, ".shootings_cache.db")
	assert.Contains(t, out, "Entries:  1")
	assert.Contains(t, out, "4096 bytes")
}

func TestWriteCacheStatusTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := writeCacheStatusText(&buf, schema.CacheStatus{Backend: "none"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Entries:  0")
	assert.NotContains(t, out, "Size:")
}
