package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{
			name:     "zero rate",
			input:    0.0,
			expected: LowValue,
		},
		{
			name:     "just before moderate",
			input:    0.149,
			expected: LowValue,
		},
		{
			name:     "exactly moderate",
			input:    0.15,
			expected: ModerateValue,
		},
		{
			name:     "just before high",
			input:    0.219,
			expected: ModerateValue,
		},
		{
			name:     "exactly high",
			input:    0.22,
			expected: HighValue,
		},
		{
			name:     "just before severe",
			input:    0.299,
			expected: HighValue,
		},
		{
			name:     "exactly severe",
			input:    0.30,
			expected: SevereValue,
		},
		{
			name:     "everyone died",
			input:    1.0,
			expected: SevereValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		label string
	}{
		{"low", 0.05, LowValue},
		{"moderate", 0.18, ModerateValue},
		{"high", 0.25, HighValue},
		{"severe", 0.40, SevereValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorLabel(tt.rate)
			// Should contain the plain label
			assert.Contains(t, result, tt.label)
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	// Empty path means stdout.
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	// A real path gets created.
	path := filepath.Join(t.TempDir(), "out.csv")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.True(t, strings.HasSuffix(f.Name(), "out.csv"))
}

func TestGetCacheDBFilePath(t *testing.T) {
	path := GetCacheDBFilePath()
	assert.True(t, strings.HasSuffix(path, ".shootings_cache.db"))
}
