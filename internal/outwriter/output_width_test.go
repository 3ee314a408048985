package outwriter

import (
	"testing"

	"github.com/angela-xuanye/MSDS-Colorado/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestTerminalWidthOverride(t *testing.T) {
	assert.Equal(t, 80, terminalWidth(&contract.Config{Width: 80}))
	assert.Equal(t, 200, terminalWidth(&contract.Config{Width: 200}))
}

func TestTerminalWidthAutoDetect(t *testing.T) {
	// Without an override the width comes from the terminal or the
	// fallback, both positive.
	assert.Positive(t, terminalWidth(&contract.Config{}))
}
