package outwriter

import (
	"testing"

	"github.com/angela-xuanye/MSDS-Colorado/internal/contract"
	"github.com/stretchr/testify/assert"
)

// testConfig returns a config for writer tests. Colors are off so the
// assertions see plain label text, and the width override keeps the
// table layout independent of the test terminal.
func testConfig() *contract.Config {
	return &contract.Config{
		Precision: 1,
		Width:     120,
	}
}

func TestCreateFormatters(t *testing.T) {
	fmtFloat, fmtRate := createFormatters(1)
	assert.Equal(t, "12.3", fmtFloat(12.345))
	assert.Equal(t, "0.123", fmtRate(0.12345))

	fmtFloat, fmtRate = createFormatters(2)
	assert.Equal(t, "12.35", fmtFloat(12.345))
	assert.Equal(t, "0.1235", fmtRate(0.12345))
}

func TestRateLabel(t *testing.T) {
	assert.Equal(t, contract.LowValue, rateLabel(0.05, false))
	assert.Equal(t, contract.SevereValue, rateLabel(0.5, false))
	// Colored output still carries the plain text.
	assert.Contains(t, rateLabel(0.5, true), contract.SevereValue)
}
