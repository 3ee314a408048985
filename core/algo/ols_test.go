package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFitOLSExactRecovery fits data generated from a known linear rule
// and checks that the coefficients come back.
func TestFitOLSExactRecovery(t *testing.T) {
	// y = 2 + 3*x1 - 0.5*x2, no noise.
	features := [][]float64{
		{1, 2}, {2, 1}, {3, 5}, {4, 2}, {5, 7}, {6, 3}, {7, 9}, {8, 4},
	}
	y := make([]float64, len(features))
	for i, row := range features {
		y[i] = 2 + 3*row[0] - 0.5*row[1]
	}

	fit, err := FitOLS(features, y)
	require.NoError(t, err)
	require.Len(t, fit.Coefficients, 3)

	assert.InDelta(t, 2.0, fit.Coefficients[0], 1e-8)
	assert.InDelta(t, 3.0, fit.Coefficients[1], 1e-8)
	assert.InDelta(t, -0.5, fit.Coefficients[2], 1e-8)
	assert.InDelta(t, 1.0, fit.RSquared, 1e-8)

	for i := range y {
		assert.InDelta(t, y[i], fit.Fitted[i], 1e-8)
		assert.InDelta(t, 0.0, fit.Residuals[i], 1e-8)
	}
}

// TestFitOLSNoisyFit checks inference fields on an imperfect fit.
func TestFitOLSNoisyFit(t *testing.T) {
	features := [][]float64{
		{1, 1}, {2, 3}, {3, 2}, {4, 6}, {5, 4}, {6, 9}, {7, 5}, {8, 12}, {9, 7}, {10, 15},
	}
	noise := []float64{0.3, -0.2, 0.1, -0.4, 0.2, 0.0, -0.1, 0.3, -0.3, 0.1}
	y := make([]float64, len(features))
	for i, row := range features {
		y[i] = 1 + 0.8*row[0] + 0.2*row[1] + noise[i]
	}

	fit, err := FitOLS(features, y)
	require.NoError(t, err)

	assert.Greater(t, fit.RSquared, 0.9)
	assert.Less(t, fit.RSquared, 1.0)
	for j := range fit.Coefficients {
		assert.Positive(t, fit.StdErrs[j])
		assert.InDelta(t, fit.Coefficients[j]/fit.StdErrs[j], fit.TValues[j], 1e-9)
		assert.GreaterOrEqual(t, fit.PValues[j], 0.0)
		assert.LessOrEqual(t, fit.PValues[j], 1.0)
	}
	assert.Len(t, fit.Residuals, len(y))
}

// TestFitOLSTooFewObservations verifies the degrees-of-freedom guard.
func TestFitOLSTooFewObservations(t *testing.T) {
	features := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	y := []float64{1, 2, 3}
	_, err := FitOLS(features, y)
	assert.Error(t, err)
}

// TestFitOLSMismatchedRows verifies shape validation.
func TestFitOLSMismatchedRows(t *testing.T) {
	_, err := FitOLS([][]float64{{1}}, []float64{1, 2})
	assert.Error(t, err)

	_, err = FitOLS([][]float64{{1, 2}, {3}, {4, 5}, {6, 7}, {8, 9}}, []float64{1, 2, 3, 4, 5})
	assert.Error(t, err)
}
