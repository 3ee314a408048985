// Package algo holds the numeric routines behind the analyzer.
package algo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// FitResult holds an ordinary-least-squares fit. Slices are indexed by
// term: intercept first, then one entry per feature column.
type FitResult struct {
	Coefficients []float64
	StdErrs      []float64
	TValues      []float64
	PValues      []float64
	RSquared     float64
	Fitted       []float64
	Residuals    []float64
}

// FitOLS regresses y on the feature columns with an intercept. Every
// observation must carry the same number of features. Requires more
// observations than terms, otherwise the residual variance has no
// degrees of freedom.
func FitOLS(features [][]float64, y []float64) (*FitResult, error) {
	n := len(y)
	if n == 0 || len(features) != n {
		return nil, fmt.Errorf("need matching observations, got %d targets and %d feature rows", n, len(features))
	}
	p := len(features[0]) + 1 // + intercept
	if n <= p {
		return nil, fmt.Errorf("need more than %d observations for %d terms, got %d", p, p, n)
	}

	// 1. Assemble the design matrix with a leading ones column.
	design := mat.NewDense(n, p, nil)
	for i, row := range features {
		if len(row) != p-1 {
			return nil, fmt.Errorf("feature row %d has %d columns, want %d", i, len(row), p-1)
		}
		design.Set(i, 0, 1)
		for j, v := range row {
			design.Set(i, j+1, v)
		}
	}
	target := mat.NewVecDense(n, y)

	// 2. Solve the least-squares system (QR under the hood).
	var beta mat.VecDense
	if err := beta.SolveVec(design, target); err != nil {
		return nil, fmt.Errorf("solve least squares: %w", err)
	}

	// 3. Fitted values and residuals.
	var fittedVec mat.VecDense
	fittedVec.MulVec(design, &beta)

	fitted := make([]float64, n)
	residuals := make([]float64, n)
	rss := 0.0
	for i := range n {
		fitted[i] = fittedVec.AtVec(i)
		residuals[i] = y[i] - fitted[i]
		rss += residuals[i] * residuals[i]
	}

	// 4. Coefficient covariance: s^2 * (X'X)^-1.
	var xtx mat.Dense
	xtx.Mul(design.T(), design)
	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("invert normal matrix: %w", err)
	}
	sigma2 := rss / float64(n-p)

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - p)}
	coeffs := make([]float64, p)
	stdErrs := make([]float64, p)
	tValues := make([]float64, p)
	pValues := make([]float64, p)
	for j := range p {
		coeffs[j] = beta.AtVec(j)
		stdErrs[j] = math.Sqrt(sigma2 * xtxInv.At(j, j))
		if stdErrs[j] > 0 {
			tValues[j] = coeffs[j] / stdErrs[j]
			pValues[j] = 2 * tDist.Survival(math.Abs(tValues[j]))
		} else {
			// Exact fit on this term: no sampling variance to test.
			tValues[j] = math.Inf(sign(coeffs[j]))
			pValues[j] = 0
		}
	}

	// 5. R^2 against the mean-only model.
	meanY := stat.Mean(y, nil)
	tss := 0.0
	for _, v := range y {
		d := v - meanY
		tss += d * d
	}
	rSquared := 1.0
	if tss > 0 {
		rSquared = 1 - rss/tss
	}

	return &FitResult{
		Coefficients: coeffs,
		StdErrs:      stdErrs,
		TValues:      tValues,
		PValues:      pValues,
		RSquared:     rSquared,
		Fitted:       fitted,
		Residuals:    residuals,
	}, nil
}

func sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}
