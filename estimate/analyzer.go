package estimate

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/runeword/internal/options"
)

// Analyze fits every model to samples and ranks them by R².
//
// Parameters:
//   - samples: Measured decode calls, at least two
//   - opts: Optional configuration (WithFeature)
//
// Returns:
//   - *Result: Best-fit model and all candidates
//   - error: Option error or too few samples
func Analyze(samples []Sample, opts ...AnalyzeOption) (*Result, error) {
	cfg := defaultAnalyzeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	if len(samples) < 2 {
		return nil, fmt.Errorf("insufficient samples for regression: %d", len(samples))
	}

	x := make([]float64, len(samples))
	y := make([]float64, len(samples))
	for i, s := range samples {
		x[i] = cfg.Feature.value(s)
		y[i] = float64(s.Cost)
	}

	models := []*Model{
		fitLinear(x, y),
		fitPolynomial(x, y),
	}
	if m := fitLogarithmic(x, y); m != nil {
		models = append(models, m)
	}

	slices.SortStableFunc(models, func(a, b *Model) int {
		switch {
		case a.RSquared > b.RSquared:
			return -1
		case a.RSquared < b.RSquared:
			return 1
		default:
			return 0
		}
	})

	return &Result{
		Feature:   cfg.Feature,
		BestFit:   models[0],
		AllModels: models,
		Samples:   len(samples),
	}, nil
}

// fitLinear fits cost = a + b*x by least squares. A constant x yields b = 0.
func fitLinear(x, y []float64) *Model {
	a, b := leastSquares(x, y)
	est := NewLinearEstimator(a, b)

	return &Model{
		Type:         ModelTypeLinear,
		Coefficients: est.Coefficients(),
		RSquared:     calculateRSquared(y, predict(est, x)),
		RMSE:         calculateRMSE(y, predict(est, x)),
		Formula:      fmt.Sprintf("cost = %.2f + %.2f*x", a, b),
		Estimator:    est,
	}
}

// fitPolynomial fits cost = a + b*x + c*x² by solving the normal equations
// with Cramer's rule. It degrades to a linear fit (c = 0) when there are
// fewer than three samples or the system is singular.
func fitPolynomial(x, y []float64) *Model {
	n := float64(len(x))

	var a, b, c float64
	var sumX, sumX2, sumX3, sumX4, sumY, sumXY, sumX2Y float64
	for i := range x {
		xi := x[i]
		xi2 := xi * xi
		sumX += xi
		sumX2 += xi2
		sumX3 += xi2 * xi
		sumX4 += xi2 * xi2
		sumY += y[i]
		sumXY += xi * y[i]
		sumX2Y += xi2 * y[i]
	}

	// [n     sumX  sumX2] [a]   [sumY  ]
	// [sumX  sumX2 sumX3] [b] = [sumXY ]
	// [sumX2 sumX3 sumX4] [c]   [sumX2Y]
	det := det3(n, sumX, sumX2, sumX, sumX2, sumX3, sumX2, sumX3, sumX4)
	if len(x) < 3 || math.Abs(det) < 1e-9 {
		a, b = leastSquares(x, y)
	} else {
		a = det3(sumY, sumX, sumX2, sumXY, sumX2, sumX3, sumX2Y, sumX3, sumX4) / det
		b = det3(n, sumY, sumX2, sumX, sumXY, sumX3, sumX2, sumX2Y, sumX4) / det
		c = det3(n, sumX, sumY, sumX, sumX2, sumXY, sumX2, sumX3, sumX2Y) / det
	}

	est := NewPolynomialEstimator(a, b, c)
	predicted := predict(est, x)

	return &Model{
		Type:         ModelTypePolynomial,
		Coefficients: est.Coefficients(),
		RSquared:     calculateRSquared(y, predicted),
		RMSE:         calculateRMSE(y, predicted),
		Formula:      fmt.Sprintf("cost = %.2f + %.2f*x + %.4f*x²", a, b, c),
		Estimator:    est,
	}
}

// fitLogarithmic fits cost = a + b*ln(x). ln is undefined at x <= 0, so it
// returns nil unless every sample has x > 0; its R² is then ranked on the
// same samples as the other models.
func fitLogarithmic(x, y []float64) *Model {
	lx := make([]float64, len(x))
	for i := range x {
		if x[i] <= 0 {
			return nil
		}
		lx[i] = math.Log(x[i])
	}
	ly := y

	a, b := leastSquares(lx, ly)
	est := NewLogarithmicEstimator(a, b)
	predicted := make([]float64, len(lx))
	for i := range lx {
		predicted[i] = a + b*lx[i]
	}

	return &Model{
		Type:         ModelTypeLogarithmic,
		Coefficients: est.Coefficients(),
		RSquared:     calculateRSquared(ly, predicted),
		RMSE:         calculateRMSE(ly, predicted),
		Formula:      fmt.Sprintf("cost = %.2f + %.2f*ln(x)", a, b),
		Estimator:    est,
	}
}

func leastSquares(x, y []float64) (a, b float64) {
	n := float64(len(x))
	if n == 0 {
		return 0, 0
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	denom := sumX2 - n*meanX*meanX
	if math.Abs(denom) < 1e-12 {
		return meanY, 0
	}
	b = (sumXY - n*meanX*meanY) / denom
	a = meanY - b*meanX

	return a, b
}

func det3(a11, a12, a13, a21, a22, a23, a31, a32, a33 float64) float64 {
	return a11*(a22*a33-a23*a32) - a12*(a21*a33-a23*a31) + a13*(a21*a32-a22*a31)
}

func predict(est Estimator, x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = est.Estimate(v)
	}

	return out
}

// calculateRSquared returns 1 - SSres/SStot, or 0 when the observations are constant.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := calculateMean(observed)
	var ssTot, ssRes float64
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}
	if ssTot == 0 {
		return 0
	}

	return 1.0 - ssRes/ssTot
}

func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	var sumSq float64
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
