package estimate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func samplesFrom(xs []int, f func(x float64) float64) []Sample {
	out := make([]Sample, 0, len(xs))
	for _, x := range xs {
		out = append(out, Sample{AttributeCount: x, Digits: 60 + x, Cost: uint64(math.Round(f(float64(x))))})
	}

	return out
}

func TestAnalyze_Linear(t *testing.T) {
	samples := samplesFrom([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, func(x float64) float64 { return 21000 + 40*x })

	result, err := Analyze(samples)
	require.NoError(t, err)
	require.Equal(t, FeatureAttributes, result.Feature)
	require.Equal(t, 9, result.Samples)
	// x = 0 is sampled, so no logarithmic model
	require.Len(t, result.AllModels, 2)
	require.Same(t, result.BestFit, result.AllModels[0])

	for i := 1; i < len(result.AllModels); i++ {
		require.GreaterOrEqual(t, result.AllModels[i-1].RSquared, result.AllModels[i].RSquared)
	}

	require.InDelta(t, 1.0, result.BestFit.RSquared, 1e-9)
	require.InDelta(t, 21160, result.BestFit.Estimator.Estimate(4), 1e-3)
	require.InDelta(t, 21400, result.BestFit.Estimator.Estimate(10), 1e-3)
	require.InDelta(t, 0, result.BestFit.RMSE, 1e-6)
}

func TestAnalyze_Quadratic(t *testing.T) {
	samples := samplesFrom([]int{1, 2, 3, 4, 5, 6, 7, 8}, func(x float64) float64 { return 100 + 2*x + 3*x*x })

	result, err := Analyze(samples)
	require.NoError(t, err)
	require.Equal(t, ModelTypePolynomial, result.BestFit.Type)

	coeffs := result.BestFit.Estimator.Coefficients()
	require.Len(t, coeffs, 3)
	require.InDelta(t, 100, coeffs[0], 1e-6)
	require.InDelta(t, 2, coeffs[1], 1e-6)
	require.InDelta(t, 3, coeffs[2], 1e-6)

	for _, m := range result.AllModels[1:] {
		require.Less(t, m.RSquared, result.BestFit.RSquared, m.Type.String())
	}
}

func TestAnalyze_FeatureDigits(t *testing.T) {
	samples := []Sample{
		{AttributeCount: 3, Digits: 75, Cost: 21306},
		{AttributeCount: 3, Digits: 76, Cost: 21307},
		{AttributeCount: 3, Digits: 78, Cost: 21309},
		{AttributeCount: 3, Digits: 80, Cost: 21311},
	}

	// attribute count is constant, so no model explains the variance
	byCount, err := Analyze(samples)
	require.NoError(t, err)
	require.Zero(t, byCount.BestFit.RSquared)
	require.InDelta(t, 21308.25, byCount.BestFit.Estimator.Estimate(3), 1e-6)

	byDigits, err := Analyze(samples, WithFeature(FeatureDigits))
	require.NoError(t, err)
	require.Equal(t, FeatureDigits, byDigits.Feature)
	require.InDelta(t, 1.0, byDigits.BestFit.RSquared, 1e-6)
	require.InDelta(t, 21310, byDigits.BestFit.Estimator.Estimate(79), 1e-3)
}

func TestAnalyze_LogarithmicNeedsPositiveFeature(t *testing.T) {
	samples := []Sample{
		{AttributeCount: 0, Cost: 10},
		{AttributeCount: 0, Cost: 12},
		{AttributeCount: 1, Cost: 20},
	}

	result, err := Analyze(samples)
	require.NoError(t, err)
	require.Len(t, result.AllModels, 2)
	for _, m := range result.AllModels {
		require.NotEqual(t, ModelTypeLogarithmic, m.Type)
	}
}

func TestAnalyze_LogarithmicSkippedWithZeroFeature(t *testing.T) {
	// ln fits the x > 0 samples exactly, but x = 0 must stay estimable
	samples := []Sample{
		{AttributeCount: 0, Cost: 100},
		{AttributeCount: 1, Cost: 10},
		{AttributeCount: 2, Cost: 20},
		{AttributeCount: 4, Cost: 30},
	}

	result, err := Analyze(samples)
	require.NoError(t, err)
	require.Len(t, result.AllModels, 2)
	for _, m := range result.AllModels {
		require.NotEqual(t, ModelTypeLogarithmic, m.Type)
		require.False(t, math.IsInf(m.Estimator.Estimate(0), 0), m.Type.String())
		require.False(t, math.IsInf(m.Bound(0, 3), 0), m.Type.String())
	}

	positive, err := Analyze(append(samples[1:], Sample{AttributeCount: 8, Cost: 40}))
	require.NoError(t, err)
	require.Equal(t, ModelTypeLogarithmic, positive.BestFit.Type)
	require.InDelta(t, 1.0, positive.BestFit.RSquared, 1e-9)
}

func TestAnalyze_Errors(t *testing.T) {
	_, err := Analyze(nil)
	require.Error(t, err)

	_, err = Analyze([]Sample{{AttributeCount: 1, Cost: 1}})
	require.Error(t, err)

	_, err = Analyze([]Sample{{Cost: 1}, {Cost: 2}}, WithFeature(Feature(9)))
	require.Error(t, err)
}

func TestModel_Bound(t *testing.T) {
	m := &Model{Type: ModelTypeLinear, RMSE: 2.5, Estimator: NewLinearEstimator(100, 10)}
	require.InDelta(t, 130, m.Bound(3, 0), 1e-9)
	require.InDelta(t, 137.5, m.Bound(3, 3), 1e-9)
	require.Contains(t, m.String(), "linear")

	r := &Result{}
	require.Equal(t, "Result{BestFit: nil}", r.String())
}

func TestNewEstimator(t *testing.T) {
	est, err := NewEstimator("Linear", []float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, ModelTypeLinear, est.Type())
	require.InDelta(t, 7, est.Estimate(3), 1e-9)

	est, err = NewEstimator("polynomial", []float64{1, 0, 1})
	require.NoError(t, err)
	require.InDelta(t, 10, est.Estimate(3), 1e-9)
	require.NoError(t, est.SetCoefficients([]float64{0, 0, 2}))
	require.Equal(t, []float64{0, 0, 2}, est.Coefficients())

	est, err = NewEstimator("logarithmic", []float64{5, 1})
	require.NoError(t, err)
	require.InDelta(t, 5, est.Estimate(1), 1e-9)
	require.True(t, math.IsInf(est.Estimate(0), 1))

	_, err = NewEstimator("power", []float64{1, 2})
	require.ErrorContains(t, err, "linear, logarithmic, polynomial")

	_, err = NewEstimator("polynomial", []float64{1, 2})
	require.Error(t, err)
	_, err = NewEstimator("linear", []float64{1, 2, 3})
	require.Error(t, err)
}

func TestModelTypeFromString(t *testing.T) {
	require.Equal(t, ModelTypePolynomial, ModelTypeFromString("POLYNOMIAL"))
	require.Equal(t, ModelType(-1), ModelTypeFromString("hyperbolic"))
	require.Equal(t, "unknown", ModelType(42).String())
	require.Equal(t, "digits", FeatureDigits.String())
}

func TestFeatureFromString(t *testing.T) {
	for _, f := range []Feature{FeatureAttributes, FeatureDigits} {
		got, err := FeatureFromString(f.String())
		require.NoError(t, err)
		require.Equal(t, f, got)
	}

	got, err := FeatureFromString("DIGITS")
	require.NoError(t, err)
	require.Equal(t, FeatureDigits, got)

	_, err = FeatureFromString("bytes")
	require.Error(t, err)
}
