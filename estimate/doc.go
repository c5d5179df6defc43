// Package estimate predicts the metered cost of a decode call before making it.
//
// The cost of decoding a token grows with the number of attributes it
// carries and with its digit length. This package fits regression models to
// measured (feature, cost) samples, typically taken from a golden corpus,
// and exposes the best fit as an Estimator.
//
// # Usage
//
//	samples := corpus.Samples(dec, file)
//	result, err := estimate.Analyze(samples)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cost := result.BestFit.Estimator.Estimate(8) // cost of an 8-attribute token
//	budget := result.BestFit.Bound(8, 3)         // estimate plus 3 RMSE
//
// # Model Types
//
//   - Linear: cost = a + b*x
//   - Polynomial: cost = a + b*x + c*x²
//   - Logarithmic: cost = a + b*ln(x), fitted only when every sample has x > 0
//
// where x is the attribute count by default, or the token digit count with
// WithFeature(FeatureDigits). Models are ranked by R², best first.
package estimate
