package estimate

import "fmt"

// Sample is one measured decode call.
type Sample struct {
	AttributeCount int
	Digits         int
	Cost           uint64
}

// Model is a fitted regression model.
type Model struct {
	// Type is the model type.
	Type ModelType
	// Coefficients contains the model coefficients.
	Coefficients []float64
	// RSquared is the coefficient of determination (goodness of fit, 0-1).
	RSquared float64
	// RMSE is the root mean square error, in cost units.
	RMSE float64
	// Formula is a human-readable representation of the model.
	Formula string
	// Estimator is the concrete estimator implementation.
	Estimator Estimator
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// Bound returns the estimate at x widened by sigmas root mean square errors.
// It is a conservative budget for a call whose exact cost is not known yet.
func (m *Model) Bound(x, sigmas float64) float64 {
	return m.Estimator.Estimate(x) + sigmas*m.RMSE
}

// Result is the outcome of a regression analysis.
type Result struct {
	// Feature is the independent variable the models were fitted on.
	Feature Feature
	// BestFit is the model with the highest R².
	BestFit *Model
	// AllModels contains all candidate models ranked by R² (best first).
	AllModels []*Model
	// Samples is the number of samples analysed.
	Samples int
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{Feature: %s, BestFit: %s, TotalModels: %d}",
		r.Feature, r.BestFit, len(r.AllModels))
}
