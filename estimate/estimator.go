package estimate

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ModelType represents the type of regression model.
type ModelType int

const (
	// ModelTypeLinear represents the linear model: cost = a + b*x
	ModelTypeLinear ModelType = iota
	// ModelTypePolynomial represents the quadratic model: cost = a + b*x + c*x²
	ModelTypePolynomial
	// ModelTypeLogarithmic represents the logarithmic model: cost = a + b*ln(x)
	ModelTypeLogarithmic
)

var modelTypeNames = map[ModelType]string{
	ModelTypeLinear:      "linear",
	ModelTypePolynomial:  "polynomial",
	ModelTypeLogarithmic: "logarithmic",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// ModelTypeFromString returns the ModelType for a given name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	name = strings.ToLower(name)
	for mt, n := range modelTypeNames {
		if n == name {
			return mt
		}
	}

	return ModelType(-1)
}

// Estimator predicts a cost from a feature value.
type Estimator interface {
	// Estimate returns the predicted cost at x.
	Estimate(x float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns a copy of the model coefficients.
	Coefficients() []float64
	// SetCoefficients replaces the coefficients. The count must match the model:
	// 2 for linear and logarithmic, 3 for polynomial.
	SetCoefficients(coeffs []float64) error
}

// LinearEstimator implements cost = a + b*x.
type LinearEstimator struct {
	a, b float64
}

// NewLinearEstimator creates a linear estimator.
func NewLinearEstimator(a, b float64) *LinearEstimator {
	return &LinearEstimator{a: a, b: b}
}

// Estimate implements Estimator.
func (l *LinearEstimator) Estimate(x float64) float64 {
	return l.a + l.b*x
}

// Type returns the model type.
func (l *LinearEstimator) Type() ModelType {
	return ModelTypeLinear
}

// Coefficients returns the model coefficients.
func (l *LinearEstimator) Coefficients() []float64 {
	return []float64{l.a, l.b}
}

func (l *LinearEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("linear model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	l.a, l.b = coeffs[0], coeffs[1]

	return nil
}

// PolynomialEstimator implements cost = a + b*x + c*x².
type PolynomialEstimator struct {
	a, b, c float64
}

// NewPolynomialEstimator creates a quadratic estimator.
func NewPolynomialEstimator(a, b, c float64) *PolynomialEstimator {
	return &PolynomialEstimator{a: a, b: b, c: c}
}

// Estimate implements Estimator.
func (p *PolynomialEstimator) Estimate(x float64) float64 {
	return p.a + p.b*x + p.c*x*x
}

// Type returns the model type.
func (p *PolynomialEstimator) Type() ModelType {
	return ModelTypePolynomial
}

// Coefficients returns the model coefficients.
func (p *PolynomialEstimator) Coefficients() []float64 {
	return []float64{p.a, p.b, p.c}
}

func (p *PolynomialEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 3 {
		return fmt.Errorf("polynomial model expects exactly 3 coefficients, got %d", len(coeffs))
	}
	p.a, p.b, p.c = coeffs[0], coeffs[1], coeffs[2]

	return nil
}

// LogarithmicEstimator implements cost = a + b*ln(x).
type LogarithmicEstimator struct {
	a, b float64
}

// NewLogarithmicEstimator creates a logarithmic estimator.
func NewLogarithmicEstimator(a, b float64) *LogarithmicEstimator {
	return &LogarithmicEstimator{a: a, b: b}
}

// Estimate returns +Inf for x <= 0.
func (l *LogarithmicEstimator) Estimate(x float64) float64 {
	if x <= 0 {
		return math.Inf(1)
	}

	return l.a + l.b*math.Log(x)
}

// Type returns the model type.
func (l *LogarithmicEstimator) Type() ModelType {
	return ModelTypeLogarithmic
}

// Coefficients returns the model coefficients.
func (l *LogarithmicEstimator) Coefficients() []float64 {
	return []float64{l.a, l.b}
}

func (l *LogarithmicEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("logarithmic model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	l.a, l.b = coeffs[0], coeffs[1]

	return nil
}

func newEmptyEstimator(modelType ModelType) Estimator {
	switch modelType {
	case ModelTypeLinear:
		return NewLinearEstimator(0, 0)
	case ModelTypePolynomial:
		return NewPolynomialEstimator(0, 0, 0)
	case ModelTypeLogarithmic:
		return NewLogarithmicEstimator(0, 0)
	default:
		return nil
	}
}

// NewEstimator creates an estimator by model name and coefficients.
//
// Parameters:
//   - name: Model name, case-insensitive ("linear", "polynomial", "logarithmic")
//   - coeffs: Model coefficients, 3 for polynomial and 2 otherwise
//
// Returns:
//   - Estimator: The created estimator
//   - error: Unknown model name or wrong coefficient count
//
// Example:
//
//	est, err := estimate.NewEstimator("linear", []float64{21290, 5.2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cost := est.Estimate(8)
func NewEstimator(name string, coeffs []float64) (Estimator, error) {
	est := newEmptyEstimator(ModelTypeFromString(name))
	if est == nil {
		supported := make([]string, 0, len(modelTypeNames))
		for _, n := range modelTypeNames {
			supported = append(supported, n)
		}
		slices.Sort(supported)

		return nil, fmt.Errorf("unknown model type: %s. Supported types: %s", name, strings.Join(supported, ", "))
	}

	if err := est.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return est, nil
}
