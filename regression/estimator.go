package regression

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/arloliu/sigma/errs"
)

// ModelType represents the type of regression model.
type ModelType int

const (
	// ModelTypeLinear represents the linear model: y = a + b*x
	ModelTypeLinear ModelType = iota
	// ModelTypeHyperbolic represents the hyperbolic model: y = a + b/x
	ModelTypeHyperbolic
	// ModelTypeLogarithmic represents the logarithmic model: y = a + b*ln(x)
	ModelTypeLogarithmic
	// ModelTypePower represents the power model: y = a * x^b
	ModelTypePower
	// ModelTypeExponential represents the exponential model: y = a * e^(b*x)
	ModelTypeExponential
	// ModelTypePolynomial represents the polynomial model: y = c0 + c1*x + ... + cn*x^n
	ModelTypePolynomial
)

// AllModelTypes lists every supported model type in declaration order.
var AllModelTypes = []ModelType{
	ModelTypeLinear,
	ModelTypeHyperbolic,
	ModelTypeLogarithmic,
	ModelTypePower,
	ModelTypeExponential,
	ModelTypePolynomial,
}

var modelTypeNames = map[ModelType]string{
	ModelTypeLinear:      "linear",
	ModelTypeHyperbolic:  "hyperbolic",
	ModelTypeLogarithmic: "logarithmic",
	ModelTypePower:       "power",
	ModelTypeExponential: "exponential",
	ModelTypePolynomial:  "polynomial",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// IsValid reports whether mt is one of the supported model types.
func (mt ModelType) IsValid() bool {
	_, exists := modelTypeNames[mt]
	return exists
}

// ModelTypeFromString returns the ModelType for a case-insensitive name.
// Unknown names return errs.ErrInvalidModelType listing the supported names.
func ModelTypeFromString(name string) (ModelType, error) {
	lower := strings.ToLower(name)
	for mt, mtName := range modelTypeNames {
		if mtName == lower {
			return mt, nil
		}
	}

	supported := make([]string, 0, len(modelTypeNames))
	for _, mtName := range modelTypeNames {
		supported = append(supported, mtName)
	}
	slices.Sort(supported)

	return 0, fmt.Errorf("%w: %q, supported types: %s", errs.ErrInvalidModelType, name, strings.Join(supported, ", "))
}

// Estimator evaluates a fitted model.
type Estimator interface {
	// Estimate returns the predicted y for x. Inputs outside the model's
	// domain (x <= 0 for logarithmic and power, x == 0 for hyperbolic) yield NaN.
	Estimate(x float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns a copy of the model coefficients.
	Coefficients() []float64
	// SetCoefficients replaces the coefficients. Two-coefficient models expect
	// exactly [a, b]; the polynomial model accepts one or more, lowest order first.
	SetCoefficients(coeffs []float64) error
}

// pairEstimator holds the shared [a, b] state of the two-coefficient models.
type pairEstimator struct {
	a, b float64
}

func (p *pairEstimator) Coefficients() []float64 {
	return []float64{p.a, p.b}
}

func (p *pairEstimator) setPair(mt ModelType, coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("%w: %s model expects exactly 2 coefficients, got %d", errs.ErrInvalidCoefficients, mt, len(coeffs))
	}
	p.a, p.b = coeffs[0], coeffs[1]

	return nil
}

// LinearEstimator implements y = a + b*x.
type LinearEstimator struct{ pairEstimator }

// NewLinearEstimator creates a linear estimator.
func NewLinearEstimator(a, b float64) *LinearEstimator {
	return &LinearEstimator{pairEstimator{a: a, b: b}}
}

func (l *LinearEstimator) Estimate(x float64) float64 { return l.a + l.b*x }

func (l *LinearEstimator) Type() ModelType { return ModelTypeLinear }

func (l *LinearEstimator) SetCoefficients(coeffs []float64) error {
	return l.setPair(ModelTypeLinear, coeffs)
}

// HyperbolicEstimator implements y = a + b/x.
type HyperbolicEstimator struct{ pairEstimator }

// NewHyperbolicEstimator creates a hyperbolic estimator.
func NewHyperbolicEstimator(a, b float64) *HyperbolicEstimator {
	return &HyperbolicEstimator{pairEstimator{a: a, b: b}}
}

func (h *HyperbolicEstimator) Estimate(x float64) float64 {
	if x == 0 {
		return math.NaN()
	}

	return h.a + h.b/x
}

func (h *HyperbolicEstimator) Type() ModelType { return ModelTypeHyperbolic }

func (h *HyperbolicEstimator) SetCoefficients(coeffs []float64) error {
	return h.setPair(ModelTypeHyperbolic, coeffs)
}

// LogarithmicEstimator implements y = a + b*ln(x).
type LogarithmicEstimator struct{ pairEstimator }

// NewLogarithmicEstimator creates a logarithmic estimator.
func NewLogarithmicEstimator(a, b float64) *LogarithmicEstimator {
	return &LogarithmicEstimator{pairEstimator{a: a, b: b}}
}

func (l *LogarithmicEstimator) Estimate(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}

	return l.a + l.b*math.Log(x)
}

func (l *LogarithmicEstimator) Type() ModelType { return ModelTypeLogarithmic }

func (l *LogarithmicEstimator) SetCoefficients(coeffs []float64) error {
	return l.setPair(ModelTypeLogarithmic, coeffs)
}

// PowerEstimator implements y = a * x^b.
type PowerEstimator struct{ pairEstimator }

// NewPowerEstimator creates a power estimator.
func NewPowerEstimator(a, b float64) *PowerEstimator {
	return &PowerEstimator{pairEstimator{a: a, b: b}}
}

func (p *PowerEstimator) Estimate(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}

	return p.a * math.Pow(x, p.b)
}

func (p *PowerEstimator) Type() ModelType { return ModelTypePower }

func (p *PowerEstimator) SetCoefficients(coeffs []float64) error {
	return p.setPair(ModelTypePower, coeffs)
}

// ExponentialEstimator implements y = a * e^(b*x).
type ExponentialEstimator struct{ pairEstimator }

// NewExponentialEstimator creates an exponential estimator.
func NewExponentialEstimator(a, b float64) *ExponentialEstimator {
	return &ExponentialEstimator{pairEstimator{a: a, b: b}}
}

func (e *ExponentialEstimator) Estimate(x float64) float64 { return e.a * math.Exp(e.b*x) }

func (e *ExponentialEstimator) Type() ModelType { return ModelTypeExponential }

func (e *ExponentialEstimator) SetCoefficients(coeffs []float64) error {
	return e.setPair(ModelTypeExponential, coeffs)
}

// PolynomialEstimator implements y = c0 + c1*x + ... + cn*x^n.
type PolynomialEstimator struct {
	coeffs []float64
}

// NewPolynomialEstimator creates a polynomial estimator from coefficients in
// ascending order of power. At least one coefficient is required.
func NewPolynomialEstimator(coeffs ...float64) (*PolynomialEstimator, error) {
	p := &PolynomialEstimator{}
	if err := p.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return p, nil
}

// Estimate evaluates the polynomial with Horner's scheme.
func (p *PolynomialEstimator) Estimate(x float64) float64 {
	var y float64
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}

	return y
}

func (p *PolynomialEstimator) Type() ModelType { return ModelTypePolynomial }

// Degree returns the polynomial degree.
func (p *PolynomialEstimator) Degree() int { return len(p.coeffs) - 1 }

func (p *PolynomialEstimator) Coefficients() []float64 { return slices.Clone(p.coeffs) }

func (p *PolynomialEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) == 0 {
		return fmt.Errorf("%w: polynomial model expects at least 1 coefficient", errs.ErrInvalidCoefficients)
	}
	p.coeffs = slices.Clone(coeffs)

	return nil
}

// NewEstimator creates an estimator by model name and coefficients.
//
// Parameters:
//   - name: The model name (case-insensitive): "linear", "hyperbolic",
//     "logarithmic", "power", "exponential" or "polynomial"
//   - coeffs: 2 coefficients for the two-coefficient models, 1 or more for polynomial
//
// Returns:
//   - Estimator: The created estimator
//   - error: errs.ErrInvalidModelType or errs.ErrInvalidCoefficients
//
// Example:
//
//	est, err := regression.NewEstimator("power", []float64{2.0, 0.5})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := est.Estimate(16) // 8
func NewEstimator(name string, coeffs []float64) (Estimator, error) {
	modelType, err := ModelTypeFromString(name)
	if err != nil {
		return nil, err
	}

	estimator := newEmptyEstimator(modelType)
	if err := estimator.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return estimator, nil
}

func newEmptyEstimator(modelType ModelType) Estimator {
	switch modelType {
	case ModelTypeLinear:
		return NewLinearEstimator(0, 0)
	case ModelTypeHyperbolic:
		return NewHyperbolicEstimator(0, 0)
	case ModelTypeLogarithmic:
		return NewLogarithmicEstimator(0, 0)
	case ModelTypePower:
		return NewPowerEstimator(0, 0)
	case ModelTypeExponential:
		return NewExponentialEstimator(0, 0)
	default:
		return &PolynomialEstimator{coeffs: []float64{0}}
	}
}
