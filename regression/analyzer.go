package regression

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/sigma/errs"
	"github.com/arloliu/sigma/internal/options"
	"github.com/arloliu/sigma/internal/pool"
	"github.com/arloliu/sigma/stats"
)

// Dataset is a named set of (x, y) pairs for AnalyzeEach.
type Dataset struct {
	Name string
	X    []float64
	Y    []float64
}

// Fit fits a single model to the points (x[i], y[i]).
//
// Parameters:
//   - modelType: The model to fit
//   - x: Independent values
//   - y: Dependent values, same length as x
//   - opts: WithMethod, WithPolynomialDegree
//
// Returns:
//   - *Model: The fitted model with R², RMSE and an estimator
//   - error: errs.ErrLengthMismatch, errs.ErrInsufficientData,
//     errs.ErrOutOfDomain, errs.ErrDegenerateInput or an option error
//
// Example:
//
//	model, err := regression.Fit(regression.ModelTypePower, x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := model.Estimator.Estimate(42)
func Fit(modelType ModelType, x, y []float64, opts ...Option) (*Model, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if !modelType.IsValid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidModelType, modelType)
	}

	if err := validatePoints(x, y); err != nil {
		return nil, err
	}

	return fitModel(modelType, x, y, cfg)
}

// Analyze fits every configured model and ranks them by R².
//
// Models that cannot be fitted to the data, for example the logarithmic model
// when some x <= 0, are recorded in Result.Skipped instead of failing the
// analysis. If no model can be fitted, errs.ErrNoModels is returned.
//
// Example:
//
//	result, err := regression.Analyze(x, y, regression.WithModels(
//	    regression.ModelTypeLinear, regression.ModelTypePower))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.BestFit.Formula)
func Analyze(x, y []float64, opts ...Option) (*Result, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if err := validatePoints(x, y); err != nil {
		return nil, err
	}

	return performRegression(x, y, cfg)
}

// AnalyzeEach runs Analyze on every dataset with the same options, which is
// useful for comparing how the best-fit formula drifts between datasets.
func AnalyzeEach(datasets []Dataset, opts ...Option) ([]*Result, error) {
	if len(datasets) == 0 {
		return nil, fmt.Errorf("%w: no datasets provided", errs.ErrInsufficientData)
	}

	results := make([]*Result, len(datasets))
	for i, ds := range datasets {
		result, err := Analyze(ds.X, ds.Y, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze dataset %d (%s): %w", i, ds.Name, err)
		}
		results[i] = result
	}

	return results, nil
}

func validatePoints(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d x vs %d y values", errs.ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return fmt.Errorf("%w: need at least 2 points, got %d", errs.ErrInsufficientData, len(x))
	}

	return nil
}

// performRegression fits cfg.Models and sorts the fitted ones by R², best first.
func performRegression(x, y []float64, cfg *FitConfig) (*Result, error) {
	models := make([]*Model, 0, len(cfg.Models))
	var skipped map[ModelType]error

	for _, mt := range cfg.Models {
		model, err := fitModel(mt, x, y, cfg)
		if err != nil {
			if skipped == nil {
				skipped = make(map[ModelType]error)
			}
			skipped[mt] = err

			continue
		}
		models = append(models, model)
	}

	if len(models) == 0 {
		return nil, fmt.Errorf("%w: none of %d models could be fitted", errs.ErrNoModels, len(cfg.Models))
	}

	slices.SortStableFunc(models, func(a, b *Model) int {
		if a.RSquared > b.RSquared {
			return -1
		}
		if a.RSquared < b.RSquared {
			return 1
		}

		return 0
	})

	return &Result{
		BestFit:   models[0],
		AllModels: models,
		Skipped:   skipped,
		Points:    len(x),
	}, nil
}

func fitModel(mt ModelType, x, y []float64, cfg *FitConfig) (*Model, error) {
	switch mt {
	case ModelTypeLinear:
		return fitTransformed(mt, x, y, cfg.Method, identity, identity)
	case ModelTypeHyperbolic:
		return fitTransformed(mt, x, y, cfg.Method, reciprocal, identity)
	case ModelTypeLogarithmic:
		return fitTransformed(mt, x, y, cfg.Method, logPositive, identity)
	case ModelTypePower:
		return fitTransformed(mt, x, y, cfg.Method, logPositive, logPositive)
	case ModelTypeExponential:
		return fitTransformed(mt, x, y, cfg.Method, identity, logPositive)
	case ModelTypePolynomial:
		return fitPolynomial(x, y, cfg.Degree)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidModelType, mt)
	}
}

// axisTransform maps a value onto the linearized axis; false means out of domain.
type axisTransform func(v float64) (float64, bool)

func identity(v float64) (float64, bool) { return v, true }

func reciprocal(v float64) (float64, bool) {
	if v == 0 {
		return 0, false
	}

	return 1 / v, true
}

func logPositive(v float64) (float64, bool) {
	if v <= 0 {
		return 0, false
	}

	return math.Log(v), true
}

// fitTransformed fits a two-coefficient model by linear regression on
// transformed data:
//
//	linear:      y     = a + b*x
//	hyperbolic:  y     = a + b*(1/x)
//	logarithmic: y     = a + b*ln(x)
//	power:       ln(y) = ln(a) + b*ln(x)
//	exponential: ln(y) = ln(a) + b*x
func fitTransformed(mt ModelType, x, y []float64, method stats.RegressionMethod, tx, ty axisTransform) (*Model, error) {
	tX, cleanupX := pool.GetFloat64Slice(len(x))
	defer cleanupX()
	tY, cleanupY := pool.GetFloat64Slice(len(y))
	defer cleanupY()

	for i := range x {
		var ok bool
		if tX[i], ok = tx(x[i]); !ok {
			return nil, fmt.Errorf("%w: %s model cannot use x=%g", errs.ErrOutOfDomain, mt, x[i])
		}
		if tY[i], ok = ty(y[i]); !ok {
			return nil, fmt.Errorf("%w: %s model cannot use y=%g", errs.ErrOutOfDomain, mt, y[i])
		}
	}

	line, err := stats.LinearRegressionStrict(tX, tY, method)
	if err != nil {
		return nil, fmt.Errorf("%s model: %w", mt, err)
	}

	a, b := line.Intercept, line.Slope
	if mt == ModelTypePower || mt == ModelTypeExponential {
		a = math.Exp(a)
	}

	var estimator Estimator
	var formula string
	switch mt {
	case ModelTypeHyperbolic:
		estimator = NewHyperbolicEstimator(a, b)
		formula = fmt.Sprintf("y = %.4g + %.4g/x", a, b)
	case ModelTypeLogarithmic:
		estimator = NewLogarithmicEstimator(a, b)
		formula = fmt.Sprintf("y = %.4g + %.4g*ln(x)", a, b)
	case ModelTypePower:
		estimator = NewPowerEstimator(a, b)
		formula = fmt.Sprintf("y = %.4g * x^%.4g", a, b)
	case ModelTypeExponential:
		estimator = NewExponentialEstimator(a, b)
		formula = fmt.Sprintf("y = %.4g * e^(%.4g*x)", a, b)
	default:
		estimator = NewLinearEstimator(a, b)
		formula = fmt.Sprintf("y = %.4g + %.4g*x", a, b)
	}

	return newModel(estimator, formula, x, y), nil
}

// fitPolynomial solves the least squares problem V·c = y, where V is the
// Vandermonde matrix of x, using a QR factorization.
func fitPolynomial(x, y []float64, degree int) (*Model, error) {
	cols := degree + 1
	if len(x) < cols {
		return nil, fmt.Errorf("%w: degree %d polynomial needs at least %d points, got %d",
			errs.ErrInsufficientData, degree, cols, len(x))
	}

	vandermonde := mat.NewDense(len(x), cols, nil)
	for i, xi := range x {
		p := 1.0
		for j := range cols {
			vandermonde.Set(i, j, p)
			p *= xi
		}
	}

	var coef mat.VecDense
	if err := coef.SolveVec(vandermonde, mat.NewVecDense(len(y), slices.Clone(y))); err != nil {
		return nil, fmt.Errorf("%w: polynomial least squares: %w", errs.ErrDegenerateInput, err)
	}

	coeffs := make([]float64, cols)
	for i := range coeffs {
		coeffs[i] = coef.AtVec(i)
	}

	estimator := &PolynomialEstimator{coeffs: coeffs}

	return newModel(estimator, polynomialFormula(coeffs), x, y), nil
}

func polynomialFormula(coeffs []float64) string {
	var sb strings.Builder
	sb.WriteString("y = ")
	for i, c := range coeffs {
		if i > 0 {
			sb.WriteString(" + ")
		}
		switch i {
		case 0:
			fmt.Fprintf(&sb, "%.4g", c)
		case 1:
			fmt.Fprintf(&sb, "%.4g*x", c)
		default:
			fmt.Fprintf(&sb, "%.4g*x^%d", c, i)
		}
	}

	return sb.String()
}

func newModel(estimator Estimator, formula string, x, y []float64) *Model {
	predicted, cleanup := pool.GetFloat64Slice(len(x))
	defer cleanup()

	for i, xi := range x {
		predicted[i] = estimator.Estimate(xi)
	}

	return &Model{
		Type:         estimator.Type(),
		Coefficients: estimator.Coefficients(),
		RSquared:     calculateRSquared(y, predicted),
		RMSE:         calculateRMSE(y, predicted),
		Formula:      formula,
		Estimator:    estimator,
	}
}
