package regression

import (
	"fmt"

	"github.com/arloliu/sigma/errs"
	"github.com/arloliu/sigma/internal/options"
	"github.com/arloliu/sigma/stats"
)

// FitConfig holds the settings used by Fit and Analyze.
type FitConfig struct {
	// Models lists the model types Analyze tries. Fit ignores it.
	Models []ModelType
	// Method is the slope estimator used for the two-coefficient models.
	Method stats.RegressionMethod
	// Degree is the polynomial degree.
	Degree int
}

// defaultFitConfig returns the default config: every model, OLS, quadratic polynomial.
func defaultFitConfig() *FitConfig {
	return &FitConfig{
		Models: AllModelTypes,
		Method: stats.MethodOLS,
		Degree: 2,
	}
}

// Option is a functional option for FitConfig.
type Option = options.Option[*FitConfig]

// WithModels restricts Analyze to the given model types.
func WithModels(types ...ModelType) Option {
	return options.New(func(cfg *FitConfig) error {
		if len(types) == 0 {
			return errs.ErrNoModels
		}
		for _, mt := range types {
			if !mt.IsValid() {
				return fmt.Errorf("%w: %d", errs.ErrInvalidModelType, mt)
			}
		}
		cfg.Models = types

		return nil
	})
}

// WithMethod selects the slope estimator for the two-coefficient models.
func WithMethod(method stats.RegressionMethod) Option {
	return options.New(func(cfg *FitConfig) error {
		if method != stats.MethodOLS && method != stats.MethodMultiply {
			return fmt.Errorf("%w: %s", errs.ErrInvalidMethod, method)
		}
		cfg.Method = method

		return nil
	})
}

// WithPolynomialDegree sets the degree of the polynomial model. The default is 2.
func WithPolynomialDegree(degree int) Option {
	return options.New(func(cfg *FitConfig) error {
		if degree < 1 {
			return fmt.Errorf("%w: polynomial degree must be at least 1, got %d", errs.ErrInvalidCoefficients, degree)
		}
		cfg.Degree = degree

		return nil
	})
}
