// Package sigma is a generic numeric and statistics library.
//
// The work is split across focused packages:
//
//   - stats: the statistics engine (sums, means, median family, mode,
//     variance, covariance, Pearson, streaming moments, linear regression)
//   - arith: numeric constraints, elementary math, constants, GCD/LCM,
//     Riemann sums and a generic complex number
//   - regression: curve fitting with model ranking by R²
//   - geometry: small vector and scaling helpers
//   - errs: sentinel errors shared by every package
//
// This package offers float64 shortcuts for the most common calls.
//
// # Basic Usage
//
//	values := []float64{1, 12, 19.5, -5, 3, 8}
//
//	mean := sigma.Mean(values)             // 6.4166...
//	sd, err := sigma.StdDev(values)        // sample standard deviation
//	summary, err := sigma.Describe(values)
//	fmt.Println(summary)
//
//	line, err := sigma.LinearFit(x, y)
//	model, err := sigma.BestFit(x, y)      // best of every regression model
//
// For other element types call the generic functions directly:
//
//	median, err := stats.Median([]int32{4, 8, 15, 16, 23, 42})
//
// # Errors
//
// An undefined statistic is reported as an error wrapping a sentinel from the
// errs package; check it with errors.Is:
//
//	if _, err := sigma.Variance([]float64{1}); errors.Is(err, errs.ErrInsufficientData) {
//	    // variance needs at least two values
//	}
package sigma

import (
	"github.com/arloliu/sigma/regression"
	"github.com/arloliu/sigma/stats"
)

// Mean returns the arithmetic mean of values. An empty slice yields 0.
func Mean(values []float64) float64 {
	return stats.Average(values)
}

// Median returns the median of values.
func Median(values []float64) (float64, error) {
	return stats.Median(values)
}

// Variance returns the sample variance of values.
func Variance(values []float64) (float64, error) {
	return stats.VarianceSample(values)
}

// StdDev returns the sample standard deviation of values.
func StdDev(values []float64) (float64, error) {
	return stats.StdDevSample(values)
}

// Correlation returns the Pearson correlation coefficient of x and y.
func Correlation(x, y []float64) (float64, error) {
	return stats.Pearson(x, y)
}

// LinearFit fits y = Intercept + Slope*x by ordinary least squares.
//
// Unlike stats.LinearRegression, a constant x returns errs.ErrDegenerateInput
// instead of a NaN slope.
func LinearFit(x, y []float64) (stats.Line[float64], error) {
	return stats.LinearRegressionStrict(x, y, stats.MethodOLS)
}

// Describe returns a descriptive summary of values using sample variance.
func Describe(values []float64) (*stats.Summary[float64], error) {
	return stats.Describe(values)
}

// BestFit fits every regression model to (x, y) and returns the one with the highest R².
func BestFit(x, y []float64) (*regression.Model, error) {
	result, err := regression.Analyze(x, y)
	if err != nil {
		return nil, err
	}

	return result.BestFit, nil
}
