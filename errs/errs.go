// Package errs defines the sentinel errors returned by sigma packages.
//
// Every "no result" outcome of the statistics engine is reported as an error
// wrapping one of these sentinels, so callers can tell a computed zero apart
// from an undefined statistic:
//
//	v, err := stats.VarianceSample(values)
//	if errors.Is(err, errs.ErrInsufficientData) {
//	    // fewer than two values
//	}
package errs

import "errors"

var (
	// ErrInsufficientData is returned when a sequence holds fewer elements than the statistic requires.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrLengthMismatch is returned when two paired sequences differ in length.
	ErrLengthMismatch = errors.New("sequence length mismatch")
	// ErrDegenerateInput is returned when a detectable division by zero would follow,
	// e.g. Pearson correlation of a constant sequence.
	ErrDegenerateInput = errors.New("degenerate input")

	ErrInvalidMode     = errors.New("invalid variance mode")
	ErrInvalidMethod   = errors.New("invalid regression method")
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrInvalidModelType is returned for unknown regression model names or types.
	ErrInvalidModelType = errors.New("invalid model type")
	// ErrInvalidCoefficients is returned when an estimator receives the wrong number of coefficients.
	ErrInvalidCoefficients = errors.New("invalid coefficients")
	// ErrNoModels is returned when an analysis has no model to fit, or none of them could be fitted.
	ErrNoModels = errors.New("no models to fit")
	// ErrOutOfDomain is returned when a value lies outside a model's domain, such as ln(x) for x <= 0.
	ErrOutOfDomain = errors.New("value out of model domain")
)
