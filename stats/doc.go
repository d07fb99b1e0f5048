// Package stats is sigma's generic statistics engine.
//
// Every function operates on a caller-owned slice and never mutates it; the
// sort-based statistics work on a private copy. Each function declares the
// smallest arith constraint it needs, so MedianLow works on strings while
// Pearson needs real numbers.
//
// # Undefined Results
//
// A statistic that is undefined for its input returns the zero value of T and
// an error wrapping one of the errs sentinels:
//
//   - errs.ErrInsufficientData: fewer elements than required (variance needs 2)
//   - errs.ErrLengthMismatch: paired slices of different lengths
//   - errs.ErrDegenerateInput: Pearson correlation of a constant series
//
// Two functions deliberately differ: Average and GeometricMean return zero for
// an empty slice instead of an error.
//
// Division by zero inside an unguarded formula is not intercepted. Linear
// regression over a constant independent series yields Inf/NaN for floats and
// panics for integers, exactly as the element type's division does.
// LinearRegressionStrict is the opt-in guarded variant.
//
// # Basic Usage
//
//	values := []float64{1, 12, 19.5, -5, 3, 8}
//	avg := stats.Average(values)              // 6.4166...
//	v, err := stats.VarianceSample(values)    // 75.2416...
//	m, err := stats.NewMoments(values)
//	skew := m.Skewness()
//
//	line, err := stats.LinearRegression(x, y, stats.MethodOLS)
//	r2, err := stats.CoefficientOfDetermination(x, y, line)
//
// # Concurrency
//
// Functions hold no shared state and may be called concurrently, including on
// the same input slice.
package stats
