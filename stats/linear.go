package stats

import (
	"fmt"

	"github.com/arloliu/sigma/arith"
	"github.com/arloliu/sigma/errs"
)

// RegressionMethod selects the slope formula used by LinearRegression.
type RegressionMethod uint8

const (
	// MethodOLS computes the slope as Σ(x-x̄)(y-ȳ) / Σ(x-x̄)².
	MethodOLS RegressionMethod = iota
	// MethodMultiply computes the slope as (mean(xy) - x̄ȳ) / (mean(x²) - x̄²).
	MethodMultiply
)

var regressionMethodNames = map[RegressionMethod]string{
	MethodOLS:      "ols",
	MethodMultiply: "multiply",
}

// String returns the string representation of the regression method.
func (m RegressionMethod) String() string {
	if name, ok := regressionMethodNames[m]; ok {
		return name
	}

	return fmt.Sprintf("RegressionMethod(%d)", m)
}

// RegressionMethodFromString parses "ols" or "multiply".
func RegressionMethodFromString(name string) (RegressionMethod, error) {
	for method, methodName := range regressionMethodNames {
		if methodName == name {
			return method, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrInvalidMethod, name)
}

// Line is a fitted straight line y = Intercept + Slope*x.
type Line[T arith.Real] struct {
	Intercept T
	Slope     T
}

// Predict evaluates the line at x.
func (l Line[T]) Predict(x T) T {
	return l.Intercept + l.Slope*x
}

// Func returns the line as a plain function, for use with CoefficientOfDeterminationFunc.
func (l Line[T]) Func() func(T) T {
	return l.Predict
}

// String returns the line as "y = a + b*x".
func (l Line[T]) String() string {
	return fmt.Sprintf("y = %v + %v*x", l.Intercept, l.Slope)
}

// LinearRegression fits dependent = Intercept + Slope*independent.
//
// Parameters:
//   - independent: x values
//   - dependent: y values, same length as independent
//   - method: MethodOLS or MethodMultiply
//
// Returns:
//   - Line[T]: the fitted line; Intercept is ȳ - Slope*x̄
//   - error: errs.ErrLengthMismatch, errs.ErrInsufficientData for fewer than
//     2 pairs, or errs.ErrInvalidMethod
//
// The slope division is not guarded. A constant independent series yields
// Inf/NaN for floats and panics for integer element types; use
// LinearRegressionStrict to get errs.ErrDegenerateInput instead.
func LinearRegression[T arith.Real](independent, dependent []T, method RegressionMethod) (Line[T], error) {
	num, den, meanX, meanY, err := regressionTerms(independent, dependent, method)
	if err != nil {
		return Line[T]{}, err
	}

	slope := num / den

	return Line[T]{Intercept: meanY - slope*meanX, Slope: slope}, nil
}

// LinearRegressionStrict is LinearRegression with a guarded slope: a zero
// denominator returns errs.ErrDegenerateInput.
func LinearRegressionStrict[T arith.Real](independent, dependent []T, method RegressionMethod) (Line[T], error) {
	num, den, meanX, meanY, err := regressionTerms(independent, dependent, method)
	if err != nil {
		return Line[T]{}, err
	}

	if den == 0 {
		return Line[T]{}, fmt.Errorf("%w: independent values have zero variance", errs.ErrDegenerateInput)
	}

	slope := num / den

	return Line[T]{Intercept: meanY - slope*meanX, Slope: slope}, nil
}

func regressionTerms[T arith.Real](x, y []T, method RegressionMethod) (num, den, meanX, meanY T, err error) {
	if err = checkPaired(len(x), len(y), 2); err != nil {
		return num, den, meanX, meanY, err
	}

	meanX, meanY = Average(x), Average(y)

	switch method {
	case MethodOLS:
		for i := range x {
			dx := x[i] - meanX
			num += dx * (y[i] - meanY)
			den += dx * dx
		}
	case MethodMultiply:
		var sumXY, sumXX T
		for i := range x {
			sumXY += x[i] * y[i]
			sumXX += x[i] * x[i]
		}
		n := T(len(x))
		num = sumXY/n - meanX*meanY
		den = sumXX/n - meanX*meanX
	default:
		err = fmt.Errorf("%w: %s", errs.ErrInvalidMethod, method)
	}

	return num, den, meanX, meanY, err
}

// CoefficientOfDetermination returns Σ(ŷ-ȳ)² / Σ(y-ȳ)² for the fitted line,
// where ŷ is line.Predict(x).
//
// A constant dependent series has zero total variation and yields NaN for floats.
func CoefficientOfDetermination[T arith.Real](independent, dependent []T, line Line[T]) (T, error) {
	return CoefficientOfDeterminationFunc(independent, dependent, line.Predict)
}

// CoefficientOfDeterminationFunc is CoefficientOfDetermination for an
// arbitrary prediction function. Both slices must have the same non-zero length.
func CoefficientOfDeterminationFunc[T arith.Real](independent, dependent []T, predict func(T) T) (T, error) {
	if err := checkPaired(len(independent), len(dependent), 1); err != nil {
		return 0, err
	}

	meanY := Average(dependent)

	var explained, total T
	for i, x := range independent {
		p := predict(x) - meanY
		explained += p * p
		d := dependent[i] - meanY
		total += d * d
	}

	return explained / total, nil
}
