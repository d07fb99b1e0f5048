package stats

import (
	"fmt"

	"github.com/arloliu/sigma/arith"
	"github.com/arloliu/sigma/errs"
)

// VarianceMode selects the divisor used by variance, standard deviation and covariance.
type VarianceMode uint8

const (
	// Sample divides by n-1 (Bessel's correction).
	Sample VarianceMode = iota
	// Population divides by n.
	Population
)

var varianceModeNames = map[VarianceMode]string{
	Sample:     "sample",
	Population: "population",
}

// String returns the string representation of the variance mode.
func (m VarianceMode) String() string {
	if name, ok := varianceModeNames[m]; ok {
		return name
	}

	return fmt.Sprintf("VarianceMode(%d)", m)
}

// IsValid reports whether m is Sample or Population.
func (m VarianceMode) IsValid() bool {
	_, ok := varianceModeNames[m]
	return ok
}

// VarianceModeFromString parses "sample" or "population".
func VarianceModeFromString(name string) (VarianceMode, error) {
	for mode, modeName := range varianceModeNames {
		if modeName == name {
			return mode, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrInvalidMode, name)
}

// VarianceSample returns Σ(x-mean)² / (n-1).
// Fewer than 2 values return errs.ErrInsufficientData.
func VarianceSample[T arith.Real](seq []T) (T, error) {
	if err := checkCount(len(seq), 2); err != nil {
		return 0, err
	}

	return sumSquaredDeviations(seq) / T(len(seq)-1), nil
}

// VariancePopulation returns Σ(x-mean)² / n. A single value yields zero;
// an empty slice returns errs.ErrInsufficientData.
func VariancePopulation[T arith.Real](seq []T) (T, error) {
	if err := checkCount(len(seq), 1); err != nil {
		return 0, err
	}

	return sumSquaredDeviations(seq) / T(len(seq)), nil
}

// Variance dispatches to VarianceSample or VariancePopulation.
func Variance[T arith.Real](seq []T, mode VarianceMode) (T, error) {
	switch mode {
	case Sample:
		return VarianceSample(seq)
	case Population:
		return VariancePopulation(seq)
	default:
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidMode, mode)
	}
}

// StdDevSample returns the square root of VarianceSample.
func StdDevSample[T arith.Real](seq []T) (T, error) {
	v, err := VarianceSample(seq)
	if err != nil {
		return 0, err
	}

	return arith.Sqrt(v), nil
}

// StdDevPopulation returns the square root of VariancePopulation.
func StdDevPopulation[T arith.Real](seq []T) (T, error) {
	v, err := VariancePopulation(seq)
	if err != nil {
		return 0, err
	}

	return arith.Sqrt(v), nil
}

// StdDev dispatches to StdDevSample or StdDevPopulation.
func StdDev[T arith.Real](seq []T, mode VarianceMode) (T, error) {
	v, err := Variance(seq, mode)
	if err != nil {
		return 0, err
	}

	return arith.Sqrt(v), nil
}

// CovarianceSample returns Σ(a-meanA)(b-meanB) / (n-1).
//
// Both slices must have the same length, otherwise errs.ErrLengthMismatch is
// returned; fewer than 2 pairs return errs.ErrInsufficientData.
func CovarianceSample[T arith.Real](a, b []T) (T, error) {
	if err := checkPaired(len(a), len(b), 2); err != nil {
		return 0, err
	}

	return sumCrossDeviations(a, b) / T(len(a)-1), nil
}

// CovariancePopulation returns Σ(a-meanA)(b-meanB) / n.
//
// The population form is defined for a single pair, but it shares the
// 2-pair requirement of CovarianceSample so both modes accept the same inputs.
func CovariancePopulation[T arith.Real](a, b []T) (T, error) {
	if err := checkPaired(len(a), len(b), 2); err != nil {
		return 0, err
	}

	return sumCrossDeviations(a, b) / T(len(a)), nil
}

// Covariance dispatches to CovarianceSample or CovariancePopulation.
func Covariance[T arith.Real](a, b []T, mode VarianceMode) (T, error) {
	switch mode {
	case Sample:
		return CovarianceSample(a, b)
	case Population:
		return CovariancePopulation(a, b)
	default:
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidMode, mode)
	}
}

// Pearson returns the Pearson correlation coefficient
// CovariancePopulation(a, b) / (σa·σb), using population standard deviations.
//
// A constant series has zero deviation and returns errs.ErrDegenerateInput.
// For integer element types the result truncates to -1, 0 or 1.
func Pearson[T arith.Real](a, b []T) (T, error) {
	cov, err := CovariancePopulation(a, b)
	if err != nil {
		return 0, err
	}

	sa, err := StdDevPopulation(a)
	if err != nil {
		return 0, err
	}
	sb, err := StdDevPopulation(b)
	if err != nil {
		return 0, err
	}

	if sa == 0 || sb == 0 {
		return 0, fmt.Errorf("%w: zero standard deviation", errs.ErrDegenerateInput)
	}

	return cov / (sa * sb), nil
}

func sumSquaredDeviations[T arith.Real](seq []T) T {
	mean := Average(seq)

	var sum T
	for _, v := range seq {
		d := v - mean
		sum += d * d
	}

	return sum
}

func sumCrossDeviations[T arith.Real](a, b []T) T {
	meanA, meanB := Average(a), Average(b)

	var sum T
	for i := range a {
		sum += (a[i] - meanA) * (b[i] - meanB)
	}

	return sum
}
