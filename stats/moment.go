package stats

import (
	"github.com/arloliu/sigma/arith"
)

// Moments holds the running central moment sums of a sequence, computed in a
// single pass with the Welford recurrence:
//
//	delta    = x - M1
//	deltaN   = delta / n
//	term1    = delta * deltaN * (n-1)
//	M1      += deltaN
//	M4      += term1*deltaN²*(n²-3n+3) + 6*deltaN²*M2 - 4*deltaN*M3
//	M3      += term1*deltaN*(n-2) - 3*deltaN*M2
//	M2      += term1
//
// M0 is the count and M1 the mean. A Moments value is immutable once built.
//
// The recurrence divides by the running count, so it is meant for float
// element types; integer types truncate every step.
type Moments[T arith.Real] struct {
	m0 T
	m1 T
	m2 T
	m3 T
	m4 T
}

// NewMoments computes the moments of seq in one pass.
// An empty slice returns errs.ErrInsufficientData.
func NewMoments[T arith.Real](seq []T) (Moments[T], error) {
	var m Moments[T]
	if err := checkCount(len(seq), 1); err != nil {
		return m, err
	}

	var n T
	for _, x := range seq {
		n1 := n
		n++
		delta := x - m.m1
		deltaN := delta / n
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * n1

		m.m1 += deltaN
		m.m4 += term1*deltaN2*(n*n-3*n+3) + 6*deltaN2*m.m2 - 4*deltaN*m.m3
		m.m3 += term1*deltaN*(n-2) - 3*deltaN*m.m2
		m.m2 += term1
	}
	m.m0 = n

	return m, nil
}

// Count returns M0, the number of values as T.
func (m Moments[T]) Count() T { return m.m0 }

// M1 returns the mean.
func (m Moments[T]) M1() T { return m.m1 }

// M2 returns the sum of squared deviations from the mean.
func (m Moments[T]) M2() T { return m.m2 }

// M3 returns the sum of cubed deviations from the mean.
func (m Moments[T]) M3() T { return m.m3 }

// M4 returns the sum of fourth-power deviations from the mean.
func (m Moments[T]) M4() T { return m.m4 }

// Average returns the mean, M1.
func (m Moments[T]) Average() T { return m.m1 }

// VarianceSample returns M2 / (M0-1). A single value yields 0/0.
func (m Moments[T]) VarianceSample() T { return m.m2 / (m.m0 - 1) }

// VariancePopulation returns M2 / M0.
func (m Moments[T]) VariancePopulation() T { return m.m2 / m.m0 }

// StdDevSample returns the square root of VarianceSample.
func (m Moments[T]) StdDevSample() T { return arith.Sqrt(m.VarianceSample()) }

// StdDevPopulation returns the square root of VariancePopulation.
func (m Moments[T]) StdDevPopulation() T { return arith.Sqrt(m.VariancePopulation()) }

// Skewness returns the population skewness √M0·M3 / M2^1.5.
// A constant sequence has M2 == 0 and yields NaN for floats.
func (m Moments[T]) Skewness() T {
	return arith.Sqrt(m.m0) * m.m3 / arith.PowFloat(m.m2, 1.5)
}

// Kurtosis returns the population kurtosis M0·M4 / M2².
func (m Moments[T]) Kurtosis() T {
	return m.m0 * m.m4 / (m.m2 * m.m2)
}

// ExcessKurtosis returns Kurtosis - 3, which is zero for a normal distribution.
func (m Moments[T]) ExcessKurtosis() T {
	return m.Kurtosis() - 3
}

// Skewness computes the moments of seq and returns their skewness.
func Skewness[T arith.Real](seq []T) (T, error) {
	m, err := NewMoments(seq)
	if err != nil {
		return 0, err
	}

	return m.Skewness(), nil
}

// Kurtosis computes the moments of seq and returns their kurtosis.
func Kurtosis[T arith.Real](seq []T) (T, error) {
	m, err := NewMoments(seq)
	if err != nil {
		return 0, err
	}

	return m.Kurtosis(), nil
}

// ExcessKurtosis computes the moments of seq and returns their excess kurtosis.
func ExcessKurtosis[T arith.Real](seq []T) (T, error) {
	m, err := NewMoments(seq)
	if err != nil {
		return 0, err
	}

	return m.ExcessKurtosis(), nil
}
