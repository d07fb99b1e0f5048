package stats

import (
	"fmt"

	"github.com/arloliu/sigma/arith"
	"github.com/arloliu/sigma/errs"
)

// Sum folds seq with +, starting at the zero value. Strings are concatenated.
func Sum[T arith.Addable](seq []T) T {
	var total T
	for _, v := range seq {
		total += v
	}

	return total
}

// Product folds seq with *, starting at one. An empty slice yields one.
func Product[T arith.Multiplicable](seq []T) T {
	product := T(1)
	for _, v := range seq {
		product *= v
	}

	return product
}

// Average returns the arithmetic mean Sum(seq) / len(seq).
//
// An empty slice yields zero rather than an error. Integer element types use
// integer division, and len(seq) must be representable in T.
func Average[T arith.Real](seq []T) T {
	if len(seq) == 0 {
		return 0
	}

	return Sum(seq) / T(len(seq))
}

// HarmonicMean returns n / Σ(1/x).
//
// An empty slice yields zero, like Average. A zero element makes the mean
// undefined and returns errs.ErrDegenerateInput.
func HarmonicMean[T arith.Float](seq []T) (T, error) {
	if len(seq) == 0 {
		return 0, nil
	}

	var inverseSum T
	for i, v := range seq {
		if v == 0 {
			return 0, fmt.Errorf("%w: zero value at index %d", errs.ErrDegenerateInput, i)
		}
		inverseSum += 1 / v
	}

	return T(len(seq)) / inverseSum, nil
}

// GCD returns the greatest common divisor of all values, folding pairwise from zero.
// An empty slice yields zero.
func GCD[T arith.Unsigned](seq []T) T {
	var g T
	for _, v := range seq {
		g = arith.GCD(g, v)
	}

	return g
}

// LCM returns the least common multiple of all values, folding pairwise from one.
// An empty slice yields one; any zero value yields zero.
func LCM[T arith.Unsigned](seq []T) T {
	l := T(1)
	for _, v := range seq {
		l = arith.LCM(l, v)
	}

	return l
}
