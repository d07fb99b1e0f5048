package stats

import (
	"slices"

	"github.com/arloliu/sigma/arith"
)

// Median returns the middle value of seq, or the mean of the two middle values
// when the length is even. An empty slice returns errs.ErrInsufficientData.
func Median[T arith.Real](seq []T) (T, error) {
	if err := checkCount(len(seq), 1); err != nil {
		return 0, err
	}

	return medianOfSorted(sortedCopy(seq)), nil
}

// MedianLow returns the lower of the two middle values for an even length and
// the middle value otherwise. No averaging happens, so any ordered type works.
func MedianLow[T arith.Ordered](seq []T) (T, error) {
	var zero T
	if err := checkCount(len(seq), 1); err != nil {
		return zero, err
	}

	sorted := sortedCopy(seq)
	if len(sorted)%2 == 0 {
		return sorted[len(sorted)/2-1], nil
	}

	return sorted[len(sorted)/2], nil
}

// MedianHigh returns the upper of the two middle values for an even length and
// the middle value otherwise.
func MedianHigh[T arith.Ordered](seq []T) (T, error) {
	var zero T
	if err := checkCount(len(seq), 1); err != nil {
		return zero, err
	}

	sorted := sortedCopy(seq)

	return sorted[len(sorted)/2], nil
}

func medianOfSorted[T arith.Real](sorted []T) T {
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}

	return sorted[mid]
}

// sortedCopy returns an ascending copy; the caller's slice keeps its order.
func sortedCopy[T arith.Ordered](seq []T) []T {
	sorted := slices.Clone(seq)
	slices.Sort(sorted)

	return sorted
}
