package arith

import (
	"fmt"

	"github.com/arloliu/sigma/errs"
)

// RiemannSum approximates the integral of fn over [lower, upper] with a left
// Riemann sum of step interval. Sample points are lower, lower+interval, ...
// up to and including upper when it is hit exactly.
//
// Returns errs.ErrInvalidInterval when interval is not positive.
func RiemannSum[T Real](lower, upper, interval T, fn func(T) T) (T, error) {
	var sum T
	if interval <= 0 {
		return sum, fmt.Errorf("%w: %v", errs.ErrInvalidInterval, interval)
	}

	for x := lower; x <= upper; {
		sum += fn(x) * interval

		next := x + interval
		// integer wrap-around, or a step lost to float rounding
		if next <= x {
			break
		}
		x = next
	}

	return sum, nil
}
