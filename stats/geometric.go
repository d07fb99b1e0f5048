package stats

import "github.com/arloliu/sigma/arith"

// GeometricMean returns the n-th root of the product of all values.
//
// An empty slice yields zero. A negative product with an even count has no
// real root and yields NaN for floats. The product is accumulated in T, so
// long float sequences can overflow to +Inf.
func GeometricMean[T arith.Real](seq []T) T {
	if len(seq) == 0 {
		return 0
	}

	return arith.PowFloat(Product(seq), 1/float64(len(seq)))
}
