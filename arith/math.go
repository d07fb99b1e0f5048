package arith

import "math"

// Sqrt returns the square root of x.
func Sqrt[T Real](x T) T { return T(math.Sqrt(float64(x))) }

// Cbrt returns the cube root of x.
func Cbrt[T Real](x T) T { return T(math.Cbrt(float64(x))) }

// Pow returns x**y with both operands of the element type.
func Pow[T Real](x, y T) T { return T(math.Pow(float64(x), float64(y))) }

// PowFloat returns x**y for a real exponent, so fractional powers such as
// x^1.5 stay exact even when T is an integer type.
func PowFloat[T Real](x T, y float64) T { return T(math.Pow(float64(x), y)) }

func Exp[T Real](x T) T   { return T(math.Exp(float64(x))) }
func Exp2[T Real](x T) T  { return T(math.Exp2(float64(x))) }
func Log[T Real](x T) T   { return T(math.Log(float64(x))) }
func Log2[T Real](x T) T  { return T(math.Log2(float64(x))) }
func Log10[T Real](x T) T { return T(math.Log10(float64(x))) }
func Log1p[T Real](x T) T { return T(math.Log1p(float64(x))) }

// Gamma returns the Gamma function of x.
func Gamma[T Real](x T) T { return T(math.Gamma(float64(x))) }

// LogGamma returns the natural logarithm of |Gamma(x)|.
func LogGamma[T Real](x T) T {
	lg, _ := math.Lgamma(float64(x))
	return T(lg)
}

func Erf[T Real](x T) T  { return T(math.Erf(float64(x))) }
func Erfc[T Real](x T) T { return T(math.Erfc(float64(x))) }

func Sin[T Real](x T) T  { return T(math.Sin(float64(x))) }
func Cos[T Real](x T) T  { return T(math.Cos(float64(x))) }
func Tan[T Real](x T) T  { return T(math.Tan(float64(x))) }
func Asin[T Real](x T) T { return T(math.Asin(float64(x))) }
func Acos[T Real](x T) T { return T(math.Acos(float64(x))) }
func Atan[T Real](x T) T { return T(math.Atan(float64(x))) }
func Sinh[T Real](x T) T { return T(math.Sinh(float64(x))) }
func Cosh[T Real](x T) T { return T(math.Cosh(float64(x))) }
func Tanh[T Real](x T) T { return T(math.Tanh(float64(x))) }

// Atan2 returns the arc tangent of y/x using the signs of both to pick the quadrant.
func Atan2[T Real](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// Hypot returns sqrt(p*p + q*q) without undue overflow.
func Hypot[T Real](p, q T) T { return T(math.Hypot(float64(p), float64(q))) }

// Abs returns the absolute value of x. Unsigned values are returned unchanged.
func Abs[T Real](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

func Floor[T Real](x T) T { return T(math.Floor(float64(x))) }
func Ceil[T Real](x T) T  { return T(math.Ceil(float64(x))) }
func Round[T Real](x T) T { return T(math.Round(float64(x))) }

// Fract returns the fractional part x - floor(x); always zero for integers.
func Fract[T Real](x T) T { return x - Floor(x) }

// Reciprocal returns 1/x using the division semantics of T.
func Reciprocal[T Real](x T) T { return T(1) / x }

// Clamp limits x to the closed range [lo, hi].
func Clamp[T Ordered](x, lo, hi T) T { return max(lo, min(hi, x)) }

// IsZero reports whether x equals the additive identity.
func IsZero[T Real](x T) bool { return x == 0 }

// IsSignMinus reports whether x is strictly negative.
func IsSignMinus[T SignedReal](x T) bool { return x < 0 }
