package arith

// GCD returns the greatest common divisor of a and b using Stein's binary
// algorithm. GCD(0, x) and GCD(x, 0) are x.
func GCD[T Unsigned](a, b T) T {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}

	// factor out the common powers of two
	shift := 0
	for (a|b)&1 == 0 {
		a >>= 1
		b >>= 1
		shift++
	}
	for a&1 == 0 {
		a >>= 1
	}

	for {
		for b&1 == 0 {
			b >>= 1
		}
		if a > b {
			a, b = b, a
		}
		b -= a
		if b == 0 {
			break
		}
	}

	return a << shift
}

// LCM returns the least common multiple of a and b, or zero when either is zero.
// Overflow of T is not detected.
func LCM[T Unsigned](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	return a / GCD(a, b) * b
}
