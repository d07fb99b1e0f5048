package arith

import "math"

// Mathematical constants shared by every numeric type. They are untyped, so
// they convert to float32 or float64 at the use site.
const (
	Pi        = math.Pi
	HalfPi    = math.Pi / 2
	QuarterPi = math.Pi / 4
	TwoPi     = 2 * math.Pi
	InvPi     = 1 / math.Pi
	TwoInvPi  = 2 / math.Pi

	Sqrt2 = math.Sqrt2

	E      = math.E
	Log2E  = math.Log2E
	Log10E = math.Log10E
	Ln2    = math.Ln2
	Ln10   = math.Ln10

	// Phi is the golden ratio (1 + √5) / 2.
	Phi = math.Phi
)
