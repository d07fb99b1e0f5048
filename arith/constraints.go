package arith

import "golang.org/x/exp/constraints"

// Aliases of the x/exp constraint sets so callers need a single import.
type (
	Signed   = constraints.Signed
	Unsigned = constraints.Unsigned
	Integer  = constraints.Integer
	Float    = constraints.Float
	Ordered  = constraints.Ordered
)

// Real permits every built-in integer and floating-point type.
type Real interface {
	Integer | Float
}

// SignedReal permits types that support unary negation.
type SignedReal interface {
	Signed | Float
}

// Addable permits every type supporting the + operator, strings included.
type Addable interface {
	Real | constraints.Complex | ~string
}

// Multiplicable permits every type supporting the * operator.
type Multiplicable interface {
	Real | constraints.Complex
}
