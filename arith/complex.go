package arith

import "fmt"

// Complex is an immutable complex number whose parts share the element type T.
//
// Unlike the built-in complex64/complex128, T may be any signed integer or
// float type. All operations return new values.
type Complex[T SignedReal] struct {
	re T
	im T
}

// NewComplex creates re + im·i.
func NewComplex[T SignedReal](re, im T) Complex[T] {
	return Complex[T]{re: re, im: im}
}

// FromReal creates x + 0i.
func FromReal[T SignedReal](x T) Complex[T] {
	return Complex[T]{re: x}
}

// Imaginary creates 0 + x·i.
func Imaginary[T SignedReal](x T) Complex[T] {
	return Complex[T]{im: x}
}

func (c Complex[T]) Real() T { return c.re }
func (c Complex[T]) Imag() T { return c.im }

// Add returns c + o.
func (c Complex[T]) Add(o Complex[T]) Complex[T] {
	return Complex[T]{re: c.re + o.re, im: c.im + o.im}
}

// Sub returns c - o.
func (c Complex[T]) Sub(o Complex[T]) Complex[T] {
	return Complex[T]{re: c.re - o.re, im: c.im - o.im}
}

// Mul returns c * o using three real multiplications.
func (c Complex[T]) Mul(o Complex[T]) Complex[T] {
	rr := c.re * o.re
	ii := c.im * o.im

	return Complex[T]{
		re: rr - ii,
		im: (c.re+c.im)*(o.re+o.im) - rr - ii,
	}
}

// Div returns c / o. Division by zero follows the semantics of T:
// Inf/NaN parts for floats, a run-time panic for integers.
func (c Complex[T]) Div(o Complex[T]) Complex[T] {
	den := o.re*o.re + o.im*o.im

	return Complex[T]{
		re: (c.re*o.re + c.im*o.im) / den,
		im: (c.im*o.re - c.re*o.im) / den,
	}
}

// Scale multiplies both parts by k.
func (c Complex[T]) Scale(k T) Complex[T] {
	return Complex[T]{re: c.re * k, im: c.im * k}
}

func (c Complex[T]) Neg() Complex[T] {
	return Complex[T]{re: -c.re, im: -c.im}
}

func (c Complex[T]) Conjugate() Complex[T] {
	return Complex[T]{re: c.re, im: -c.im}
}

// TimesI returns c·i.
func (c Complex[T]) TimesI() Complex[T] {
	return Complex[T]{re: -c.im, im: c.re}
}

// Norm returns the squared magnitude re² + im².
func (c Complex[T]) Norm() T {
	return c.re*c.re + c.im*c.im
}

// Abs returns the magnitude |c|.
func (c Complex[T]) Abs() T {
	return Hypot(c.re, c.im)
}

// Argument returns the phase angle atan2(im, re).
func (c Complex[T]) Argument() T {
	return Atan2(c.im, c.re)
}

// Sqrt applies the square root to each part independently,
// so Sqrt(4+9i) is 2+3i. It is not the principal complex square root.
func (c Complex[T]) Sqrt() Complex[T] {
	return Complex[T]{re: Sqrt(c.re), im: Sqrt(c.im)}
}

func (c Complex[T]) Equal(o Complex[T]) bool {
	return c.re == o.re && c.im == o.im
}

func (c Complex[T]) IsZero() bool {
	return c.re == 0 && c.im == 0
}

// String formats c as "a+bi" or "a-bi".
func (c Complex[T]) String() string {
	if c.im < 0 {
		return fmt.Sprintf("%v-%vi", c.re, -c.im)
	}

	return fmt.Sprintf("%v+%vi", c.re, c.im)
}
