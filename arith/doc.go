// Package arith provides the numeric capability contracts consumed by the sigma
// statistics engine.
//
// Go has no operator traits, so capabilities are expressed as generic type-set
// constraints. Each operation elsewhere in sigma declares the smallest
// constraint it needs instead of one monolithic numeric interface:
//
//   - Addable: integers, floats, complex numbers and strings (everything with +)
//   - Multiplicable: integers, floats and complex numbers
//   - Real: integers and floats (ordered, divisible by a small integer)
//   - SignedReal: signed integers and floats (negatable)
//   - Unsigned: unsigned integers (binary GCD/LCM)
//   - Ordered: anything sortable, strings included
//
// # Elementary Math
//
// The ElementaryMath capability (square root, power, trigonometry, gamma, ...)
// is implemented once as generic functions routed through the standard math
// package. Integer arguments are converted to float64 and the result is
// converted back, truncating toward zero:
//
//	arith.Sqrt(16.0)     // 4
//	arith.Sqrt(int32(17)) // 4
//
// # Complex Numbers
//
// Complex[T] is an immutable (real, imaginary) pair over any SignedReal type
// with the four arithmetic operations defined through the same constraints.
package arith
