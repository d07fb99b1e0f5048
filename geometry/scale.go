package geometry

import "github.com/arloliu/sigma/arith"

// ScaleForAspectFit returns the largest uniform scale at which a content of
// size (contentDX, contentDY) fits entirely inside an area of size (areaDX, areaDY).
func ScaleForAspectFit[T arith.Real](contentDX, contentDY, areaDX, areaDY T) T {
	return min(areaDX/contentDX, areaDY/contentDY)
}

// ScaleForAspectFill returns the smallest uniform scale at which a content
// covers the whole area; the overflowing dimension is cropped.
func ScaleForAspectFill[T arith.Real](contentDX, contentDY, areaDX, areaDY T) T {
	return max(areaDX/contentDX, areaDY/contentDY)
}

// AspectFit returns the content size scaled by ScaleForAspectFit.
func AspectFit[T arith.Real](contentDX, contentDY, areaDX, areaDY T) Vec2[T] {
	s := ScaleForAspectFit(contentDX, contentDY, areaDX, areaDY)
	return Vec2[T]{contentDX, contentDY}.Scale(s)
}

// AspectFill returns the content size scaled by ScaleForAspectFill.
func AspectFill[T arith.Real](contentDX, contentDY, areaDX, areaDY T) Vec2[T] {
	s := ScaleForAspectFill(contentDX, contentDY, areaDX, areaDY)
	return Vec2[T]{contentDX, contentDY}.Scale(s)
}

// Normalize maps value from [lo, hi] onto [0, 1].
func Normalize[T arith.Real](value, lo, hi T) T {
	return (value - lo) / (hi - lo)
}

// Denormalize maps t from [0, 1] onto [lo, hi]. It is the inverse of Normalize.
func Denormalize[T arith.Real](t, lo, hi T) T {
	return t*(hi-lo) + lo
}

// Interpolate returns the value at parameter t between lo and hi.
func Interpolate[T arith.Real](t, lo, hi T) T {
	return Denormalize(t, lo, hi)
}

// MapRange maps value from [fromLo, fromHi] onto [toLo, toHi].
func MapRange[T arith.Real](value, fromLo, fromHi, toLo, toHi T) T {
	return toLo + (toHi-toLo)*(value-fromLo)/(fromHi-fromLo)
}
