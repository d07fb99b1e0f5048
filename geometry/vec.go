package geometry

import "github.com/arloliu/sigma/arith"

// Vec2 is a 2D vector.
type Vec2[T arith.Real] struct {
	X, Y T
}

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }

// Scale multiplies both components by s.
func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{v.X * s, v.Y * s} }

// ScaleXY multiplies each component by its own factor.
func (v Vec2[T]) ScaleXY(sx, sy T) Vec2[T] { return Vec2[T]{v.X * sx, v.Y * sy} }

// Dot returns the dot product.
func (v Vec2[T]) Dot(o Vec2[T]) T { return v.X*o.X + v.Y*o.Y }

// LengthSquared returns X² + Y².
func (v Vec2[T]) LengthSquared() T { return v.Dot(v) }

// Length returns the Euclidean length, computed with Hypot.
func (v Vec2[T]) Length() T { return arith.Hypot(v.X, v.Y) }

// Normalize returns v scaled to unit length. The zero vector yields NaN
// components for floats and panics for integers.
func (v Vec2[T]) Normalize() Vec2[T] {
	d := v.Length()
	return Vec2[T]{v.X / d, v.Y / d}
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2[T]) Distance(o Vec2[T]) T { return o.Sub(v).Length() }

// DistanceSquared returns the squared Euclidean distance between v and o.
func (v Vec2[T]) DistanceSquared(o Vec2[T]) T { return o.Sub(v).LengthSquared() }

// Lerp returns the point at parameter t on the segment from v to o.
func (v Vec2[T]) Lerp(o Vec2[T], t T) Vec2[T] {
	return Vec2[T]{Interpolate(t, v.X, o.X), Interpolate(t, v.Y, o.Y)}
}

// Vec3 is a 3D vector.
type Vec3[T arith.Real] struct {
	X, Y, Z T
}

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale multiplies every component by s.
func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }

// ScaleXYZ multiplies each component by its own factor.
func (v Vec3[T]) ScaleXYZ(sx, sy, sz T) Vec3[T] { return Vec3[T]{v.X * sx, v.Y * sy, v.Z * sz} }

// Dot returns the dot product.
func (v Vec3[T]) Dot(o Vec3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns X² + Y² + Z².
func (v Vec3[T]) LengthSquared() T { return v.Dot(v) }

// Length returns the Euclidean length.
func (v Vec3[T]) Length() T { return arith.Sqrt(v.LengthSquared()) }

// Normalize returns v scaled to unit length.
func (v Vec3[T]) Normalize() Vec3[T] {
	d := v.Length()
	return Vec3[T]{v.X / d, v.Y / d, v.Z / d}
}

// Distance returns the Euclidean distance between v and o.
func (v Vec3[T]) Distance(o Vec3[T]) T { return o.Sub(v).Length() }

// DistanceSquared returns the squared Euclidean distance between v and o.
func (v Vec3[T]) DistanceSquared(o Vec3[T]) T { return o.Sub(v).LengthSquared() }

// Area returns the area of a dx × dy rectangle.
func Area[T arith.Multiplicable](dx, dy T) T { return dx * dy }

// Volume returns the volume of a dx × dy × dz box.
func Volume[T arith.Multiplicable](dx, dy, dz T) T { return dx * dy * dz }
