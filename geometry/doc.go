// Package geometry provides small generic vector and scaling helpers built on
// the arith constraints: 2D and 3D vectors, areas and volumes, aspect-fit and
// aspect-fill scaling, and range normalization and interpolation.
//
// Vectors are values; every operation returns a new vector.
//
//	v := geometry.Vec3[float64]{X: 1, Y: 2, Z: 2}
//	fmt.Println(v.Length())          // 3
//	fmt.Println(v.Normalize())       // {0.333 0.667 0.667}
//
//	scale := geometry.ScaleForAspectFit(1920.0, 1080.0, 640.0, 640.0) // 1/3
package geometry
