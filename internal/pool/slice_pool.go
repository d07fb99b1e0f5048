// Package pool provides typed slice pools for scratch buffers used while
// transforming sample data, such as the log-space copies built by regression fits.
package pool

import "sync"

// SlicePool recycles slices of T.
type SlicePool[T any] struct {
	pool sync.Pool
}

// NewSlicePool creates an empty pool.
func NewSlicePool[T any]() *SlicePool[T] {
	sp := &SlicePool[T]{}
	sp.pool.New = func() any { return &[]T{} }

	return sp
}

// Get retrieves a slice of exactly size elements.
//
// The contents are unspecified; callers overwrite every element. A pooled
// slice with insufficient capacity is replaced by a new allocation.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []T: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	logY, cleanup := pool.Float64s.Get(len(y))
//	defer cleanup()
func (sp *SlicePool[T]) Get(size int) ([]T, func()) {
	ptr, _ := sp.pool.Get().(*[]T)
	if ptr == nil {
		ptr = &[]T{}
	}

	slice := *ptr
	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { sp.pool.Put(ptr) }
}

// Float64s is the shared pool of float64 scratch slices.
var Float64s = NewSlicePool[float64]()

// GetFloat64Slice retrieves a float64 slice of exactly size elements from Float64s.
func GetFloat64Slice(size int) ([]float64, func()) {
	return Float64s.Get(size)
}
