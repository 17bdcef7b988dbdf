// Package shapes defines the geometry types inspected by kernel
// precondition checks: fixed-capacity extent vectors (Dimensions,
// TensorShape, Coordinates), iteration windows and valid regions.
//
// All types are small values, created once by whoever owns the tensor or
// kernel and only read afterwards. None of them owns storage.
//
// ## Glossary
//
//   - Axis: the index of a dimension, 0-based, at most MaxAxes of them.
//   - Extent: the size of an object along one axis.
//   - Rank: the highest axis carrying an extent > 1, plus one.
//   - Window: per-axis (start, end, step) triplets describing how a kernel
//     iterates over a tensor.
//   - Valid region: the sub-rectangle of a tensor that holds meaningful
//     (as opposed to padding) data.
package shapes

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"
)

// MaxAxes is the fixed capacity of every extent vector: no tensor, window
// or coordinate object addresses more axes than this.
const MaxAxes = 6

// Dimensions is a fixed-capacity per-axis vector of integer values.
// Axes beyond the logical rank of the described object read as zero and
// compare as such.
//
// The zero value is a valid, all-zero vector.
type Dimensions[T constraints.Integer] struct {
	values [MaxAxes]T
}

// MakeDimensions returns a Dimensions vector with the given per-axis
// values. It panics if more than MaxAxes values are given.
func MakeDimensions[T constraints.Integer](values ...T) Dimensions[T] {
	if len(values) > MaxAxes {
		exceptions.Panicf("shapes.MakeDimensions(%v): got %d axes, capacity is %d", values, len(values), MaxAxes)
	}
	var d Dimensions[T]
	copy(d.values[:], values)
	return d
}

// At returns the value stored for the given axis. Axes in [0, MaxAxes)
// are always addressable; the ones beyond the logical rank are zero.
func (d Dimensions[T]) At(axis int) T {
	if axis < 0 || axis >= MaxAxes {
		exceptions.Panicf("shapes.Dimensions.At(%d): out-of-bounds, capacity is %d", axis, MaxAxes)
	}
	return d.values[axis]
}

// Set stores a value for the given axis.
func (d *Dimensions[T]) Set(axis int, value T) {
	if axis < 0 || axis >= MaxAxes {
		exceptions.Panicf("shapes.Dimensions.Set(%d): out-of-bounds, capacity is %d", axis, MaxAxes)
	}
	d.values[axis] = value
}

// NumAxes returns the number of axes carrying a non-zero value, counting
// from the highest. An all-zero vector has zero axes.
func (d Dimensions[T]) NumAxes() int {
	for axis := MaxAxes - 1; axis >= 0; axis-- {
		if d.values[axis] != 0 {
			return axis + 1
		}
	}
	return 0
}

// Equal reports whether both vectors hold the same value on every axis.
func (d Dimensions[T]) Equal(other Dimensions[T]) bool {
	return d.values == other.values
}

// String implements fmt.Stringer, printing only the axes up to NumAxes.
func (d Dimensions[T]) String() string {
	parts := make([]string, 0, MaxAxes)
	for axis := 0; axis < d.NumAxes(); axis++ {
		parts = append(parts, fmt.Sprintf("%d", d.values[axis]))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// TensorShape is a per-axis extent vector describing an N-dimensional
// array. Extents beyond the rank are zero.
type TensorShape = Dimensions[int]

// Coordinates is a per-axis vector of signed offsets.
type Coordinates = Dimensions[int]

// MakeShape returns a TensorShape with the given extents.
// Negative extents are rejected.
func MakeShape(extents ...int) TensorShape {
	for _, e := range extents {
		if e < 0 {
			exceptions.Panicf("shapes.MakeShape(%v): extents must be non-negative", extents)
		}
	}
	return MakeDimensions(extents...)
}

// MakeCoordinates returns a Coordinates vector with the given offsets.
func MakeCoordinates(offsets ...int) Coordinates {
	return MakeDimensions(offsets...)
}

// Rank returns the logical rank of a shape: the highest axis with an
// extent larger than one, plus one. Unit extents do not add to the rank,
// so [320 240 1] and [320 240] are both rank 2.
func Rank(shape TensorShape) int {
	for axis := MaxAxes - 1; axis >= 0; axis-- {
		if shape.At(axis) > 1 {
			return axis + 1
		}
	}
	return 0
}

// TotalSize returns the number of elements the shape spans, the product
// of all non-zero extents. An all-zero shape has size zero.
func TotalSize(shape TensorShape) int {
	if shape.NumAxes() == 0 {
		return 0
	}
	size := 1
	for axis := 0; axis < shape.NumAxes(); axis++ {
		if e := shape.At(axis); e != 0 {
			size *= e
		}
	}
	return size
}

// Size2D holds a width/height pair, used for block and cell geometry.
type Size2D struct {
	Width, Height int
}

// Area returns Width*Height.
func (s Size2D) Area() int { return s.Width * s.Height }

// String implements fmt.Stringer.
func (s Size2D) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }
