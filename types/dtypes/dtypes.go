// Package dtypes enumerates the element types a tensor descriptor can
// carry, including the two signed fixed-point variants (QS8, QS16), and
// provides the numeric properties checks need: element sizes, fixed-point
// representable ranges and floating-point magnitude bounds.
package dtypes

import (
	"math"

	"github.com/x448/float16"
)

//go:generate go tool enumer -type=DataType

// DataType is the element type of a tensor.
type DataType int

const (
	// Unknown is the sentinel for an undefined element type.
	Unknown DataType = iota
	U8
	S8
	// QS8 is a signed 8-bit fixed-point type; the fractional bit count
	// lives in the descriptor, not in the type.
	QS8
	U16
	S16
	// QS16 is a signed 16-bit fixed-point type.
	QS16
	U32
	S32
	U64
	S64
	F16
	F32
	F64
)

// Size returns the element size in bytes, zero for Unknown.
func (dt DataType) Size() int {
	switch dt {
	case U8, S8, QS8:
		return 1
	case U16, S16, QS16, F16:
		return 2
	case U32, S32, F32:
		return 4
	case U64, S64, F64:
		return 8
	default:
		return 0
	}
}

// IsFixedPoint reports whether the type is one of the signed fixed-point
// variants.
func (dt DataType) IsFixedPoint() bool {
	return dt == QS8 || dt == QS16
}

// IsFloat reports whether the type is a floating-point variant.
func (dt DataType) IsFloat() bool {
	return dt == F16 || dt == F32 || dt == F64
}

// MaxFixedPointMagnitude returns the largest magnitude representable by a
// signed two's-complement fixed-point type with the given fractional bit
// position: (2^(bits-1) - 1) / 2^position.
//
// It returns zero for non-fixed-point types.
func MaxFixedPointMagnitude(dt DataType, position int) float32 {
	if !dt.IsFixedPoint() {
		return 0
	}
	bits := 8 * dt.Size()
	intMax := (1 << (bits - 1)) - 1
	return float32(intMax) / float32(int64(1)<<position)
}

// MaxMagnitude returns the largest finite magnitude a floating-point type
// can hold. It returns zero for non-float types.
func MaxMagnitude(dt DataType) float64 {
	switch dt {
	case F16:
		return float64(float16.Frombits(0x7bff).Float32())
	case F32:
		return math.MaxFloat32
	case F64:
		return math.MaxFloat64
	default:
		return 0
	}
}
