package validate

import (
	"golang.org/x/exp/constraints"

	"github.com/tensorguard/tensorguard/types/shapes"
	"github.com/tensorguard/tensorguard/types/tensors"
)

// AssertSameDimensionsAt fails with ShapeMismatch if any of the extent
// vectors differs from the anchor on any axis.
func AssertSameDimensionsAt[T constraints.Integer](at Location, anchor shapes.Dimensions[T], others ...shapes.Dimensions[T]) {
	if !Enabled {
		return
	}
	for _, d := range others {
		errorOnMsg(differentDimensions(anchor, d, 0), ShapeMismatch, at,
			"objects have different dimensions")
	}
}

// AssertSameDimensions is AssertSameDimensionsAt reporting the caller as
// the call site.
func AssertSameDimensions[T constraints.Integer](anchor shapes.Dimensions[T], others ...shapes.Dimensions[T]) {
	if !Enabled {
		return
	}
	AssertSameDimensionsAt(locationAt(2), anchor, others...)
}

// AssertSameShapesFromAxisAt fails with ShapeMismatch if any tensor's
// shape differs from the first (anchor) tensor's shape on any axis at or
// above fromAxis, or with NullReference if any participant is absent.
// Non-anchor tensors are never compared against each other.
func AssertSameShapesFromAxisAt(at Location, fromAxis int, ts ...tensors.Tensor) {
	if !Enabled {
		return
	}
	errorOn(len(ts) == 0 || nilTensor(ts[0]), NullReference, at)
	anchor := ts[0].Info().Shape()
	for _, t := range ts[1:] {
		errorOn(nilTensor(t), NullReference, at)
		errorOnMsg(differentDimensions(anchor, t.Info().Shape(), fromAxis), ShapeMismatch, at,
			"tensors have different shapes")
	}
}

// AssertSameShapesFromAxis is AssertSameShapesFromAxisAt reporting the
// caller as the call site.
func AssertSameShapesFromAxis(fromAxis int, ts ...tensors.Tensor) {
	if !Enabled {
		return
	}
	AssertSameShapesFromAxisAt(locationAt(2), fromAxis, ts...)
}

// AssertSameShapesAt requires full-shape equality with the anchor,
// starting from axis 0.
func AssertSameShapesAt(at Location, ts ...tensors.Tensor) {
	if !Enabled {
		return
	}
	AssertSameShapesFromAxisAt(at, 0, ts...)
}

// AssertSameShapes is AssertSameShapesAt reporting the caller as the call
// site.
func AssertSameShapes(ts ...tensors.Tensor) {
	if !Enabled {
		return
	}
	AssertSameShapesFromAxisAt(locationAt(2), 0, ts...)
}

// AssertSameDataTypesAt fails with DataTypeMismatch if any tensor's data
// type differs from the anchor's, or with NullReference if any
// participant is absent.
func AssertSameDataTypesAt(at Location, ts ...tensors.Tensor) {
	if !Enabled {
		return
	}
	errorOn(len(ts) == 0 || nilTensor(ts[0]), NullReference, at)
	anchor := ts[0].Info().DataType()
	for _, t := range ts[1:] {
		errorOn(nilTensor(t), NullReference, at)
		errorOnMsg(t.Info().DataType() != anchor, DataTypeMismatch, at,
			"tensors have different data types")
	}
}

// AssertSameDataTypes is AssertSameDataTypesAt reporting the caller as
// the call site.
func AssertSameDataTypes(ts ...tensors.Tensor) {
	if !Enabled {
		return
	}
	AssertSameDataTypesAt(locationAt(2), ts...)
}

// AssertSameFixedPointAt checks that all tensors agree with the anchor on
// fixed-point data type (DataTypeMismatch) and fractional bit position
// (FixedPointPositionMismatch).
//
// It is a no-op when the anchor's data type is not fixed-point: the check
// is meaningless for floating-point and integer pipelines, even if later
// participants are fixed-point and mutually inconsistent.
func AssertSameFixedPointAt(at Location, ts ...tensors.Tensor) {
	if !Enabled {
		return
	}
	errorOn(len(ts) == 0 || nilTensor(ts[0]), NullReference, at)
	anchor := ts[0].Info()
	if !anchor.DataType().IsFixedPoint() {
		return
	}
	for _, t := range ts[1:] {
		errorOn(nilTensor(t), NullReference, at)
		errorOnMsg(t.Info().DataType() != anchor.DataType(), DataTypeMismatch, at,
			"tensors have different fixed-point data types")
	}
	for _, t := range ts[1:] {
		errorOnMsg(t.Info().FixedPointPosition() != anchor.FixedPointPosition(), FixedPointPositionMismatch, at,
			"tensors have different fixed-point positions")
	}
}

// AssertSameFixedPoint is AssertSameFixedPointAt reporting the caller as
// the call site.
func AssertSameFixedPoint(ts ...tensors.Tensor) {
	if !Enabled {
		return
	}
	AssertSameFixedPointAt(locationAt(2), ts...)
}

// AssertSameFixedPointPositionAt fails with FixedPointPositionMismatch if
// any tensor's fractional bit position differs from the anchor's,
// regardless of data type. Use it where data-type equality is already
// guaranteed and only the quantization scale needs confirming.
func AssertSameFixedPointPositionAt(at Location, ts ...tensors.Tensor) {
	if !Enabled {
		return
	}
	errorOn(len(ts) == 0 || nilTensor(ts[0]), NullReference, at)
	anchor := ts[0].Info().FixedPointPosition()
	for _, t := range ts[1:] {
		errorOn(nilTensor(t), NullReference, at)
		errorOnMsg(t.Info().FixedPointPosition() != anchor, FixedPointPositionMismatch, at,
			"tensors have different fixed-point positions")
	}
}

// AssertSameFixedPointPosition is AssertSameFixedPointPositionAt
// reporting the caller as the call site.
func AssertSameFixedPointPosition(ts ...tensors.Tensor) {
	if !Enabled {
		return
	}
	AssertSameFixedPointPositionAt(locationAt(2), ts...)
}
