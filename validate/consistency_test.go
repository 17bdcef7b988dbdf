package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tensorguard/tensorguard/types/dtypes"
	"github.com/tensorguard/tensorguard/types/shapes"
	"github.com/tensorguard/tensorguard/types/tensors"
)

func TestAssertSameDimensions(t *testing.T) {
	requirePass(t, func() {
		AssertSameDimensions(shapes.MakeShape(2, 3), shapes.MakeShape(2, 3), shapes.MakeShape(2, 3))
	})

	failure := requireFailure(t, func() {
		AssertSameDimensions(shapes.MakeShape(2, 3), shapes.MakeShape(2, 3), shapes.MakeShape(3, 2))
	})
	require.Equal(t, ShapeMismatch, failure.Kind)

	// Works over coordinates too.
	requirePass(t, func() {
		AssertSameDimensions(shapes.MakeCoordinates(-1, 2), shapes.MakeCoordinates(-1, 2))
	})
}

func TestAssertSameShapes(t *testing.T) {
	requirePass(t, func() {
		AssertSameShapes(f32Tensor(2, 2), f32Tensor(2, 2), f32Tensor(2, 2))
	})

	// Anchor-relative: the third tensor disagrees with the first even
	// though the second agrees with the anchor.
	failure := requireFailure(t, func() {
		AssertSameShapes(f32Tensor(2, 2), f32Tensor(2, 2), f32Tensor(3, 3))
	})
	require.Equal(t, ShapeMismatch, failure.Kind)

	// Reordering so the odd one out is the anchor still fails.
	failure = requireFailure(t, func() {
		AssertSameShapes(f32Tensor(3, 3), f32Tensor(2, 2), f32Tensor(2, 2))
	})
	require.Equal(t, ShapeMismatch, failure.Kind)

	// Nil checks take precedence over the shape predicate.
	failure = requireFailure(t, func() {
		AssertSameShapes(f32Tensor(2, 2), nil)
	})
	require.Equal(t, NullReference, failure.Kind)

	failure = requireFailure(t, func() {
		AssertSameShapes()
	})
	require.Equal(t, NullReference, failure.Kind)
}

func TestAssertSameShapesFromAxis(t *testing.T) {
	a := f32Tensor(2, 3, 4)
	b := f32Tensor(5, 3, 4)

	failure := requireFailure(t, func() {
		AssertSameShapesFromAxis(0, a, b)
	})
	require.Equal(t, ShapeMismatch, failure.Kind)

	// Axis 0, where they differ, is excluded from axis 1 upward.
	requirePass(t, func() {
		AssertSameShapesFromAxis(1, a, b)
	})
}

func TestAssertSameDataTypes(t *testing.T) {
	u8 := tensors.FromInfo(tensors.NewInfo(shapes.MakeShape(4), 1, dtypes.U8, 0))

	requirePass(t, func() {
		AssertSameDataTypes(f32Tensor(4), f32Tensor(4))
	})

	failure := requireFailure(t, func() {
		AssertSameDataTypes(f32Tensor(4), u8)
	})
	require.Equal(t, DataTypeMismatch, failure.Kind)
	require.Contains(t, failure.Message, "different data types")
}

func TestAssertSameFixedPoint(t *testing.T) {
	qs8At4 := tensorOf(dtypes.QS8, 4, 4)
	qs8At5 := tensorOf(dtypes.QS8, 5, 4)
	qs16At4 := tensorOf(dtypes.QS16, 4, 4)

	requirePass(t, func() {
		AssertSameFixedPoint(qs8At4, qs8At4, qs8At4)
	})

	failure := requireFailure(t, func() {
		AssertSameFixedPoint(qs8At4, qs16At4)
	})
	require.Equal(t, DataTypeMismatch, failure.Kind)

	failure = requireFailure(t, func() {
		AssertSameFixedPoint(qs8At4, qs8At5)
	})
	require.Equal(t, FixedPointPositionMismatch, failure.Kind)

	// No-op when the anchor is not fixed-point, even if the rest are
	// fixed-point and mutually inconsistent.
	requirePass(t, func() {
		AssertSameFixedPoint(f32Tensor(4), qs8At4, qs8At5, qs16At4)
	})
}

func TestAssertSameFixedPointPosition(t *testing.T) {
	qs8At4 := tensorOf(dtypes.QS8, 4, 4)
	qs16At4 := tensorOf(dtypes.QS16, 4, 4)
	qs16At3 := tensorOf(dtypes.QS16, 3, 4)

	// Positions are compared regardless of data type.
	requirePass(t, func() {
		AssertSameFixedPointPosition(qs8At4, qs16At4)
	})

	failure := requireFailure(t, func() {
		AssertSameFixedPointPosition(qs8At4, qs16At3)
	})
	require.Equal(t, FixedPointPositionMismatch, failure.Kind)
}
