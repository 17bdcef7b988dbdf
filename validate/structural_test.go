package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tensorguard/tensorguard/types/shapes"
	"github.com/tensorguard/tensorguard/types/tensors"
)

func TestAssertNotNil(t *testing.T) {
	requirePass(t, func() {
		AssertNotNil(f32Tensor(2, 2), f32Tensor(3))
	})

	failure := requireFailure(t, func() {
		AssertNotNil(f32Tensor(2, 2), nil)
	})
	require.Equal(t, NullReference, failure.Kind)

	// A typed nil wrapped in an interface is still absent.
	var info *tensors.Info
	failure = requireFailure(t, func() {
		AssertNotNil(info)
	})
	require.Equal(t, NullReference, failure.Kind)
}

func TestAssertWindowsMatch(t *testing.T) {
	full := shapes.WindowFromShape(shapes.MakeShape(8, 8))

	requirePass(t, func() {
		AssertWindowsMatch(full, full)
	})

	narrower := full
	narrower.SetDim(0, shapes.WindowDimension{Start: 0, End: 4, Step: 1})
	failure := requireFailure(t, func() {
		AssertWindowsMatch(full, narrower)
	})
	require.Equal(t, WindowMismatch, failure.Kind)

	differentStep := full
	differentStep.SetDim(1, shapes.WindowDimension{Start: 0, End: 8, Step: 2})
	failure = requireFailure(t, func() {
		AssertWindowsMatch(full, differentStep)
	})
	require.Equal(t, WindowMismatch, failure.Kind)

	invalid := full
	invalid.SetDim(0, shapes.WindowDimension{Start: 4, End: 0, Step: 1})
	failure = requireFailure(t, func() {
		AssertWindowsMatch(full, invalid)
	})
	require.Equal(t, WindowMismatch, failure.Kind)
}

func TestAssertValidSubwindow(t *testing.T) {
	full := shapes.WindowFromShape(shapes.MakeShape(8, 8))

	// A sub-window equal to the full window is contained.
	requirePass(t, func() {
		AssertValidSubwindow(full, full)
	})

	inner := full
	inner.SetDim(0, shapes.WindowDimension{Start: 2, End: 6, Step: 1})
	requirePass(t, func() {
		AssertValidSubwindow(full, inner)
	})

	// Containment is asymmetric: an oversized window fails even though
	// steps match.
	oversized := full
	oversized.SetDim(0, shapes.WindowDimension{Start: 0, End: 9, Step: 1})
	failure := requireFailure(t, func() {
		AssertValidSubwindow(full, oversized)
	})
	require.Equal(t, SubwindowViolation, failure.Kind)

	differentStep := inner
	differentStep.SetDim(0, shapes.WindowDimension{Start: 2, End: 6, Step: 2})
	failure = requireFailure(t, func() {
		AssertValidSubwindow(full, differentStep)
	})
	require.Equal(t, SubwindowViolation, failure.Kind)

	invalid := full
	invalid.SetDim(1, shapes.WindowDimension{Start: 0, End: 8, Step: 0})
	failure = requireFailure(t, func() {
		AssertValidSubwindow(full, invalid)
	})
	require.Equal(t, SubwindowViolation, failure.Kind)
}

func TestAssertCoordinatesWithinAxes(t *testing.T) {
	pos := shapes.MakeCoordinates(3, 4)

	requirePass(t, func() {
		AssertCoordinatesWithinAxes(pos, 2)
	})

	failure := requireFailure(t, func() {
		AssertCoordinatesWithinAxes(pos, 1)
	})
	require.Equal(t, DimensionOverflow, failure.Kind)
	require.Contains(t, failure.Message, "axis 1")
}

func TestAssertWindowWithinAxes(t *testing.T) {
	win := shapes.WindowFromShape(shapes.MakeShape(8, 8, 3))

	requirePass(t, func() {
		AssertWindowWithinAxes(win, 3)
	})

	failure := requireFailure(t, func() {
		AssertWindowWithinAxes(win, 2)
	})
	require.Equal(t, DimensionOverflow, failure.Kind)

	// Unit-span axes do not count against the bound.
	requirePass(t, func() {
		AssertWindowWithinAxes(shapes.MakeWindow(), 0)
	})
}

func TestAssertValidSubtensor(t *testing.T) {
	parent := shapes.MakeShape(10, 10)

	// 7+3 = 10 is boundary-inclusive.
	requirePass(t, func() {
		AssertValidSubtensor(parent, shapes.MakeCoordinates(7, 7), shapes.MakeShape(3, 3))
	})

	// 8+3 = 11 > 10.
	failure := requireFailure(t, func() {
		AssertValidSubtensor(parent, shapes.MakeCoordinates(8, 8), shapes.MakeShape(3, 3))
	})
	require.Equal(t, SubtensorViolation, failure.Kind)

	failure = requireFailure(t, func() {
		AssertValidSubtensor(parent, shapes.MakeCoordinates(-1, 0), shapes.MakeShape(3, 3))
	})
	require.Equal(t, SubtensorViolation, failure.Kind)
	require.Contains(t, failure.Message, "negative offset")
}

func TestAssertValidRegionWithin(t *testing.T) {
	parent := shapes.MakeValidRegion(shapes.MakeCoordinates(1, 1), shapes.MakeShape(8, 8))

	requirePass(t, func() {
		AssertValidRegionWithin(parent, parent)
	})
	requirePass(t, func() {
		AssertValidRegionWithin(parent,
			shapes.MakeValidRegion(shapes.MakeCoordinates(2, 2), shapes.MakeShape(4, 4)))
	})

	failure := requireFailure(t, func() {
		AssertValidRegionWithin(parent,
			shapes.MakeValidRegion(shapes.MakeCoordinates(0, 1), shapes.MakeShape(8, 8)))
	})
	require.Equal(t, ValidRegionViolation, failure.Kind)

	failure = requireFailure(t, func() {
		AssertValidRegionWithin(parent,
			shapes.MakeValidRegion(shapes.MakeCoordinates(5, 5), shapes.MakeShape(8, 8)))
	})
	require.Equal(t, ValidRegionViolation, failure.Kind)
}
