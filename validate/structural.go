package validate

import (
	"github.com/tensorguard/tensorguard/types/shapes"
)

// AssertNotNilAt fails with NullReference if any of the references is
// absent.
func AssertNotNilAt(at Location, refs ...any) {
	if !Enabled {
		return
	}
	for _, ref := range refs {
		errorOn(isNil(ref), NullReference, at)
	}
}

// AssertNotNil is AssertNotNilAt reporting the caller as the call site.
func AssertNotNil(refs ...any) {
	if !Enabled {
		return
	}
	AssertNotNilAt(locationAt(2), refs...)
}

// AssertWindowsMatchAt fails with WindowMismatch unless win is self-valid
// and spans the full window with the same step on every axis. Used when a
// kernel must operate over the entire iteration space with identical
// striding.
func AssertWindowsMatchAt(at Location, full, win shapes.Window) {
	if !Enabled {
		return
	}
	errorOnMsg(full.Check() != nil, WindowMismatch, at, "full window %s is not valid", full)
	errorOnMsg(win.Check() != nil, WindowMismatch, at, "window %s is not valid", win)
	for axis := 0; axis < shapes.MaxAxes; axis++ {
		f, w := full.Dim(axis), win.Dim(axis)
		errorOnMsg(w.Start != f.Start || w.End != f.End, WindowMismatch, at,
			"axis %d spans %s, full window spans %s", axis, w, f)
		errorOnMsg(w.Step != f.Step, WindowMismatch, at,
			"axis %d has step %d, full window has step %d", axis, w.Step, f.Step)
	}
}

// AssertWindowsMatch is AssertWindowsMatchAt reporting the caller as the
// call site.
func AssertWindowsMatch(full, win shapes.Window) {
	if !Enabled {
		return
	}
	AssertWindowsMatchAt(locationAt(2), full, win)
}

// AssertValidSubwindowAt fails with SubwindowViolation unless sub is
// self-valid, fully contained in full's [start, end) bounds and stepping
// at full's stride on every axis. Containment is what makes bounded
// iteration inside a larger space safe; the step must match because a
// sub-window samples at its parent's stride over a narrower span.
func AssertValidSubwindowAt(at Location, full, sub shapes.Window) {
	if !Enabled {
		return
	}
	errorOnMsg(full.Check() != nil, SubwindowViolation, at, "full window %s is not valid", full)
	errorOnMsg(sub.Check() != nil, SubwindowViolation, at, "subwindow %s is not valid", sub)
	for axis := 0; axis < shapes.MaxAxes; axis++ {
		f, s := full.Dim(axis), sub.Dim(axis)
		errorOnMsg(s.Start < f.Start || s.End > f.End, SubwindowViolation, at,
			"axis %d spans %s, outside the full window's %s", axis, s, f)
		errorOnMsg(s.Step != f.Step, SubwindowViolation, at,
			"axis %d has step %d, full window has step %d", axis, s.Step, f.Step)
	}
}

// AssertValidSubwindow is AssertValidSubwindowAt reporting the caller as
// the call site.
func AssertValidSubwindow(full, sub shapes.Window) {
	if !Enabled {
		return
	}
	AssertValidSubwindowAt(locationAt(2), full, sub)
}

// AssertCoordinatesWithinAxesAt fails with DimensionOverflow if any axis
// at or beyond maxAxes carries a non-zero offset, i.e. the coordinates
// claim more axes than the caller supports.
func AssertCoordinatesWithinAxesAt(at Location, pos shapes.Coordinates, maxAxes int) {
	if !Enabled {
		return
	}
	for axis := maxAxes; axis < shapes.MaxAxes; axis++ {
		errorOnMsg(pos.At(axis) != 0, DimensionOverflow, at,
			"expected at most %d axes, but axis %d carries offset %d", maxAxes, axis, pos.At(axis))
	}
}

// AssertCoordinatesWithinAxes is AssertCoordinatesWithinAxesAt reporting
// the caller as the call site.
func AssertCoordinatesWithinAxes(pos shapes.Coordinates, maxAxes int) {
	if !Enabled {
		return
	}
	AssertCoordinatesWithinAxesAt(locationAt(2), pos, maxAxes)
}

// AssertWindowWithinAxesAt fails with DimensionOverflow if any axis at or
// beyond maxAxes spans more than the unit range, i.e. the window claims
// more axes than the caller supports.
func AssertWindowWithinAxesAt(at Location, win shapes.Window, maxAxes int) {
	if !Enabled {
		return
	}
	for axis := maxAxes; axis < shapes.MaxAxes; axis++ {
		wd := win.Dim(axis)
		errorOnMsg(wd.Start != 0 || wd.End != 1, DimensionOverflow, at,
			"expected at most %d axes, but axis %d spans %s", maxAxes, axis, wd)
	}
}

// AssertWindowWithinAxes is AssertWindowWithinAxesAt reporting the caller
// as the call site.
func AssertWindowWithinAxes(win shapes.Window, maxAxes int) {
	if !Enabled {
		return
	}
	AssertWindowWithinAxesAt(locationAt(2), win, maxAxes)
}

// AssertValidSubtensorAt fails with SubtensorViolation if the offset
// coordinates are negative on any axis, or offset+extent runs past the
// parent shape on any axis. The upper bound is inclusive: a sub-tensor
// ending exactly at the parent's extent passes.
func AssertValidSubtensorAt(at Location, parent shapes.TensorShape, coords shapes.Coordinates, sub shapes.TensorShape) {
	if !Enabled {
		return
	}
	for axis := 0; axis < shapes.MaxAxes; axis++ {
		errorOnMsg(coords.At(axis) < 0, SubtensorViolation, at,
			"axis %d has negative offset %d", axis, coords.At(axis))
		errorOnMsg(coords.At(axis)+sub.At(axis) > parent.At(axis), SubtensorViolation, at,
			"axis %d: offset %d + extent %d exceeds parent extent %d",
			axis, coords.At(axis), sub.At(axis), parent.At(axis))
	}
}

// AssertValidSubtensor is AssertValidSubtensorAt reporting the caller as
// the call site.
func AssertValidSubtensor(parent shapes.TensorShape, coords shapes.Coordinates, sub shapes.TensorShape) {
	if !Enabled {
		return
	}
	AssertValidSubtensorAt(locationAt(2), parent, coords, sub)
}

// AssertValidRegionWithinAt fails with ValidRegionViolation unless the
// candidate region is fully contained in the parent's valid region on
// every axis.
func AssertValidRegionWithinAt(at Location, parent, region shapes.ValidRegion) {
	if !Enabled {
		return
	}
	errorOnMsg(!parent.Contains(region), ValidRegionViolation, at,
		"valid region %s not contained in parent valid region %s", region, parent)
}

// AssertValidRegionWithin is AssertValidRegionWithinAt reporting the
// caller as the call site.
func AssertValidRegionWithin(parent, region shapes.ValidRegion) {
	if !Enabled {
		return
	}
	AssertValidRegionWithinAt(locationAt(2), parent, region)
}
