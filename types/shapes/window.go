package shapes

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// WindowDimension is the iteration range of a window over one axis:
// elements [Start, End) visited with the given Step.
type WindowDimension struct {
	Start, End, Step int
}

// Extent returns the number of indices the range spans, End-Start.
func (wd WindowDimension) Extent() int { return wd.End - wd.Start }

// NumIterations returns how many steps fit in the range.
func (wd WindowDimension) NumIterations() int {
	if wd.Step <= 0 || wd.End <= wd.Start {
		return 0
	}
	return (wd.Extent() + wd.Step - 1) / wd.Step
}

// String implements fmt.Stringer.
func (wd WindowDimension) String() string {
	return fmt.Sprintf("[%d,%d)/%d", wd.Start, wd.End, wd.Step)
}

// Window describes how a kernel iterates over a tensor: one
// WindowDimension per axis, up to MaxAxes.
//
// Use MakeWindow to create one: it initializes every axis to the unit
// span {0, 1, 1}, so untouched axes stay self-consistent. The zero value
// of Window is not valid.
type Window struct {
	dims [MaxAxes]WindowDimension
}

// MakeWindow returns a Window with every axis set to the unit span.
func MakeWindow() Window {
	var w Window
	for axis := range w.dims {
		w.dims[axis] = WindowDimension{Start: 0, End: 1, Step: 1}
	}
	return w
}

// WindowFromShape returns a Window covering the full extent of the given
// shape with step 1 on every axis. Axes beyond the shape's axes keep the
// unit span.
func WindowFromShape(shape TensorShape) Window {
	w := MakeWindow()
	for axis := 0; axis < shape.NumAxes(); axis++ {
		w.dims[axis] = WindowDimension{Start: 0, End: shape.At(axis), Step: 1}
	}
	return w
}

// Dim returns the iteration range of the given axis.
func (w Window) Dim(axis int) WindowDimension {
	return w.dims[axis]
}

// SetDim replaces the iteration range of the given axis.
func (w *Window) SetDim(axis int, wd WindowDimension) {
	w.dims[axis] = wd
}

// Check returns an error unless the window is self-consistent: on every
// axis the range must not be inverted (End ≥ Start) and the step must be
// positive. Self-consistency is independent of any other window.
func (w Window) Check() error {
	for axis, wd := range w.dims {
		if wd.End < wd.Start {
			return errors.Errorf("window axis %d has inverted range %s", axis, wd)
		}
		if wd.Step <= 0 {
			return errors.Errorf("window axis %d has non-positive step %d", axis, wd.Step)
		}
	}
	return nil
}

// IsValid reports whether Check passes.
func (w Window) IsValid() bool { return w.Check() == nil }

// NumIterations returns the total number of kernel invocations the window
// describes, the product of the per-axis iteration counts.
func (w Window) NumIterations() int {
	total := 1
	for _, wd := range w.dims {
		total *= wd.NumIterations()
	}
	return total
}

// String implements fmt.Stringer, printing axes up to the last
// non-unit-span one.
func (w Window) String() string {
	last := 0
	for axis, wd := range w.dims {
		if wd != (WindowDimension{Start: 0, End: 1, Step: 1}) {
			last = axis + 1
		}
	}
	parts := make([]string, 0, last)
	for axis := 0; axis < last; axis++ {
		parts = append(parts, w.dims[axis].String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}
