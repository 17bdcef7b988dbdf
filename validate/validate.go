// Package validate checks the structural preconditions a kernel assumes
// about its inputs before it reads or writes tensor data: matching
// shapes, compatible data types, valid sub-region containment, consistent
// fixed-point quantization, configured kernels and well-formed iteration
// windows.
//
// Every check is a pure predicate over already-constructed descriptors.
// A passing check returns silently; a failing check panics with a
// *Failure carrying the failure Kind, the call site (function, file,
// line) and a rendered message. Use Catch to convert a raised Failure
// into a returned error at whatever layer decides presentation:
//
//	err := validate.Catch(func() {
//		validate.AssertSameShapes(input, output)
//		validate.AssertDataTypeIn(input, dtypes.QS8, dtypes.QS16)
//	})
//
// Checks never accumulate violations: the first failing condition wins.
// Variadic comparison checks treat their first element as the anchor and
// compare every later element against it only, never pairwise.
//
// Each check comes in two forms: a bare one that captures its caller as
// the reported call site, and an ...At form taking an explicit Location,
// for callers that thread a call site through helper layers (and for
// tests, which can inject a synthetic one).
//
// Building with the tag "novalidate" turns every check into an empty
// function with no residual cost; callers must therefore never rely on a
// check for anything but diagnostics.
package validate

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"

	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"
	"k8s.io/klog/v2"

	"github.com/tensorguard/tensorguard/types/shapes"
	"github.com/tensorguard/tensorguard/types/tensors"
)

// Kind classifies a validation failure.
type Kind int

const (
	NullReference Kind = iota
	WindowMismatch
	SubwindowViolation
	DimensionOverflow
	ShapeMismatch
	DataTypeMismatch
	FixedPointPositionMismatch
	UnknownFormat
	UnsupportedFormat
	UnknownDataType
	UnsupportedDataType
	ChannelCountMismatch
	RankMismatch
	UnknownChannel
	UnsupportedChannel
	EmptyContainer
	InconsistentContainer
	KernelNotConfigured
	SubtensorViolation
	ValidRegionViolation
	ValueNotRepresentable
)

var kindNames = [...]string{
	NullReference:              "NullReference",
	WindowMismatch:             "WindowMismatch",
	SubwindowViolation:         "SubwindowViolation",
	DimensionOverflow:          "DimensionOverflow",
	ShapeMismatch:              "ShapeMismatch",
	DataTypeMismatch:           "DataTypeMismatch",
	FixedPointPositionMismatch: "FixedPointPositionMismatch",
	UnknownFormat:              "UnknownFormat",
	UnsupportedFormat:          "UnsupportedFormat",
	UnknownDataType:            "UnknownDataType",
	UnsupportedDataType:        "UnsupportedDataType",
	ChannelCountMismatch:       "ChannelCountMismatch",
	RankMismatch:               "RankMismatch",
	UnknownChannel:             "UnknownChannel",
	UnsupportedChannel:         "UnsupportedChannel",
	EmptyContainer:             "EmptyContainer",
	InconsistentContainer:      "InconsistentContainer",
	KernelNotConfigured:        "KernelNotConfigured",
	SubtensorViolation:         "SubtensorViolation",
	ValidRegionViolation:       "ValidRegionViolation",
	ValueNotRepresentable:      "ValueNotRepresentable",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Location identifies the call site a failure is attributed to.
type Location struct {
	Function string
	File     string
	Line     int
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("%s (%s:%d)", l.Function, l.File, l.Line)
}

// locationAt captures the frame skip levels above this call:
// skip=1 is the caller of locationAt.
func locationAt(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{Function: "<unknown>", File: "<unknown>"}
	}
	function := "<unknown>"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
	}
	return Location{Function: function, File: filepath.Base(file), Line: line}
}

// Here captures the caller's own location, for threading through helper
// layers into the ...At check variants.
func Here() Location {
	return locationAt(2)
}

// Failure is the structured value every failed check panics with.
type Failure struct {
	Kind     Kind
	Location Location
	Message  string
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.Message == "" {
		return fmt.Sprintf("%s in %s", f.Kind, f.Location)
	}
	return fmt.Sprintf("%s in %s: %s", f.Kind, f.Location, f.Message)
}

// Catch runs fn and returns the validation failure it raised, if any, as
// an error. It returns nil if fn completes. Panics that are not errors
// propagate.
func Catch(fn func()) error {
	return exceptions.TryCatch[error](fn)
}

// errorOn panics with a message-less Failure when cond holds.
func errorOn(cond bool, kind Kind, at Location) {
	if !cond {
		return
	}
	f := &Failure{Kind: kind, Location: at}
	klog.V(2).Info(f.Error())
	panic(f)
}

// errorOnMsg panics with a Failure carrying a rendered message when cond
// holds. Every check in this package reports through here or errorOn,
// nothing else.
func errorOnMsg(cond bool, kind Kind, at Location, format string, args ...any) {
	if !cond {
		return
	}
	f := &Failure{Kind: kind, Location: at, Message: fmt.Sprintf(format, args...)}
	klog.V(2).Info(f.Error())
	panic(f)
}

// isNil reports whether ref is absent, seeing through non-nil interfaces
// wrapping nil pointers.
func isNil(ref any) bool {
	if ref == nil {
		return true
	}
	v := reflect.ValueOf(ref)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// nilTensor reports whether a tensor or its descriptor is absent.
func nilTensor(t tensors.Tensor) bool {
	return isNil(t) || t.Info() == nil
}

// differentDimensions reports whether the two extent vectors disagree on
// any axis at or above fromAxis.
func differentDimensions[T constraints.Integer](d1, d2 shapes.Dimensions[T], fromAxis int) bool {
	for axis := fromAxis; axis < shapes.MaxAxes; axis++ {
		if d1.At(axis) != d2.At(axis) {
			return true
		}
	}
	return false
}

// oneOf reports whether value equals any of the allowed values.
func oneOf[T comparable](value T, allowed []T) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
