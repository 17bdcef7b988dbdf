// Package tensors defines the tensor descriptor (Info) inspected by
// kernel precondition checks, and the read-only interfaces through which
// tensors and multi-planar images expose it.
//
// Nothing here owns element storage: Info is metadata only, and Tensor is
// whatever object the pipeline hands a kernel, seen through its
// descriptor.
package tensors

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"

	"github.com/tensorguard/tensorguard/types/dtypes"
	"github.com/tensorguard/tensorguard/types/pixels"
	"github.com/tensorguard/tensorguard/types/shapes"
)

// Info is a tensor descriptor: shape, element type, channel count, pixel
// format and, for fixed-point element types, the fractional bit position.
//
// Create it with NewInfo or NewInfoFromFormat.
type Info struct {
	shape              shapes.TensorShape
	numChannels        int
	dataType           dtypes.DataType
	fixedPointPosition int
	format             pixels.Format
	validRegion        shapes.ValidRegion
}

// NewInfo returns a descriptor for a tensor with the given shape, number
// of interleaved channels, element type and fixed-point position. The
// position only has meaning for fixed-point element types and must be
// zero otherwise. The valid region defaults to the full extent.
func NewInfo(shape shapes.TensorShape, numChannels int, dataType dtypes.DataType, fixedPointPosition int) *Info {
	if numChannels <= 0 {
		exceptions.Panicf("tensors.NewInfo: number of channels must be positive, got %d", numChannels)
	}
	if dataType.IsFixedPoint() {
		if fixedPointPosition < 0 || fixedPointPosition >= 8*dataType.Size() {
			exceptions.Panicf("tensors.NewInfo: fixed-point position %d out of range for %s", fixedPointPosition, dataType)
		}
	} else if fixedPointPosition != 0 {
		exceptions.Panicf("tensors.NewInfo: fixed-point position %d given for non-fixed-point type %s", fixedPointPosition, dataType)
	}
	return &Info{
		shape:              shape,
		numChannels:        numChannels,
		dataType:           dataType,
		fixedPointPosition: fixedPointPosition,
		format:             pixels.Unknown,
		validRegion:        shapes.MakeValidRegion(shapes.Coordinates{}, shape),
	}
}

// NewInfoFromFormat returns a descriptor for an image tensor, deriving
// element type and channel count from the pixel format.
func NewInfoFromFormat(shape shapes.TensorShape, format pixels.Format) *Info {
	if format == pixels.Unknown {
		exceptions.Panicf("tensors.NewInfoFromFormat: format must be known")
	}
	info := NewInfo(shape, format.NumChannels(), format.DataType(), 0)
	info.format = format
	return info
}

// Shape returns the per-axis extents.
func (i *Info) Shape() shapes.TensorShape { return i.shape }

// NumChannels returns the number of interleaved channels per element.
func (i *Info) NumChannels() int { return i.numChannels }

// DataType returns the element type.
func (i *Info) DataType() dtypes.DataType { return i.dataType }

// FixedPointPosition returns the number of fractional bits, zero for
// non-fixed-point element types.
func (i *Info) FixedPointPosition() int { return i.fixedPointPosition }

// Format returns the pixel format, pixels.Unknown for plain tensors.
func (i *Info) Format() pixels.Format { return i.format }

// ValidRegion returns the sub-rectangle holding meaningful data.
func (i *Info) ValidRegion() shapes.ValidRegion { return i.validRegion }

// SetValidRegion narrows the region holding meaningful data, e.g. after a
// border-producing kernel ran.
func (i *Info) SetValidRegion(vr shapes.ValidRegion) { i.validRegion = vr }

// TotalSizeBytes returns the storage footprint the descriptor implies.
func (i *Info) TotalSizeBytes() int {
	return shapes.TotalSize(i.shape) * i.numChannels * i.dataType.Size()
}

// String implements fmt.Stringer.
func (i *Info) String() string {
	return fmt.Sprintf("(%s)%s ch=%d %s", i.dataType, i.shape, i.numChannels,
		humanize.IBytes(uint64(i.TotalSizeBytes())))
}

// Tensor is the read-only view checks take of a tensor object: only its
// descriptor is inspected, never its storage.
type Tensor interface {
	Info() *Info
}

// header adapts a bare descriptor to the Tensor interface.
type header struct {
	info *Info
}

func (h header) Info() *Info { return h.info }

// FromInfo wraps a descriptor in a storage-less Tensor, useful to run
// checks before any storage exists.
func FromInfo(info *Info) Tensor { return header{info: info} }

// MultiImageInfo describes a multi-planar image: its format and the
// extent of plane 0 (chroma plane extents follow from the format).
type MultiImageInfo struct {
	width, height int
	format        pixels.Format
}

// NewMultiImageInfo returns a multi-planar image descriptor.
func NewMultiImageInfo(width, height int, format pixels.Format) *MultiImageInfo {
	return &MultiImageInfo{width: width, height: height, format: format}
}

// Width returns the plane-0 width in pixels.
func (m *MultiImageInfo) Width() int { return m.width }

// Height returns the plane-0 height in pixels.
func (m *MultiImageInfo) Height() int { return m.height }

// Format returns the pixel format.
func (m *MultiImageInfo) Format() pixels.Format { return m.format }

// MultiImage is the read-only view checks take of a multi-planar image.
type MultiImage interface {
	Info() *MultiImageInfo
	// Plane returns the tensor backing the given plane.
	Plane(index int) Tensor
}
