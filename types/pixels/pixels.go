// Package pixels enumerates pixel formats and color channels, and holds
// the static table mapping each known format to its valid channel set.
package pixels

import "github.com/tensorguard/tensorguard/types/dtypes"

//go:generate go tool enumer -type=Format

// Format is the pixel format of an image tensor or multi-planar image.
type Format int

const (
	// Unknown is the sentinel for an undefined format.
	Unknown Format = iota
	U8
	S16
	U16
	S32
	U32
	F16
	F32
	// UV88 holds interleaved U and V chroma samples.
	UV88
	RGB888
	RGBA8888
	YUV444
	YUYV422
	UYVY422
	NV12
	NV21
	IYUV
)

// DataType returns the element type the format stores its samples in.
func (f Format) DataType() dtypes.DataType {
	switch f {
	case U8, UV88, RGB888, RGBA8888, YUV444, YUYV422, UYVY422, NV12, NV21, IYUV:
		return dtypes.U8
	case S16:
		return dtypes.S16
	case U16:
		return dtypes.U16
	case S32:
		return dtypes.S32
	case U32:
		return dtypes.U32
	case F16:
		return dtypes.F16
	case F32:
		return dtypes.F32
	default:
		return dtypes.Unknown
	}
}

// NumChannels returns the number of interleaved channels in plane 0.
func (f Format) NumChannels() int {
	switch f {
	case U8, S16, U16, S32, U32, F16, F32, NV12, NV21, IYUV:
		return 1
	case UV88, YUYV422, UYVY422:
		return 2
	case RGB888, YUV444:
		return 3
	case RGBA8888:
		return 4
	default:
		return 0
	}
}

// NumPlanes returns the number of planes the format spreads its samples
// over.
func (f Format) NumPlanes() int {
	switch f {
	case NV12, NV21:
		return 2
	case IYUV:
		return 3
	case Unknown:
		return 0
	default:
		return 1
	}
}

// Channel identifies a single color channel of a format.
type Channel int

const (
	// ChannelUnknown is the sentinel for an undefined channel.
	ChannelUnknown Channel = iota
	// C0, C1, C2, C3 address channels of generic interleaved formats.
	C0
	C1
	C2
	C3
	R
	G
	B
	A
	Y
	U
	V
)

// String implements fmt.Stringer.
func (c Channel) String() string {
	switch c {
	case ChannelUnknown:
		return "Unknown"
	case C0:
		return "C0"
	case C1:
		return "C1"
	case C2:
		return "C2"
	case C3:
		return "C3"
	case R:
		return "R"
	case G:
		return "G"
	case B:
		return "B"
	case A:
		return "A"
	case Y:
		return "Y"
	case U:
		return "U"
	case V:
		return "V"
	}
	return "Channel(?)"
}

// formatChannels maps every known format to the channels it carries.
// Formats absent from the table (the plain numeric ones) carry no named
// channels.
var formatChannels = map[Format][]Channel{
	RGB888:   {R, G, B},
	RGBA8888: {R, G, B, A},
	UV88:     {U, V},
	YUV444:   {Y, U, V},
	YUYV422:  {Y, U, V},
	UYVY422:  {Y, U, V},
	NV12:     {Y, U, V},
	NV21:     {Y, U, V},
	IYUV:     {Y, U, V},
}

// ChannelsOf returns the valid channel set for the given format, nil if
// the format carries no named channels.
func ChannelsOf(f Format) []Channel {
	return formatChannels[f]
}
