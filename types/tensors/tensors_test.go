package tensors

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/require"

	"github.com/tensorguard/tensorguard/types/dtypes"
	"github.com/tensorguard/tensorguard/types/pixels"
	"github.com/tensorguard/tensorguard/types/shapes"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo(shapes.MakeShape(320, 240), 1, dtypes.QS8, 4)
	require.Equal(t, shapes.MakeShape(320, 240), info.Shape())
	require.Equal(t, 1, info.NumChannels())
	require.Equal(t, dtypes.QS8, info.DataType())
	require.Equal(t, 4, info.FixedPointPosition())
	require.Equal(t, pixels.Unknown, info.Format())
	require.Equal(t, 320*240, info.TotalSizeBytes())

	// The valid region defaults to the full extent.
	vr := info.ValidRegion()
	require.Equal(t, shapes.Coordinates{}, vr.Anchor)
	require.Equal(t, info.Shape(), vr.Shape)

	narrowed := shapes.MakeValidRegion(shapes.MakeCoordinates(1, 1), shapes.MakeShape(318, 238))
	info.SetValidRegion(narrowed)
	require.Equal(t, narrowed, info.ValidRegion())
}

func TestNewInfoRejectsBadArguments(t *testing.T) {
	exception := exceptions.Try(func() {
		NewInfo(shapes.MakeShape(4), 0, dtypes.U8, 0)
	})
	require.NotNil(t, exception)

	// Fixed-point position on a non-fixed-point type.
	exception = exceptions.Try(func() {
		NewInfo(shapes.MakeShape(4), 1, dtypes.F32, 3)
	})
	require.NotNil(t, exception)

	// Position out of range for QS8.
	exception = exceptions.Try(func() {
		NewInfo(shapes.MakeShape(4), 1, dtypes.QS8, 8)
	})
	require.NotNil(t, exception)
}

func TestNewInfoFromFormat(t *testing.T) {
	info := NewInfoFromFormat(shapes.MakeShape(320, 240), pixels.RGB888)
	require.Equal(t, dtypes.U8, info.DataType())
	require.Equal(t, 3, info.NumChannels())
	require.Equal(t, pixels.RGB888, info.Format())
	require.Equal(t, 320*240*3, info.TotalSizeBytes())

	exception := exceptions.Try(func() {
		NewInfoFromFormat(shapes.MakeShape(4, 4), pixels.Unknown)
	})
	require.NotNil(t, exception)
}

func TestInfoString(t *testing.T) {
	info := NewInfoFromFormat(shapes.MakeShape(320, 240), pixels.RGB888)
	s := info.String()
	require.Contains(t, s, "U8")
	require.Contains(t, s, "[320,240]")
	require.Contains(t, s, "ch=3")
}

func TestFromInfo(t *testing.T) {
	info := NewInfo(shapes.MakeShape(4), 1, dtypes.F32, 0)
	tensor := FromInfo(info)
	require.Same(t, info, tensor.Info())
}

func TestMultiImageInfo(t *testing.T) {
	info := NewMultiImageInfo(640, 480, pixels.NV12)
	require.Equal(t, 640, info.Width())
	require.Equal(t, 480, info.Height())
	require.Equal(t, pixels.NV12, info.Format())
}
