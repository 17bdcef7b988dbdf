package pixels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tensorguard/tensorguard/types/dtypes"
)

func TestFormatDataType(t *testing.T) {
	require.Equal(t, dtypes.U8, RGB888.DataType())
	require.Equal(t, dtypes.U8, NV12.DataType())
	require.Equal(t, dtypes.S16, S16.DataType())
	require.Equal(t, dtypes.F16, F16.DataType())
	require.Equal(t, dtypes.Unknown, Unknown.DataType())
}

func TestFormatNumChannels(t *testing.T) {
	require.Equal(t, 1, U8.NumChannels())
	require.Equal(t, 2, YUYV422.NumChannels())
	require.Equal(t, 3, RGB888.NumChannels())
	require.Equal(t, 4, RGBA8888.NumChannels())
	require.Equal(t, 0, Unknown.NumChannels())
}

func TestFormatNumPlanes(t *testing.T) {
	require.Equal(t, 1, RGB888.NumPlanes())
	require.Equal(t, 2, NV12.NumPlanes())
	require.Equal(t, 3, IYUV.NumPlanes())
	require.Equal(t, 0, Unknown.NumPlanes())
}

func TestChannelsOf(t *testing.T) {
	require.Equal(t, []Channel{R, G, B}, ChannelsOf(RGB888))
	require.Equal(t, []Channel{R, G, B, A}, ChannelsOf(RGBA8888))
	require.Equal(t, []Channel{Y, U, V}, ChannelsOf(NV21))
	require.Equal(t, []Channel{U, V}, ChannelsOf(UV88))
	require.Nil(t, ChannelsOf(U8))
	require.Nil(t, ChannelsOf(Unknown))
}

func TestStrings(t *testing.T) {
	require.Equal(t, "RGBA8888", RGBA8888.String())
	require.Equal(t, "Unknown", Unknown.String())
	require.Equal(t, "Format(42)", Format(42).String())

	f, err := FormatString("nv12")
	require.NoError(t, err)
	require.Equal(t, NV12, f)
	_, err = FormatString("BGR")
	require.Error(t, err)

	require.Equal(t, "Y", Y.String())
	require.Equal(t, "C2", C2.String())
	require.Equal(t, "Unknown", ChannelUnknown.String())
}
