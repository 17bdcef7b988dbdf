package dtypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	require.Equal(t, 0, Unknown.Size())
	require.Equal(t, 1, U8.Size())
	require.Equal(t, 1, QS8.Size())
	require.Equal(t, 2, QS16.Size())
	require.Equal(t, 2, F16.Size())
	require.Equal(t, 4, F32.Size())
	require.Equal(t, 8, F64.Size())
}

func TestIsFixedPoint(t *testing.T) {
	require.True(t, QS8.IsFixedPoint())
	require.True(t, QS16.IsFixedPoint())
	require.False(t, S8.IsFixedPoint())
	require.False(t, F32.IsFixedPoint())
}

func TestMaxFixedPointMagnitude(t *testing.T) {
	// 8 bits, 4 fractional: (2^7 - 1) / 2^4.
	require.Equal(t, float32(7.9375), MaxFixedPointMagnitude(QS8, 4))
	require.Equal(t, float32(127), MaxFixedPointMagnitude(QS8, 0))
	require.Equal(t, float32(32767)/float32(256), MaxFixedPointMagnitude(QS16, 8))
	require.Equal(t, float32(0), MaxFixedPointMagnitude(F32, 4))
}

func TestMaxMagnitude(t *testing.T) {
	require.Equal(t, float64(65504), MaxMagnitude(F16))
	require.Greater(t, MaxMagnitude(F32), float64(3e38))
	require.Greater(t, MaxMagnitude(F64), MaxMagnitude(F32))
	require.Equal(t, float64(0), MaxMagnitude(QS8))
}

func TestStrings(t *testing.T) {
	require.Equal(t, "QS8", QS8.String())
	require.Equal(t, "Unknown", Unknown.String())
	require.Equal(t, "DataType(99)", DataType(99).String())

	dt, err := DataTypeString("qs16")
	require.NoError(t, err)
	require.Equal(t, QS16, dt)

	_, err = DataTypeString("Q7")
	require.Error(t, err)

	require.Len(t, DataTypeValues(), 14)
	require.True(t, F32.IsADataType())
	require.False(t, DataType(99).IsADataType())
}
