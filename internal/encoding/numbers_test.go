package encoding_test

import (
	"math"
	"testing"

	"github.com/devmattrick/enbeet/internal/encoding"
	"github.com/stretchr/testify/require"
)

func TestIntegers(t *testing.T) {
	t.Run("int16", func(t *testing.T) {
		b := encoding.AppendInt16(nil, -2)
		require.Equal(t, []byte{0xFF, 0xFE}, b)
		require.Equal(t, int16(-2), encoding.DecodeInt16(b))
	})

	t.Run("int32", func(t *testing.T) {
		b := encoding.AppendInt32(nil, 0x01020304)
		require.Equal(t, []byte{1, 2, 3, 4}, b)
		require.Equal(t, int32(0x01020304), encoding.DecodeInt32(b))

		b = encoding.AppendInt32(nil, math.MinInt32)
		require.Equal(t, int32(math.MinInt32), encoding.DecodeInt32(b))
	})

	t.Run("int64", func(t *testing.T) {
		b := encoding.AppendInt64(nil, -1)
		require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, b)
		require.Equal(t, int64(-1), encoding.DecodeInt64(b))

		b = encoding.AppendInt64(nil, math.MaxInt64)
		require.Equal(t, int64(math.MaxInt64), encoding.DecodeInt64(b))
	})

	t.Run("int8", func(t *testing.T) {
		b := encoding.AppendInt8([]byte{0x42}, -128)
		require.Equal(t, []byte{0x42, 0x80}, b)
		require.Equal(t, int8(-128), encoding.DecodeInt8(b[1:]))
	})
}

func TestFloats(t *testing.T) {
	tests := []float64{0, 1.5, -1.5, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(-1)}

	for _, test := range tests {
		b := encoding.AppendFloat64(nil, test)
		require.Len(t, b, 8)
		require.Equal(t, test, encoding.DecodeFloat64(b))
	}

	b := encoding.AppendFloat32(nil, 1)
	require.Equal(t, []byte{0x3F, 0x80, 0x00, 0x00}, b)
	require.Equal(t, float32(1), encoding.DecodeFloat32(b))

	nan := encoding.AppendFloat32(nil, float32(math.NaN()))
	require.True(t, math.IsNaN(float64(encoding.DecodeFloat32(nan))))
}
