package encoding_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/devmattrick/enbeet/internal/encoding"
	"github.com/stretchr/testify/require"
)

func TestDecodeVarInts(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []int32
	}{
		{"empty", []byte{}, []int32{}},
		{"zero", []byte{0x00}, []int32{0}},
		{"one byte max", []byte{0x7F}, []int32{127}},
		{"two bytes", []byte{0xFF, 0x01}, []int32{255}},
		{"300000", []byte{0xE0, 0xA7, 0x12}, []int32{300000}},
		{"624485", []byte{0xE5, 0x8E, 0x26}, []int32{624485}},
		{"sequence", []byte{0x01, 0xAC, 0x02, 0x00}, []int32{1, 300, 0}},
		{"minus one", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}, []int32{-1}},
		// the fifth byte carries 7 bits but only 4 fit in 32 bits
		{"truncated high bits", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x7F}, []int32{-1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := encoding.DecodeVarInts(test.input)
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestDecodeVarIntsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"six continuation bytes", []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
		{"sixth byte terminates", []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}},
		{"truncated", []byte{0x01, 0x80}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := encoding.DecodeVarInts(test.input)
			require.True(t, errors.Is(err, encoding.ErrMalformedVarInt), "got %v", err)
		})
	}
}

func TestAppendVarInt(t *testing.T) {
	require.Equal(t, []byte{0x00}, encoding.AppendVarInt(nil, 0))
	require.Equal(t, []byte{0xE0, 0xA7, 0x12}, encoding.AppendVarInt(nil, 300000))
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}, encoding.AppendVarInt(nil, -1))

	values := []int32{0, 1, 127, 128, 255, 300000, math.MaxInt32, math.MinInt32, -1}
	b := encoding.AppendVarInts(nil, values)
	got, err := encoding.DecodeVarInts(b)
	require.NoError(t, err)
	require.Equal(t, values, got)
}
