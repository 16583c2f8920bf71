package types_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/devmattrick/enbeet/types"
	"github.com/stretchr/testify/require"
)

func TestNewValue(t *testing.T) {
	tests := []struct {
		native any
		want   types.Value
	}{
		{int8(-1), types.NewByteValue(-1)},
		{int16(2), types.NewShortValue(2)},
		{int32(3), types.NewIntValue(3)},
		{int64(4), types.NewLongValue(4)},
		{float32(1.5), types.NewFloatValue(1.5)},
		{float64(2.5), types.NewDoubleValue(2.5)},
		{[]byte{1, 2}, types.NewByteArrayValue([]byte{1, 2})},
		{"hi", types.NewStringValue("hi")},
		{[]int32{1}, types.NewIntArrayValue([]int32{1})},
		{[]int64{1}, types.NewLongArrayValue([]int64{1})},
	}

	for _, test := range tests {
		t.Run(test.want.Kind().String(), func(t *testing.T) {
			v, err := types.NewValue(test.native)
			require.NoError(t, err)
			require.True(t, types.Equal(test.want, v))
			require.Equal(t, test.native, v.V())
		})
	}

	for _, x := range []any{nil, 1, uint32(1), true, struct{}{}, (*types.List)(nil)} {
		_, err := types.NewValue(x)
		require.True(t, errors.Is(err, types.ErrUnmappedValueKind), "%T", x)
	}
}

func TestAs(t *testing.T) {
	var v types.Value = types.NewIntValue(10)

	i, ok := types.As[types.IntValue](v)
	require.True(t, ok)
	require.EqualValues(t, 10, i)

	_, ok = types.As[types.LongValue](v)
	require.False(t, ok)

	_, ok = types.As[*types.Compound](v)
	require.False(t, ok)
}
