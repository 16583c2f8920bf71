package types_test

import (
	"math"
	"testing"

	"github.com/devmattrick/enbeet/internal/testutil"
	"github.com/devmattrick/enbeet/types"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	nan := math.Float64frombits(0x7FF8000000000001)

	tests := []struct {
		name  string
		a, b  types.Value
		equal bool
	}{
		{"same int", types.NewIntValue(1), types.NewIntValue(1), true},
		{"different int", types.NewIntValue(1), types.NewIntValue(2), false},
		{"int vs long", types.NewIntValue(1), types.NewLongValue(1), false},
		{"nan", types.NewDoubleValue(nan), types.NewDoubleValue(nan), true},
		{"zero sign", types.NewDoubleValue(0), types.NewDoubleValue(math.Copysign(0, -1)), false},
		{"float", types.NewFloatValue(1.5), types.NewFloatValue(1.5), true},
		{"bytes", types.NewByteArrayValue([]byte{1}), types.NewByteArrayValue([]byte{1}), true},
		{"bytes differ", types.NewByteArrayValue([]byte{1}), types.NewByteArrayValue([]byte{2}), false},
		{"ints", types.NewIntArrayValue([]int32{1, 2}), types.NewIntArrayValue([]int32{1, 2}), true},
		{"longs", types.NewLongArrayValue([]int64{1}), types.NewLongArrayValue([]int64{1, 2}), false},
		{"strings", types.NewStringValue("a"), types.NewStringValue("a"), true},
		{
			"compound order ignored",
			types.NewCompound().Add("a", types.NewIntValue(1)).Add("b", types.NewIntValue(2)),
			types.NewNamedCompound("x").Add("b", types.NewIntValue(2)).Add("a", types.NewIntValue(1)),
			true,
		},
		{
			"compound missing key",
			types.NewCompound().Add("a", types.NewIntValue(1)),
			types.NewCompound().Add("b", types.NewIntValue(1)),
			false,
		},
		{
			"empty lists of different kinds",
			testutil.MakeList(t, types.KindInt),
			testutil.MakeList(t, types.KindEnd),
			false,
		},
		{
			"list order matters",
			testutil.MakeList(t, types.KindInt, types.NewIntValue(1), types.NewIntValue(2)),
			testutil.MakeList(t, types.KindInt, types.NewIntValue(2), types.NewIntValue(1)),
			false,
		},
		{"nil", nil, nil, true},
		{"nil and value", nil, types.NewIntValue(0), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.equal, types.Equal(test.a, test.b))
			require.Equal(t, test.equal, types.Equal(test.b, test.a))
		})
	}
}
