package types_test

import (
	"testing"

	"github.com/devmattrick/enbeet/types"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		input string
		want  types.Path
	}{
		{"", nil},
		{"a", types.Path{"a"}},
		{"a.b.c", types.Path{"a", "b", "c"}},
		{"a..b", types.Path{"a", "", "b"}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			p := types.ParsePath(test.input)
			require.Equal(t, test.want, p)
			require.True(t, p.IsEqual(test.want))
			require.Equal(t, test.input, p.String())
		})
	}
}

func TestPathCompound(t *testing.T) {
	c := types.NewCompound()
	p := types.ParsePath("Level.Sections.Y")

	require.NoError(t, p.SetValueInCompound(c, types.NewByteValue(4)))

	v, ok := p.GetValueFromCompound(c)
	require.True(t, ok)
	require.Equal(t, types.NewByteValue(4), v)

	_, ok = p[:2].GetValueFromCompound(c)
	require.True(t, ok)

	cp := p.Clone()
	cp[0] = "Other"
	require.False(t, cp.IsEqual(p))
}
