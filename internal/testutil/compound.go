package testutil

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/devmattrick/enbeet/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// MakeCompound creates a compound from a json string.
func MakeCompound(t testing.TB, jsonDoc string) *types.Compound {
	t.Helper()

	c, err := types.ParseJSON([]byte(jsonDoc))
	require.NoError(t, err)
	return c
}

// MakeList creates a list of the given kind, failing the test on error.
func MakeList(t testing.TB, kind types.Kind, values ...types.Value) *types.List {
	t.Helper()

	l, err := types.NewList(kind, values...)
	require.NoError(t, err)
	return l
}

// RequireCompoundEqual fails the test if want and got don't hold the
// same tree. The failure message is a diff of both trees with their
// kinds, keys sorted.
func RequireCompoundEqual(t testing.TB, want, got *types.Compound) {
	t.Helper()

	if types.Equal(want, got) {
		return
	}

	diff := cmp.Diff(Lines(want), Lines(got))
	if diff == "" {
		// Equal disagrees with the text form, typically NaN payloads
		diff = "trees differ in float bits"
	}
	require.Failf(t, "mismatched compounds, (-want, +got)", "%s", diff)
}

// RequireJSONEq fails if the JSON form of c isn't equivalent to expected.
func RequireJSONEq(t testing.TB, c *types.Compound, expected string) {
	t.Helper()

	data, err := c.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, expected, string(data))
}

// Lines returns one line per leaf of v, in the form "path: Kind value",
// with compound keys sorted.
func Lines(v types.Value) []string {
	var lines []string
	appendLines(&lines, "", v)
	return lines
}

func appendLines(lines *[]string, prefix string, v types.Value) {
	switch t := v.(type) {
	case *types.Compound:
		if t == nil {
			*lines = append(*lines, prefix+": <nil>")
			return
		}
		keys := t.Keys()
		sort.Strings(keys)
		if len(keys) == 0 {
			*lines = append(*lines, prefix+": Compound {}")
		}
		for _, k := range keys {
			child, _ := t.Get(k)
			appendLines(lines, join(prefix, k), child)
		}
	case *types.List:
		*lines = append(*lines, fmt.Sprintf("%s: List<%s> len=%d", prefix, t.ElemKind(), t.Len()))
		_ = t.Iterate(func(i int, elem types.Value) error {
			appendLines(lines, fmt.Sprintf("%s[%d]", prefix, i), elem)
			return nil
		})
	case nil:
		*lines = append(*lines, prefix+": <nil>")
	default:
		*lines = append(*lines, fmt.Sprintf("%s: %s %v", prefix, t.Kind(), t.V()))
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return strings.Join([]string{prefix, key}, ".")
}
