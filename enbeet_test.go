package enbeet_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devmattrick/enbeet"
	"github.com/devmattrick/enbeet/codec"
	"github.com/devmattrick/enbeet/internal/testutil"
	"github.com/devmattrick/enbeet/types"
	"github.com/stretchr/testify/require"
)

func TestReadWrite(t *testing.T) {
	c := testutil.MakeCompound(t, `{"name": "Steve", "pos": [1.5, 64.0, -3.25], "inventory": [{"id": "minecraft:dirt", "count": 64}]}`)

	var buf bytes.Buffer
	require.NoError(t, enbeet.Write(&buf, c))
	require.Equal(t, []byte{0x1f, 0x8b}, buf.Bytes()[:2])

	got, err := enbeet.Read(&buf)
	require.NoError(t, err)
	testutil.RequireCompoundEqual(t, c, got)
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.dat")

	c := types.NewNamedCompound("Data").
		Add("LevelName", types.NewStringValue("world")).
		Add("Seed", types.NewLongValue(-4172144997902289642))

	require.NoError(t, enbeet.WriteFile(path, c, codec.WithCompression(codec.Zstd)))

	got, err := enbeet.ReadFile(path)
	require.NoError(t, err)
	testutil.RequireCompoundEqual(t, c, got)

	// no temporary file left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	_, err = enbeet.ReadFile(filepath.Join(dir, "missing.dat"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFileFailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.dat")

	c := types.NewCompound().Add("a", types.NewIntValue(1))
	require.NoError(t, enbeet.WriteFile(path, c))

	bad := types.NewCompound().Add("a", types.NewStringValue(strings.Repeat("x", 1<<16)))
	require.Error(t, enbeet.WriteFile(path, bad))

	got, err := enbeet.ReadFile(path)
	require.NoError(t, err)
	testutil.RequireCompoundEqual(t, c, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
