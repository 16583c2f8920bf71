package store_test

import (
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/devmattrick/enbeet/codec"
	"github.com/devmattrick/enbeet/internal/testutil"
	"github.com/devmattrick/enbeet/store"
	"github.com/devmattrick/enbeet/types"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts *store.Options) *store.Store {
	t.Helper()

	s, err := store.Open(store.InMemory, opts)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestStorePutGet(t *testing.T) {
	s := newTestStore(t, nil)

	c := testutil.MakeCompound(t, `{"a": 1, "b": {"c": "d"}}`)
	c.SetName("player")
	require.NoError(t, s.Put("players/steve", c))

	got, err := s.Get("players/steve")
	require.NoError(t, err)
	testutil.RequireCompoundEqual(t, c, got)
	name, ok := got.Name()
	require.True(t, ok)
	require.Equal(t, "player", name)

	ok, err = s.Exists("players/steve")
	require.NoError(t, err)
	require.True(t, ok)

	// overwrite
	require.NoError(t, s.Put("players/steve", types.NewCompound()))
	got, err = s.Get("players/steve")
	require.NoError(t, err)
	require.Zero(t, got.Len())
}

func TestStoreNotFound(t *testing.T) {
	s := newTestStore(t, nil)

	_, err := s.Get("missing")
	require.True(t, errors.Is(err, store.ErrKeyNotFound))

	ok, err := s.Exists("missing")
	require.NoError(t, err)
	require.False(t, ok)

	err = s.Delete("missing")
	require.True(t, errors.Is(err, store.ErrKeyNotFound))
}

func TestStoreEmptyKey(t *testing.T) {
	s := newTestStore(t, nil)

	require.True(t, errors.Is(s.Put("", types.NewCompound()), store.ErrEmptyKey))
	_, err := s.Get("")
	require.True(t, errors.Is(err, store.ErrEmptyKey))
	require.True(t, errors.Is(s.Delete(""), store.ErrEmptyKey))
}

func TestStoreDelete(t *testing.T) {
	s := newTestStore(t, nil)

	require.NoError(t, s.Put("a", types.NewCompound()))
	require.NoError(t, s.Delete("a"))

	ok, err := s.Exists("a")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStoreIterate(t *testing.T) {
	s := newTestStore(t, nil)

	for i, key := range []string{"chunk/1", "chunk/0", "player/a", "chunk/2", "chunk0"} {
		c := types.NewCompound().Add("i", types.NewIntValue(int32(i)))
		require.NoError(t, s.Put(key, c))
	}

	var keys []string
	var values []int32
	err := s.Iterate("chunk/", func(key string, c *types.Compound) error {
		keys = append(keys, key)
		i, ok := c.GetInt("i")
		require.True(t, ok)
		values = append(values, i)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"chunk/0", "chunk/1", "chunk/2"}, keys)
	require.Equal(t, []int32{1, 0, 3}, values)

	all, err := s.Keys("")
	require.NoError(t, err)
	require.Equal(t, []string{"chunk/0", "chunk/1", "chunk/2", "chunk0", "player/a"}, all)

	none, err := s.Keys("zzz")
	require.NoError(t, err)
	require.Empty(t, none)

	stop := errors.New("stop")
	var n int
	err = s.Iterate("", func(key string, c *types.Compound) error {
		n++
		return stop
	})
	require.True(t, errors.Is(err, stop))
	require.Equal(t, 1, n)
}

func TestStoreCompression(t *testing.T) {
	// documents written with any compression can be read back
	s := newTestStore(t, &store.Options{
		EncodeOptions: []codec.Option{codec.WithCompression(codec.LZ4)},
		NoSync:        true,
	})

	c := types.NewCompound().Add("x", types.NewLongArrayValue([]int64{1, 2, 3}))
	require.NoError(t, s.Put("k", c))

	got, err := s.Get("k")
	require.NoError(t, err)
	testutil.RequireCompoundEqual(t, c, got)
}

func TestStoreOnDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")

	s, err := store.Open(dir, nil)
	require.NoError(t, err)
	c := types.NewCompound().Add("persisted", types.NewByteValue(1))
	require.NoError(t, s.Put("k", c))
	require.NoError(t, s.Close())

	s, err = store.Open(dir, nil)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get("k")
	require.NoError(t, err)
	testutil.RequireCompoundEqual(t, c, got)
}

func TestStoreConcurrentPut(t *testing.T) {
	s := newTestStore(t, &store.Options{NoSync: true})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := types.NewCompound().Add("i", types.NewIntValue(int32(i)))
			_ = s.Put(string(rune('a'+i)), c)
		}(i)
	}
	wg.Wait()

	keys, err := s.Keys("")
	require.NoError(t, err)
	require.Len(t, keys, 8)
}

func TestStoreConcurrentDelete(t *testing.T) {
	s := newTestStore(t, &store.Options{NoSync: true})
	require.NoError(t, s.Put("k", types.NewCompound()))

	var (
		wg      sync.WaitGroup
		deleted atomic.Int32
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Delete("k")
			if err == nil {
				deleted.Add(1)
				return
			}
			if !errors.Is(err, store.ErrKeyNotFound) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, 1, deleted.Load())
}
