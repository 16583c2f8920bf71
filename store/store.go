// Package store persists NBT compounds in a pebble database.
//
// Each compound is encoded as a complete document, zstd compressed by
// default, and stored under a string key. Keys are ordered bytewise.
package store

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/devmattrick/enbeet/codec"
	"github.com/devmattrick/enbeet/types"
)

// InMemory is the path used to open a store that lives in memory.
const InMemory = ":memory:"

var (
	// ErrKeyNotFound is returned when the targeted key doesn't exist.
	ErrKeyNotFound = errors.New("key not found")

	// ErrEmptyKey is returned when using an empty key.
	ErrEmptyKey = errors.New("empty key")
)

// Options configure a Store.
type Options struct {
	// EncodeOptions are used when writing documents.
	// Defaults to zstd compression.
	EncodeOptions []codec.Option

	// DecodeOptions are used when reading documents. The compression is
	// always detected, whatever was used to write them.
	DecodeOptions []codec.Option

	// NoSync disables syncing the write-ahead log on every write.
	NoSync bool

	// Pebble options. If nil, pebble defaults are used.
	// The FS is replaced when opening an in memory store.
	Pebble *pebble.Options
}

// A Store is a keyed collection of compounds backed by pebble.
// It is safe for concurrent use.
type Store struct {
	db         *pebble.DB
	deleteMu   sync.Mutex
	writeOpts  *pebble.WriteOptions
	encodeOpts []codec.Option
	decodeOpts []codec.Option
}

// Open opens or creates the store located at path. The special path
// ":memory:" opens a store that is lost when closed.
func Open(path string, opts *Options) (*Store, error) {
	if opts == nil {
		opts = &Options{}
	}

	var popts pebble.Options
	if opts.Pebble != nil {
		popts = *opts.Pebble
	}
	if path == InMemory {
		popts.FS = vfs.NewMem()
		path = ""
	}

	db, err := pebble.Open(path, &popts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening store")
	}

	s := Store{
		db:         db,
		writeOpts:  pebble.Sync,
		encodeOpts: opts.EncodeOptions,
		decodeOpts: opts.DecodeOptions,
	}
	if opts.NoSync {
		s.writeOpts = pebble.NoSync
	}
	if s.encodeOpts == nil {
		s.encodeOpts = []codec.Option{codec.WithCompression(codec.Zstd)}
	}

	return &s, nil
}

// Put stores c under key. If it already exists, it overrides it.
func (s *Store) Put(key string, c *types.Compound) error {
	if key == "" {
		return errors.WithStack(ErrEmptyKey)
	}

	data, err := codec.Marshal(c, s.encodeOpts...)
	if err != nil {
		return errors.Wrapf(err, "encoding %q", key)
	}

	return s.db.Set([]byte(key), data, s.writeOpts)
}

// Get returns the compound stored under key. If not found, returns ErrKeyNotFound.
func (s *Store) Get(key string) (*types.Compound, error) {
	if key == "" {
		return nil, errors.WithStack(ErrEmptyKey)
	}

	value, closer, err := s.db.Get([]byte(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, errors.Wrapf(ErrKeyNotFound, "%q", key)
		}

		return nil, err
	}

	// the decoder copies everything it keeps, value can be released after
	c, err := codec.Unmarshal(value, s.decodeOpts...)
	cerr := closer.Close()
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %q", key)
	}
	if cerr != nil {
		return nil, cerr
	}

	return c, nil
}

// Exists returns whether a compound is stored under key.
func (s *Store) Exists(key string) (bool, error) {
	if key == "" {
		return false, errors.WithStack(ErrEmptyKey)
	}

	_, closer, err := s.db.Get([]byte(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return false, nil
		}

		return false, err
	}

	err = closer.Close()
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the compound stored under key. If not found, returns ErrKeyNotFound.
// Concurrent deletes of the same key are serialized, only one of them
// succeeds.
func (s *Store) Delete(key string) error {
	s.deleteMu.Lock()
	defer s.deleteMu.Unlock()

	ok, err := s.Exists(key)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(ErrKeyNotFound, "%q", key)
	}

	return s.db.Delete([]byte(key), s.writeOpts)
}

// Iterate calls fn for every compound whose key starts with prefix, in
// key order. If fn returns an error, the iteration stops and the error is
// returned.
func (s *Store) Iterate(prefix string, fn func(key string, c *types.Compound) error) error {
	return s.iterate(prefix, func(it *pebble.Iterator) error {
		key := string(it.Key())

		c, err := codec.Unmarshal(it.Value(), s.decodeOpts...)
		if err != nil {
			return errors.Wrapf(err, "decoding %q", key)
		}

		return fn(key, c)
	})
}

// Keys returns the keys starting with prefix, in order, without decoding
// the compounds.
func (s *Store) Keys(prefix string) ([]string, error) {
	var keys []string

	err := s.iterate(prefix, func(it *pebble.Iterator) error {
		keys = append(keys, string(it.Key()))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return keys, nil
}

func (s *Store) iterate(prefix string, fn func(it *pebble.Iterator) error) error {
	var opts pebble.IterOptions
	if prefix != "" {
		opts.LowerBound = []byte(prefix)
		opts.UpperBound = prefixUpperBound([]byte(prefix))
	}

	it, err := s.db.NewIter(&opts)
	if err != nil {
		return err
	}

	for it.First(); it.Valid(); it.Next() {
		if err := fn(it); err != nil {
			_ = it.Close()
			return err
		}
	}

	if err := it.Error(); err != nil {
		_ = it.Close()
		return err
	}

	return it.Close()
}

// Close the store. It must not be used afterwards.
func (s *Store) Close() error {
	return s.db.Close()
}

// prefixUpperBound returns the smallest key greater than every key
// starting with prefix, or nil if there is none.
func prefixUpperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}

	return nil
}
