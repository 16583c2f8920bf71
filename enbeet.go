package enbeet

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/devmattrick/enbeet/codec"
	"github.com/devmattrick/enbeet/types"
)

// Read decodes one document from r.
func Read(r io.Reader, opts ...codec.Option) (*types.Compound, error) {
	return codec.NewDecoder(r, opts...).Decode()
}

// Write encodes c to w, gzipped unless configured otherwise.
func Write(w io.Writer, c *types.Compound, opts ...codec.Option) error {
	return codec.NewEncoder(w, opts...).Encode(c)
}

// ReadFile decodes the document stored in the named file.
func ReadFile(name string, opts ...codec.Option) (*types.Compound, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Read(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return c, nil
}

// WriteFile encodes c into the named file. The document is written to a
// temporary file first, then renamed, so that a failed write never leaves
// a truncated document behind.
func WriteFile(name string, c *types.Compound, opts ...codec.Option) (err error) {
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	// CreateTemp uses 0600
	if err = f.Chmod(0o644); err != nil {
		return err
	}
	if err = Write(f, c, opts...); err != nil {
		return errors.Wrapf(err, "writing %s", name)
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), name)
}
