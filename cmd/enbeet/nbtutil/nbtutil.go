// Package nbtutil holds the operations behind the enbeet commands, kept
// apart from the command line handling so they can be tested directly.
package nbtutil

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/devmattrick/enbeet/codec"
	"github.com/devmattrick/enbeet/types"
	"go.uber.org/multierr"
)

// Stdio is the path standing for the standard input or output.
const Stdio = "-"

// OpenInput opens the named file for reading, or returns the standard
// input if name is "-" or empty.
func OpenInput(name string) (io.ReadCloser, error) {
	if name == "" || name == Stdio {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// CreateOutput creates the named file, or returns the standard output
// if name is "-" or empty.
func CreateOutput(name string) (io.WriteCloser, error) {
	if name == "" || name == Stdio {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(name)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Decode reads one document from r and returns it along with the
// framing it was stored in.
func Decode(r io.Reader) (*types.Compound, codec.Compression, error) {
	br := bufio.NewReader(r)

	compression, err := codec.DetectCompression(br)
	if err != nil {
		return nil, 0, err
	}

	c, err := codec.NewDecoder(br, codec.WithCompression(compression)).Decode()
	if err != nil {
		return nil, 0, err
	}
	return c, compression, nil
}

// DecodeFile reads the document stored in the named file, "-" being the
// standard input.
func DecodeFile(name string) (c *types.Compound, compression codec.Compression, err error) {
	f, err := OpenInput(name)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	return Decode(f)
}

// EncodeFile writes c to the named file, "-" being the standard output.
func EncodeFile(name string, c *types.Compound, opts ...codec.Option) (err error) {
	f, err := CreateOutput(name)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	return codec.NewEncoder(f, opts...).Encode(c)
}

// DumpJSON writes the JSON form of c to w, followed by a newline.
// If indent is not empty, the output is indented with it.
func DumpJSON(w io.Writer, c *types.Compound, indent string) error {
	data, err := c.MarshalJSON()
	if err != nil {
		return err
	}

	if indent != "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", indent); err != nil {
			return errors.WithStack(err)
		}
		data = buf.Bytes()
	}

	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// ParseJSON reads a JSON object from r and converts it to a compound.
func ParseJSON(r io.Reader) (*types.Compound, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return types.ParseJSON(data)
}
