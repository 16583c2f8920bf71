// Package codec reads and writes NBT documents.
//
// A document is a root compound, optionally named, wrapped in a
// compression framing. The Decoder detects gzip, zlib, zstd and LZ4
// framings from the first bytes of the stream and reads anything else
// as raw NBT. The Encoder writes gzip by default.
//
// Decoding and encoding either succeed completely or return an error,
// partial documents are never returned.
package codec

import (
	"bytes"

	"github.com/devmattrick/enbeet/types"
)

// Marshal encodes c and returns the bytes of the document.
func Marshal(c *types.Compound, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer

	err := NewEncoder(&buf, opts...).Encode(c)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes the document held by data.
func Unmarshal(data []byte, opts ...Option) (*types.Compound, error) {
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}
