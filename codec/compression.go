package codec

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the framing wrapped around an NBT payload.
type Compression uint8

const (
	// None is raw NBT.
	None Compression = iota
	// Gzip is the framing used by most NBT files.
	Gzip
	// Zlib is the framing of region file chunks.
	Zlib
	// Zstd is the zstandard frame format.
	Zstd
	// LZ4 is the LZ4 frame format, not raw LZ4 blocks.
	LZ4
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zlib:
		return "zlib"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	}

	return "unknown(" + strconv.Itoa(int(c)) + ")"
}

// ParseCompression parses the name of a compression, as returned by
// Compression.String.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "none", "raw":
		return None, nil
	case "gzip":
		return Gzip, nil
	case "zlib":
		return Zlib, nil
	case "zstd":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	}

	return 0, errors.Newf("unknown compression %q", name)
}

// DetectCompression looks at the first bytes of r without consuming
// them and returns the framing they announce. Streams that match no
// known magic are assumed to be raw.
func DetectCompression(r *bufio.Reader) (Compression, error) {
	magic, err := r.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		return None, streamError("peek", err)
	}

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		return Gzip, nil
	case bytes.HasPrefix(magic, zstdMagic):
		return Zstd, nil
	case bytes.HasPrefix(magic, lz4Magic):
		return LZ4, nil
	case isZlibHeader(magic):
		return Zlib, nil
	}

	return None, nil
}

// isZlibHeader reports whether b starts with a zlib header using deflate
// with a 32KiB window, the only one zlib encoders emit in practice, and a
// valid header checksum. Smaller windows are not detected: their CMF
// bytes are valid raw tag ids.
func isZlibHeader(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	cmf, flg := b[0], b[1]
	return cmf == 0x78 && (uint16(cmf)<<8|uint16(flg))%31 == 0
}

// newReader returns a reader decompressing r according to c.
// Closing it never closes r.
func newReader(c Compression, r io.Reader) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		return gzip.NewReader(r)
	case Zlib:
		return zlib.NewReader(r)
	case Zstd:
		d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	}

	return nil, errors.Newf("unsupported compression %s", c)
}

// newWriter returns a writer compressing into w according to c.
// It must be closed to flush the compressed stream, closing it never
// closes w.
func newWriter(c Compression, level int, w io.Writer) (io.WriteCloser, error) {
	switch c {
	case None:
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriterLevel(w, level)
	case Zlib:
		return zlib.NewWriterLevel(w, level)
	case Zstd:
		var opts []zstd.EOption
		if level > 0 {
			opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
		}
		return zstd.NewWriter(w, opts...)
	case LZ4:
		return lz4.NewWriter(w), nil
	}

	return nil, errors.Newf("unsupported compression %s", c)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
