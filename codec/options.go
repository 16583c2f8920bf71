package codec

import (
	"github.com/klauspost/compress/gzip"
)

// An Option configures an Encoder or a Decoder.
type Option func(*options)

type options struct {
	compression    Compression
	compressionSet bool
	level          int
	strictLengths  bool
	maxDepth       int
}

func newOptions(opts []Option) options {
	o := options{
		compression: Gzip,
		level:       gzip.DefaultCompression,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCompression selects the framing of the stream.
// Encoders default to Gzip. Decoders detect the framing by default,
// this option forces it instead.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
		o.compressionSet = true
	}
}

// WithoutCompression writes or reads raw NBT.
func WithoutCompression() Option {
	return WithCompression(None)
}

// WithCompressionLevel sets the level used by the gzip, zlib and zstd
// encoders. For gzip and zlib it follows the compress/flate levels, for
// zstd the levels of the reference zstd implementation.
func WithCompressionLevel(level int) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithStrictLengths makes the decoder reject lists with a negative
// length, instead of reading them as empty lists.
func WithStrictLengths() Option {
	return func(o *options) {
		o.strictLengths = true
	}
}

// WithMaxDepth limits the nesting of compounds and lists accepted by the
// decoder. The root compound is at depth 1. Zero means no limit.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}
