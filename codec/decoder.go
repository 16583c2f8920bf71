package codec

import (
	"bufio"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/devmattrick/enbeet/internal/encoding"
	"github.com/devmattrick/enbeet/types"
)

// large payloads are read in chunks of this size so that a corrupted
// length can't trigger a huge allocation before the data is there.
const readChunkSize = 64 << 10

// A Decoder reads an NBT document from a stream.
type Decoder struct {
	r    io.Reader
	opts options
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{
		r:    r,
		opts: newOptions(opts),
	}
}

// Decode reads one document. The framing is detected from the first
// bytes of the stream unless forced with WithCompression.
// A document made of a single End tag decodes to an empty unnamed
// compound.
func (d *Decoder) Decode() (*types.Compound, error) {
	br, ok := d.r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(d.r)
	}

	c := d.opts.compression
	if !d.opts.compressionSet {
		var err error
		c, err = DetectCompression(br)
		if err != nil {
			return nil, err
		}
	}

	var r *bufio.Reader
	if c == None {
		r = br
	} else {
		rc, err := newReader(c, br)
		if err != nil {
			return nil, streamError("open "+c.String(), err)
		}
		defer rc.Close()
		r = bufio.NewReader(rc)
	}

	ds := decodeState{
		r:    r,
		opts: &d.opts,
	}
	root, err := ds.decodeRoot()
	if err != nil {
		return nil, err
	}

	// checksums and trailers are only verified once the compressed
	// stream reaches EOF
	if c != None {
		if _, err := io.Copy(io.Discard, r); err != nil {
			return nil, streamError("read", err)
		}
	}

	return root, nil
}

type decodeState struct {
	r     *bufio.Reader
	opts  *options
	depth int
	buf   [8]byte
}

func (d *decodeState) decodeRoot() (*types.Compound, error) {
	k, err := d.readKind()
	if err != nil {
		return nil, err
	}

	switch k {
	case types.KindEnd:
		return types.NewCompound(), nil
	case types.KindCompound:
	default:
		return nil, errors.Wrapf(ErrUnexpectedRootKind, "got %s", k)
	}

	name, err := d.readString()
	if err != nil {
		return nil, errors.Wrap(err, "root name")
	}

	c := types.NewCompound()
	if name != "" {
		c.SetName(name)
	}

	if err := d.decodeCompound(c); err != nil {
		return nil, err
	}
	return c, nil
}

// decodeCompound reads entries into c until an End tag.
func (d *decodeState) decodeCompound(c *types.Compound) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()

	for {
		k, err := d.readKind()
		if err != nil {
			return err
		}
		if k == types.KindEnd {
			return nil
		}

		key, err := d.readString()
		if err != nil {
			return errors.Wrapf(err, "key of %s tag", k)
		}

		v, err := d.decodePayload(k)
		if err != nil {
			return errors.Wrapf(err, "%q", key)
		}

		// duplicate keys overwrite in place, the last one wins
		c.Add(key, v)
	}
}

func (d *decodeState) decodePayload(k types.Kind) (types.Value, error) {
	switch k {
	case types.KindByte:
		b, err := d.read(1)
		if err != nil {
			return nil, err
		}
		return types.ByteValue(encoding.DecodeInt8(b)), nil
	case types.KindShort:
		b, err := d.read(2)
		if err != nil {
			return nil, err
		}
		return types.ShortValue(encoding.DecodeInt16(b)), nil
	case types.KindInt:
		b, err := d.read(4)
		if err != nil {
			return nil, err
		}
		return types.IntValue(encoding.DecodeInt32(b)), nil
	case types.KindLong:
		b, err := d.read(8)
		if err != nil {
			return nil, err
		}
		return types.LongValue(encoding.DecodeInt64(b)), nil
	case types.KindFloat:
		b, err := d.read(4)
		if err != nil {
			return nil, err
		}
		return types.FloatValue(encoding.DecodeFloat32(b)), nil
	case types.KindDouble:
		b, err := d.read(8)
		if err != nil {
			return nil, err
		}
		return types.DoubleValue(encoding.DecodeFloat64(b)), nil
	case types.KindByteArray:
		n, err := d.readArrayLength()
		if err != nil {
			return nil, err
		}
		b, err := d.readBytes(n)
		if err != nil {
			return nil, err
		}
		return types.ByteArrayValue(b), nil
	case types.KindString:
		s, err := d.readString()
		if err != nil {
			return nil, err
		}
		return types.StringValue(s), nil
	case types.KindList:
		return d.decodeList()
	case types.KindCompound:
		c := types.NewCompound()
		if err := d.decodeCompound(c); err != nil {
			return nil, err
		}
		return c, nil
	case types.KindIntArray:
		n, err := d.readArrayLength()
		if err != nil {
			return nil, err
		}
		b, err := d.readBytes(n * 4)
		if err != nil {
			return nil, err
		}
		xs := make([]int32, n)
		for i := range xs {
			xs[i] = encoding.DecodeInt32(b[i*4:])
		}
		return types.IntArrayValue(xs), nil
	case types.KindLongArray:
		n, err := d.readArrayLength()
		if err != nil {
			return nil, err
		}
		b, err := d.readBytes(n * 8)
		if err != nil {
			return nil, err
		}
		xs := make([]int64, n)
		for i := range xs {
			xs[i] = encoding.DecodeInt64(b[i*8:])
		}
		return types.LongArrayValue(xs), nil
	}

	// End has no payload
	return nil, errors.WithStack(ErrUnexpectedEnd)
}

func (d *decodeState) decodeList() (*types.List, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()

	elem, err := d.readKind()
	if err != nil {
		return nil, err
	}

	b, err := d.read(4)
	if err != nil {
		return nil, err
	}
	n := int(encoding.DecodeInt32(b))
	if n < 0 {
		if d.opts.strictLengths {
			return nil, errors.Wrapf(ErrMalformedArrayLength, "list of length %d", n)
		}
		// read as an empty list, some producers write -1
		n = 0
	}
	if elem == types.KindEnd && n > 0 {
		return nil, errors.Wrapf(ErrUnexpectedEnd, "list of %d End tags", n)
	}

	l, err := types.NewList(elem)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		v, err := d.decodePayload(elem)
		if err != nil {
			return nil, errors.Wrapf(err, "list index %d", i)
		}
		if err := l.Add(v); err != nil {
			return nil, err
		}
	}

	return l, nil
}

func (d *decodeState) enter() error {
	d.depth++
	if d.opts.maxDepth > 0 && d.depth > d.opts.maxDepth {
		return errors.Wrapf(ErrMaxDepth, "limit is %d", d.opts.maxDepth)
	}
	return nil
}

func (d *decodeState) leave() {
	d.depth--
}

func (d *decodeState) readKind() (types.Kind, error) {
	id, err := d.r.ReadByte()
	if err != nil {
		return 0, streamError("read", unexpectedEOF(err))
	}

	k, ok := types.KindOf(id)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidTagID, "0x%02x", id)
	}
	return k, nil
}

func (d *decodeState) readString() (string, error) {
	b, err := d.read(2)
	if err != nil {
		return "", err
	}

	b, err = d.readBytes(int(encoding.DecodeUint16(b)))
	if err != nil {
		return "", err
	}
	return encoding.DecodeString(b)
}

// readArrayLength reads the 4-byte length of an array, which must not
// be negative.
func (d *decodeState) readArrayLength() (int, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}

	n := encoding.DecodeInt32(b)
	if n < 0 {
		return 0, errors.Wrapf(ErrMalformedArrayLength, "%d", n)
	}
	return int(n), nil
}

// read returns the next n bytes, n being at most 8. The returned slice
// is only valid until the next call.
func (d *decodeState) read(n int) ([]byte, error) {
	b := d.buf[:n]
	if _, err := io.ReadFull(d.r, b); err != nil {
		return nil, streamError("read", unexpectedEOF(err))
	}
	return b, nil
}

// readBytes returns the next n bytes in a newly allocated slice.
func (d *decodeState) readBytes(n int) ([]byte, error) {
	if n <= readChunkSize {
		b := make([]byte, n)
		if _, err := io.ReadFull(d.r, b); err != nil {
			return nil, streamError("read", unexpectedEOF(err))
		}
		return b, nil
	}

	b := make([]byte, 0, readChunkSize)
	for len(b) < n {
		chunk := min(n-len(b), readChunkSize)
		b = append(b, make([]byte, chunk)...)
		if _, err := io.ReadFull(d.r, b[len(b)-chunk:]); err != nil {
			return nil, streamError("read", unexpectedEOF(err))
		}
	}
	return b, nil
}

// the document isn't over when the stream ends
func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
