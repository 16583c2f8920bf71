package codec

import (
	"io"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/devmattrick/enbeet/internal/encoding"
	"github.com/devmattrick/enbeet/types"
)

// An Encoder writes NBT documents to a stream.
// The buffer holding the encoded payload is reused between calls.
type Encoder struct {
	w    io.Writer
	opts options
	buf  []byte
}

// NewEncoder returns an encoder writing to w. Documents are gzipped
// unless configured otherwise.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{
		w:    w,
		opts: newOptions(opts),
	}
}

// Encode writes c as the root of a document. The name of c is written
// as the root name, or an empty string if c is unnamed.
// Nothing is written to the underlying writer if c can't be encoded.
func (e *Encoder) Encode(c *types.Compound) error {
	if c == nil {
		return errors.Wrap(ErrUnmappedValueKind, "nil root compound")
	}

	buf, err := appendRoot(e.buf[:0], c)
	if err != nil {
		return err
	}
	e.buf = buf

	w, err := newWriter(e.opts.compression, e.opts.level, e.w)
	if err != nil {
		return streamError("open "+e.opts.compression.String(), err)
	}

	_, err = w.Write(buf)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return streamError("write", err)
	}

	return nil
}

func appendRoot(dst []byte, c *types.Compound) ([]byte, error) {
	dst = encoding.AppendUint8(dst, types.KindCompound.ID())

	name, _ := c.Name()
	dst, err := encoding.AppendString(dst, name)
	if err != nil {
		return nil, errors.Wrap(err, "root name")
	}

	return appendCompound(dst, c)
}

func appendCompound(dst []byte, c *types.Compound) ([]byte, error) {
	err := c.Iterate(func(key string, v types.Value) error {
		k, ok := types.KindOfNative(v)
		if !ok {
			return errors.Wrapf(ErrUnmappedValueKind, "%q", key)
		}

		var err error
		dst = encoding.AppendUint8(dst, k.ID())
		dst, err = encoding.AppendString(dst, key)
		if err != nil {
			return errors.Wrapf(err, "key %.32q", key)
		}

		dst, err = appendPayload(dst, v)
		if err != nil {
			return errors.Wrapf(err, "%q", key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return encoding.AppendUint8(dst, types.KindEnd.ID()), nil
}

func appendPayload(dst []byte, v types.Value) ([]byte, error) {
	switch t := v.(type) {
	case types.ByteValue:
		return encoding.AppendInt8(dst, int8(t)), nil
	case types.ShortValue:
		return encoding.AppendInt16(dst, int16(t)), nil
	case types.IntValue:
		return encoding.AppendInt32(dst, int32(t)), nil
	case types.LongValue:
		return encoding.AppendInt64(dst, int64(t)), nil
	case types.FloatValue:
		return encoding.AppendFloat32(dst, float32(t)), nil
	case types.DoubleValue:
		return encoding.AppendFloat64(dst, float64(t)), nil
	case types.ByteArrayValue:
		dst, err := appendArrayLength(dst, len(t))
		if err != nil {
			return nil, err
		}
		return append(dst, t...), nil
	case types.StringValue:
		return encoding.AppendString(dst, string(t))
	case types.IntArrayValue:
		dst, err := appendArrayLength(dst, len(t))
		if err != nil {
			return nil, err
		}
		for _, x := range t {
			dst = encoding.AppendInt32(dst, x)
		}
		return dst, nil
	case types.LongArrayValue:
		dst, err := appendArrayLength(dst, len(t))
		if err != nil {
			return nil, err
		}
		for _, x := range t {
			dst = encoding.AppendInt64(dst, x)
		}
		return dst, nil
	case *types.List:
		if t == nil {
			break
		}
		return appendList(dst, t)
	case *types.Compound:
		if t == nil {
			break
		}
		return appendCompound(dst, t)
	}

	return nil, errors.Wrapf(ErrUnmappedValueKind, "%T", v)
}

// appendList writes the element kind and a 4-byte count, then the
// payloads without any per element tag.
func appendList(dst []byte, l *types.List) ([]byte, error) {
	dst = encoding.AppendUint8(dst, l.ElemKind().ID())
	dst, err := appendArrayLength(dst, l.Len())
	if err != nil {
		return nil, err
	}

	err = l.Iterate(func(i int, v types.Value) error {
		var err error
		dst, err = appendPayload(dst, v)
		return errors.Wrapf(err, "list index %d", i)
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}

func appendArrayLength(dst []byte, n int) ([]byte, error) {
	if n > math.MaxInt32 {
		return nil, errors.Wrapf(ErrMalformedArrayLength, "%d elements", n)
	}
	return encoding.AppendInt32(dst, int32(n)), nil
}
