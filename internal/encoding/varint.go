package encoding

import "github.com/cockroachdb/errors"

// MaxVarIntLen is the maximum number of bytes of a 32-bit varint.
const MaxVarIntLen = 5

// ErrMalformedVarInt is returned when a varint runs past MaxVarIntLen
// bytes or past the end of its buffer.
var ErrMalformedVarInt = errors.New("malformed varint")

// DecodeVarInts decodes b as a sequence of little-endian base-128
// varints. The low 7 bits of each byte are payload, the high bit marks
// a continuation. Bits past the 32nd are dropped.
func DecodeVarInts(b []byte) ([]int32, error) {
	res := []int32{}

	for i := 0; i < len(b); {
		x, n, err := DecodeVarInt(b[i:])
		if err != nil {
			return nil, errors.Wrapf(err, "at offset %d", i)
		}
		res = append(res, x)
		i += n
	}

	return res, nil
}

// DecodeVarInt decodes the first varint of b and returns it along with
// the number of bytes read.
func DecodeVarInt(b []byte) (int32, int, error) {
	var x uint32

	for n := 0; ; n++ {
		if n == MaxVarIntLen {
			return 0, 0, errors.WithStack(ErrMalformedVarInt)
		}
		if n == len(b) {
			return 0, 0, errors.Wrap(ErrMalformedVarInt, "truncated")
		}

		c := b[n]
		x |= uint32(c&0x7F) << (7 * n)
		if c&0x80 == 0 {
			return int32(x), n + 1, nil
		}
	}
}

// AppendVarInt appends the varint form of the 32-bit pattern of x.
// Negative numbers always take MaxVarIntLen bytes.
func AppendVarInt(dst []byte, x int32) []byte {
	u := uint32(x)
	for u >= 0x80 {
		dst = append(dst, byte(u)|0x80)
		u >>= 7
	}
	return append(dst, byte(u))
}

// AppendVarInts appends every value of xs with AppendVarInt.
func AppendVarInts(dst []byte, xs []int32) []byte {
	for _, x := range xs {
		dst = AppendVarInt(dst, x)
	}
	return dst
}
