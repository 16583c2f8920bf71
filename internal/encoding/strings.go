package encoding

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// MaxStringLen is the largest encoded string length that fits in
// the 2-byte length prefix.
const MaxStringLen = 1<<16 - 1

var (
	// ErrStringTooLong is returned when the modified UTF-8 form of a
	// string doesn't fit in the 2-byte length prefix.
	ErrStringTooLong = errors.New("string too long")

	// ErrMalformedString is returned when a string payload is not valid
	// modified UTF-8.
	ErrMalformedString = errors.New("malformed modified UTF-8 string")
)

// ModifiedUTF8Len returns the number of bytes s takes once encoded,
// without the length prefix.
func ModifiedUTF8Len(s string) int {
	var n int
	for _, r := range s {
		n += runeLen(r)
	}
	return n
}

func runeLen(r rune) int {
	switch {
	case r == 0:
		return 2
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r <= 0xFFFF:
		return 3
	default:
		// written as a surrogate pair, 3 bytes each
		return 6
	}
}

// AppendString appends the length-prefixed modified UTF-8 form of s,
// the encoding used by Java's DataOutput.writeUTF:
// U+0000 is written on two bytes and supplementary characters are
// split into surrogates encoded separately.
func AppendString(dst []byte, s string) ([]byte, error) {
	l := ModifiedUTF8Len(s)
	if l > MaxStringLen {
		return dst, errors.Wrapf(ErrStringTooLong, "%d bytes", l)
	}

	dst = AppendUint16(dst, uint16(l))
	for _, r := range s {
		if r > 0xFFFF {
			r1, r2 := utf16.EncodeRune(r)
			dst = appendRune3(dst, r1)
			dst = appendRune3(dst, r2)
			continue
		}

		switch runeLen(r) {
		case 1:
			dst = append(dst, byte(r))
		case 2:
			dst = append(dst, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
		default:
			dst = appendRune3(dst, r)
		}
	}

	return dst, nil
}

func appendRune3(dst []byte, r rune) []byte {
	return append(dst, 0xE0|byte(r>>12), 0x80|byte((r>>6)&0x3F), 0x80|byte(r&0x3F))
}

// DecodeString decodes b, the payload of a string without its length
// prefix, from modified UTF-8.
func DecodeString(b []byte) (string, error) {
	// fast path, most keys are plain ASCII
	ascii := true
	for _, c := range b {
		if c >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return string(b), nil
	}

	buf := make([]byte, 0, len(b))
	var pending rune = -1

	for i := 0; i < len(b); {
		var r rune
		c := b[i]
		switch {
		case c < 0x80:
			r = rune(c)
			i++
		case c&0xE0 == 0xC0:
			if i+1 >= len(b) || b[i+1]&0xC0 != 0x80 {
				return "", errors.Wrapf(ErrMalformedString, "bad 2-byte sequence at offset %d", i)
			}
			r = rune(c&0x1F)<<6 | rune(b[i+1]&0x3F)
			i += 2
		case c&0xF0 == 0xE0:
			if i+2 >= len(b) || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
				return "", errors.Wrapf(ErrMalformedString, "bad 3-byte sequence at offset %d", i)
			}
			r = rune(c&0x0F)<<12 | rune(b[i+1]&0x3F)<<6 | rune(b[i+2]&0x3F)
			i += 3
		default:
			return "", errors.Wrapf(ErrMalformedString, "invalid byte 0x%02x at offset %d", c, i)
		}

		if pending >= 0 {
			if utf16.IsSurrogate(r) && r >= 0xDC00 {
				buf = utf8.AppendRune(buf, utf16.DecodeRune(pending, r))
				pending = -1
				continue
			}
			// lone high surrogate
			buf = utf8.AppendRune(buf, utf8.RuneError)
			pending = -1
		}

		if utf16.IsSurrogate(r) && r < 0xDC00 {
			pending = r
			continue
		}
		buf = utf8.AppendRune(buf, r)
	}

	if pending >= 0 {
		buf = utf8.AppendRune(buf, utf8.RuneError)
	}

	return string(buf), nil
}
