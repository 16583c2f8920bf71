package encoding_test

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/devmattrick/enbeet/internal/encoding"
	"github.com/stretchr/testify/require"
)

func TestAppendDecodeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"empty", "", []byte{0, 0}},
		{"ascii", "hello", []byte{0, 5, 'h', 'e', 'l', 'l', 'o'}},
		{"nul", "a\x00b", []byte{0, 4, 'a', 0xC0, 0x80, 'b'}},
		{"two bytes", "é", []byte{0, 2, 0xC3, 0xA9}},
		{"three bytes", "€", []byte{0, 3, 0xE2, 0x82, 0xAC}},
		// U+1F600 is split in two surrogates, D83D and DE00
		{"supplementary", "😀", []byte{0, 6, 0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := encoding.AppendString(nil, test.input)
			require.NoError(t, err)
			require.Equal(t, test.want, got)
			require.Equal(t, len(test.want)-2, encoding.ModifiedUTF8Len(test.input))

			s, err := encoding.DecodeString(got[2:])
			require.NoError(t, err)
			require.Equal(t, test.input, s)
		})
	}
}

func TestAppendStringTooLong(t *testing.T) {
	_, err := encoding.AppendString(nil, strings.Repeat("a", encoding.MaxStringLen))
	require.NoError(t, err)

	_, err = encoding.AppendString(nil, strings.Repeat("a", encoding.MaxStringLen+1))
	require.True(t, errors.Is(err, encoding.ErrStringTooLong))

	// 3 bytes per rune once encoded
	_, err = encoding.AppendString(nil, strings.Repeat("€", encoding.MaxStringLen/3+1))
	require.True(t, errors.Is(err, encoding.ErrStringTooLong))
}

func TestDecodeStringMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"continuation byte first", []byte{0x80}},
		{"truncated 2 bytes", []byte{'a', 0xC3}},
		{"truncated 3 bytes", []byte{0xE2, 0x82}},
		{"bad continuation", []byte{0xC3, 0x41}},
		{"4 byte lead", []byte{0xF0, 0x9F, 0x98, 0x80}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := encoding.DecodeString(test.input)
			require.True(t, errors.Is(err, encoding.ErrMalformedString), "got %v", err)
		})
	}
}

func TestDecodeStringLoneSurrogate(t *testing.T) {
	s, err := encoding.DecodeString([]byte{'a', 0xED, 0xA0, 0xBD, 'b'})
	require.NoError(t, err)
	require.Equal(t, "a�b", s)
}
