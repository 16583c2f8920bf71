package types

import (
	"github.com/cockroachdb/errors"
	"github.com/devmattrick/enbeet/internal/encoding"
)

var (
	// ErrUnmappedValueKind is returned when a value can't be mapped to any
	// of the tag kinds, including nil values.
	ErrUnmappedValueKind = errors.New("value kind not mapped to a tag kind")

	// ErrKindMismatch is returned when adding a value to a list declared
	// with another kind.
	ErrKindMismatch = errors.New("kind mismatch")

	// ErrInvalidKind is returned when a list is declared with a kind that
	// doesn't exist.
	ErrInvalidKind = errors.New("invalid kind")

	// ErrEmptyPath is returned by Set when no path is given.
	ErrEmptyPath = errors.New("empty path")

	// ErrCycle is returned when storing a compound or a list inside
	// itself, directly or through one of its children.
	ErrCycle = errors.New("value would contain itself")

	// ErrMalformedVarInt is returned by GetVarIntArray when the bytes
	// don't hold a valid varint sequence.
	ErrMalformedVarInt = encoding.ErrMalformedVarInt
)
