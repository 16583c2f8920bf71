package codec

import (
	"github.com/cockroachdb/errors"
	"github.com/devmattrick/enbeet/types"
)

var (
	// ErrInvalidTagID is returned when a tag id is not one of the 13
	// known kinds.
	ErrInvalidTagID = errors.New("invalid tag id")

	// ErrUnexpectedRootKind is returned when a document doesn't start
	// with a Compound or an End tag.
	ErrUnexpectedRootKind = errors.New("unexpected root kind")

	// ErrMalformedArrayLength is returned when an array, or a list in
	// strict mode, has a negative length.
	ErrMalformedArrayLength = errors.New("malformed array length")

	// ErrUnexpectedEnd is returned when an End tag is found where a
	// payload is expected, for example in a non empty list of End.
	ErrUnexpectedEnd = errors.New("unexpected End tag")

	// ErrMaxDepth is returned when a document nests deeper than the limit
	// set with WithMaxDepth.
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")

	// ErrUnmappedValueKind is returned when encoding a value that can't be
	// mapped to a tag kind.
	ErrUnmappedValueKind = types.ErrUnmappedValueKind
)

// A StreamError is returned when the underlying reader or writer fails,
// including when the stream ends early or can't be decompressed.
type StreamError struct {
	Op  string
	Err error
}

func (e *StreamError) Error() string {
	return "stream " + e.Op + ": " + e.Err.Error()
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

func streamError(op string, err error) error {
	return errors.WithStack(&StreamError{Op: op, Err: err})
}
