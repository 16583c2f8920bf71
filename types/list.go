package types

import (
	"github.com/cockroachdb/errors"
)

// A List is an ordered sequence of values sharing the same kind.
// The kind is declared on creation and never changes.
type List struct {
	kind   Kind
	values []Value
}

// NewList creates a list of the given kind and adds values to it.
// A list of kind End is valid but can never hold any value, it is the
// usual way of writing an empty list.
func NewList(kind Kind, values ...Value) (*List, error) {
	if !kind.IsValid() {
		return nil, errors.Wrapf(ErrInvalidKind, "%d", uint8(kind))
	}

	l := List{kind: kind}
	if len(values) > 0 {
		l.values = make([]Value, 0, len(values))
	}
	for i, v := range values {
		if err := l.Add(v); err != nil {
			return nil, errors.Wrapf(err, "value %d", i)
		}
	}

	return &l, nil
}

func (l *List) Kind() Kind { return KindList }
func (l *List) V() any     { return l }
func (*List) value()       {}

// ElemKind returns the declared kind of the elements.
func (l *List) ElemKind() Kind {
	return l.kind
}

func (l *List) Len() int {
	return len(l.values)
}

// Add appends v to the list. It fails with ErrKindMismatch if v isn't of
// the declared kind, and with ErrCycle if v contains the list. The list
// is left untouched on failure.
func (l *List) Add(v Value) error {
	if isNil(v) {
		return errors.WithStack(ErrUnmappedValueKind)
	}
	if v.Kind() != l.kind {
		return errors.Wrapf(ErrKindMismatch, "cannot add %s to a list of %s", v.Kind(), l.kind)
	}
	if contains(v, l) {
		return errors.WithStack(ErrCycle)
	}

	l.values = append(l.values, v)
	return nil
}

// Get returns the value at index i. It panics if i is out of range.
func (l *List) Get(i int) Value {
	return l.values[i]
}

// Iterate goes through all the values of the list and calls the given
// function by passing each one of them.
// If the given function returns an error, the iteration stops.
func (l *List) Iterate(fn func(i int, v Value) error) error {
	for i, v := range l.values {
		if err := fn(i, v); err != nil {
			return err
		}
	}
	return nil
}

// Values returns a copy of the list elements.
func (l *List) Values() []Value {
	vs := make([]Value, len(l.values))
	copy(vs, l.values)
	return vs
}

// Clone returns a deep copy of the list.
func (l *List) Clone() *List {
	cl := List{kind: l.kind}
	if len(l.values) > 0 {
		cl.values = make([]Value, len(l.values))
		for i, v := range l.values {
			cl.values[i] = cloneValue(v)
		}
	}
	return &cl
}

// IndexAs returns the value at index i if the list elements are of
// type T. Like Get, it panics if i is out of range.
func IndexAs[T Value](l *List, i int) (T, bool) {
	return As[T](l.Get(i))
}

func (l *List) GetByte(i int) (int8, bool) {
	v, ok := IndexAs[ByteValue](l, i)
	return int8(v), ok
}

func (l *List) GetShort(i int) (int16, bool) {
	v, ok := IndexAs[ShortValue](l, i)
	return int16(v), ok
}

func (l *List) GetInt(i int) (int32, bool) {
	v, ok := IndexAs[IntValue](l, i)
	return int32(v), ok
}

func (l *List) GetLong(i int) (int64, bool) {
	v, ok := IndexAs[LongValue](l, i)
	return int64(v), ok
}

func (l *List) GetFloat(i int) (float32, bool) {
	v, ok := IndexAs[FloatValue](l, i)
	return float32(v), ok
}

func (l *List) GetDouble(i int) (float64, bool) {
	v, ok := IndexAs[DoubleValue](l, i)
	return float64(v), ok
}

func (l *List) GetByteArray(i int) ([]byte, bool) {
	v, ok := IndexAs[ByteArrayValue](l, i)
	return []byte(v), ok
}

func (l *List) GetString(i int) (string, bool) {
	v, ok := IndexAs[StringValue](l, i)
	return string(v), ok
}

func (l *List) GetList(i int) (*List, bool) {
	return IndexAs[*List](l, i)
}

func (l *List) GetCompound(i int) (*Compound, bool) {
	return IndexAs[*Compound](l, i)
}

func (l *List) GetIntArray(i int) ([]int32, bool) {
	v, ok := IndexAs[IntArrayValue](l, i)
	return []int32(v), ok
}

func (l *List) GetLongArray(i int) ([]int64, bool) {
	v, ok := IndexAs[LongArrayValue](l, i)
	return []int64(v), ok
}

// cloneValue returns a deep copy of v. Scalars are returned as is.
func cloneValue(v Value) Value {
	switch t := v.(type) {
	case ByteArrayValue:
		return append(ByteArrayValue(nil), t...)
	case IntArrayValue:
		return append(IntArrayValue(nil), t...)
	case LongArrayValue:
		return append(LongArrayValue(nil), t...)
	case *List:
		return t.Clone()
	case *Compound:
		return t.Clone()
	}
	return v
}
