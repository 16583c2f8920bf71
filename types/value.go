package types

import (
	"github.com/cockroachdb/errors"
)

// A Value is the payload of a tag. The set of implementations is closed:
// one type per kind, except End which never holds a value.
type Value interface {
	Kind() Kind
	// V returns the native representation of the value.
	V() any

	value()
}

var (
	_ Value = ByteValue(0)
	_ Value = ShortValue(0)
	_ Value = IntValue(0)
	_ Value = LongValue(0)
	_ Value = FloatValue(0)
	_ Value = DoubleValue(0)
	_ Value = ByteArrayValue(nil)
	_ Value = StringValue("")
	_ Value = (*List)(nil)
	_ Value = (*Compound)(nil)
	_ Value = IntArrayValue(nil)
	_ Value = LongArrayValue(nil)
)

// ByteValue is a signed 8-bit integer.
type ByteValue int8

// NewByteValue returns a Byte value.
func NewByteValue(x int8) ByteValue { return ByteValue(x) }

func (v ByteValue) Kind() Kind { return KindByte }
func (v ByteValue) V() any     { return int8(v) }
func (ByteValue) value()       {}

// ShortValue is a signed 16-bit integer.
type ShortValue int16

// NewShortValue returns a Short value.
func NewShortValue(x int16) ShortValue { return ShortValue(x) }

func (v ShortValue) Kind() Kind { return KindShort }
func (v ShortValue) V() any     { return int16(v) }
func (ShortValue) value()       {}

// IntValue is a signed 32-bit integer.
type IntValue int32

// NewIntValue returns an Int value.
func NewIntValue(x int32) IntValue { return IntValue(x) }

func (v IntValue) Kind() Kind { return KindInt }
func (v IntValue) V() any     { return int32(v) }
func (IntValue) value()       {}

// LongValue is a signed 64-bit integer.
type LongValue int64

// NewLongValue returns a Long value.
func NewLongValue(x int64) LongValue { return LongValue(x) }

func (v LongValue) Kind() Kind { return KindLong }
func (v LongValue) V() any     { return int64(v) }
func (LongValue) value()       {}

// FloatValue is an IEEE-754 single precision number.
type FloatValue float32

// NewFloatValue returns a Float value.
func NewFloatValue(x float32) FloatValue { return FloatValue(x) }

func (v FloatValue) Kind() Kind { return KindFloat }
func (v FloatValue) V() any     { return float32(v) }
func (FloatValue) value()       {}

// DoubleValue is an IEEE-754 double precision number.
type DoubleValue float64

// NewDoubleValue returns a Double value.
func NewDoubleValue(x float64) DoubleValue { return DoubleValue(x) }

func (v DoubleValue) Kind() Kind { return KindDouble }
func (v DoubleValue) V() any     { return float64(v) }
func (DoubleValue) value()       {}

// ByteArrayValue is an array of signed bytes. It is held as a []byte,
// callers wanting signed values convert each element to int8.
type ByteArrayValue []byte

// NewByteArrayValue returns a ByteArray value. x is not copied.
func NewByteArrayValue(x []byte) ByteArrayValue { return ByteArrayValue(x) }

func (v ByteArrayValue) Kind() Kind { return KindByteArray }
func (v ByteArrayValue) V() any     { return []byte(v) }
func (ByteArrayValue) value()       {}

// StringValue is a string. It is encoded as modified UTF-8 on the wire.
type StringValue string

// NewStringValue returns a String value.
func NewStringValue(x string) StringValue { return StringValue(x) }

func (v StringValue) Kind() Kind { return KindString }
func (v StringValue) V() any     { return string(v) }
func (StringValue) value()       {}

// IntArrayValue is an array of signed 32-bit integers.
type IntArrayValue []int32

// NewIntArrayValue returns an IntArray value. x is not copied.
func NewIntArrayValue(x []int32) IntArrayValue { return IntArrayValue(x) }

func (v IntArrayValue) Kind() Kind { return KindIntArray }
func (v IntArrayValue) V() any     { return []int32(v) }
func (IntArrayValue) value()       {}

// LongArrayValue is an array of signed 64-bit integers.
type LongArrayValue []int64

// NewLongArrayValue returns a LongArray value. x is not copied.
func NewLongArrayValue(x []int64) LongArrayValue { return LongArrayValue(x) }

func (v LongArrayValue) Kind() Kind { return KindLongArray }
func (v LongArrayValue) V() any     { return []int64(v) }
func (LongArrayValue) value()       {}

// NewListValue returns l as a Value. It exists for symmetry with the
// other constructors.
func NewListValue(l *List) Value { return l }

// NewCompoundValue returns c as a Value.
func NewCompoundValue(c *Compound) Value { return c }

// NewValue turns a native Go value into a Value. It accepts the types
// listed in KindOfNative and returns ErrUnmappedValueKind for anything
// else.
func NewValue(x any) (Value, error) {
	switch t := x.(type) {
	case Value:
		if isNil(t) {
			break
		}
		return t, nil
	case int8:
		return ByteValue(t), nil
	case int16:
		return ShortValue(t), nil
	case int32:
		return IntValue(t), nil
	case int64:
		return LongValue(t), nil
	case float32:
		return FloatValue(t), nil
	case float64:
		return DoubleValue(t), nil
	case []byte:
		return ByteArrayValue(t), nil
	case string:
		return StringValue(t), nil
	case []int32:
		return IntArrayValue(t), nil
	case []int64:
		return LongArrayValue(t), nil
	}

	return nil, errors.Wrapf(ErrUnmappedValueKind, "%T", x)
}

// As returns v as the concrete value type T. It returns false if v is
// of another kind.
func As[T Value](v Value) (T, bool) {
	t, ok := v.(T)
	return t, ok
}

// isNil reports whether v is nil or a nil pointer to a List or Compound.
func isNil(v Value) bool {
	switch t := v.(type) {
	case nil:
		return true
	case *List:
		return t == nil
	case *Compound:
		return t == nil
	}
	return false
}

// contains reports whether target is v or is nested somewhere in v.
func contains(v, target Value) bool {
	switch t := v.(type) {
	case *Compound:
		if Value(t) == target {
			return true
		}
		for _, f := range t.fields {
			if contains(f.value, target) {
				return true
			}
		}
	case *List:
		if Value(t) == target {
			return true
		}
		for _, x := range t.values {
			if contains(x, target) {
				return true
			}
		}
	}
	return false
}
