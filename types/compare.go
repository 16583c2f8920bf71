package types

import (
	"bytes"
	"math"
	"slices"
)

// Equal reports whether a and b hold the same tree.
// Floating point values are compared bit for bit, so a NaN equals
// itself. Compounds are equal if they hold the same keys with equal
// values, regardless of order and name. Lists must have the same
// declared kind and equal elements in the same order.
func Equal(a, b Value) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch x := a.(type) {
	case FloatValue:
		return math.Float32bits(float32(x)) == math.Float32bits(float32(b.(FloatValue)))
	case DoubleValue:
		return math.Float64bits(float64(x)) == math.Float64bits(float64(b.(DoubleValue)))
	case ByteArrayValue:
		return bytes.Equal(x, b.(ByteArrayValue))
	case IntArrayValue:
		return slices.Equal(x, b.(IntArrayValue))
	case LongArrayValue:
		return slices.Equal(x, b.(LongArrayValue))
	case *List:
		return equalLists(x, b.(*List))
	case *Compound:
		return equalCompounds(x, b.(*Compound))
	}

	return a == b
}

func equalLists(a, b *List) bool {
	if a.kind != b.kind || len(a.values) != len(b.values) {
		return false
	}

	for i := range a.values {
		if !Equal(a.values[i], b.values[i]) {
			return false
		}
	}
	return true
}

func equalCompounds(a, b *Compound) bool {
	if len(a.fields) != len(b.fields) {
		return false
	}

	for _, f := range a.fields {
		v := b.getField(f.key)
		if v == nil || !Equal(f.value, v) {
			return false
		}
	}
	return true
}
