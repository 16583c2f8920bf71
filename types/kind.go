package types

import "strconv"

// Kind represents the kind of a tag. Its value is the id used on the wire.
type Kind uint8

// List of tag kinds.
// The ids are part of the wire format and must never change.
const (
	// KindEnd terminates the entries of a compound. It is never stored.
	KindEnd Kind = iota
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindByteArray
	KindString
	KindList
	KindCompound
	KindIntArray
	KindLongArray
)

// numKinds is the number of valid kinds.
const numKinds = int(KindLongArray) + 1

var kindNames = [numKinds]string{
	KindEnd:       "End",
	KindByte:      "Byte",
	KindShort:     "Short",
	KindInt:       "Int",
	KindLong:      "Long",
	KindFloat:     "Float",
	KindDouble:    "Double",
	KindByteArray: "ByteArray",
	KindString:    "String",
	KindList:      "List",
	KindCompound:  "Compound",
	KindIntArray:  "IntArray",
	KindLongArray: "LongArray",
}

// Kinds returns every valid kind, ordered by id.
func Kinds() []Kind {
	ks := make([]Kind, numKinds)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// ID returns the wire id of k.
func (k Kind) ID() byte {
	return byte(k)
}

// IsValid reports whether k is one of the 13 kinds.
func (k Kind) IsValid() bool {
	return int(k) < numKinds
}

func (k Kind) String() string {
	if !k.IsValid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// KindOf returns the kind identified by the given wire id.
func KindOf(id byte) (Kind, bool) {
	k := Kind(id)
	return k, k.IsValid()
}

// KindOfNative returns the kind used to store x. x can be a Value or one
// of int8, int16, int32, int64, float32, float64, []byte, string, *List,
// *Compound, []int32 or []int64. Any other type is rejected.
func KindOfNative(x any) (Kind, bool) {
	switch t := x.(type) {
	case nil:
		return 0, false
	case Value:
		if isNil(t) {
			return 0, false
		}
		return t.Kind(), true
	case int8:
		return KindByte, true
	case int16:
		return KindShort, true
	case int32:
		return KindInt, true
	case int64:
		return KindLong, true
	case float32:
		return KindFloat, true
	case float64:
		return KindDouble, true
	case []byte:
		return KindByteArray, true
	case string:
		return KindString, true
	case []int32:
		return KindIntArray, true
	case []int64:
		return KindLongArray, true
	}

	return 0, false
}
