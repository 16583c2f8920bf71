package types

import (
	"github.com/cockroachdb/errors"
	"github.com/devmattrick/enbeet/internal/encoding"
)

// A Compound is a set of uniquely named values. Entries are kept in
// insertion order, overwriting a key keeps its original position.
//
// A compound can carry a name. Only the name of the root compound of a
// document is written on the wire, nested compounds are always unnamed.
type Compound struct {
	name  string
	named bool

	fields []field
	index  map[string]int
}

type field struct {
	key   string
	value Value
}

// NewCompound returns an empty unnamed compound.
func NewCompound() *Compound {
	return &Compound{}
}

// NewNamedCompound returns an empty compound with the given name.
func NewNamedCompound(name string) *Compound {
	return &Compound{name: name, named: true}
}

func (c *Compound) Kind() Kind { return KindCompound }
func (c *Compound) V() any     { return c }
func (*Compound) value()       {}

// Name returns the name of the compound, if any.
func (c *Compound) Name() (string, bool) {
	return c.name, c.named
}

// SetName names the compound. An empty name still makes it named.
func (c *Compound) SetName(name string) {
	c.name = name
	c.named = true
}

// ClearName removes the name of the compound.
func (c *Compound) ClearName() {
	c.name = ""
	c.named = false
}

// Len returns the number of entries.
func (c *Compound) Len() int {
	return len(c.fields)
}

// Keys returns the keys in iteration order.
func (c *Compound) Keys() []string {
	keys := make([]string, len(c.fields))
	for i, f := range c.fields {
		keys[i] = f.key
	}
	return keys
}

// Iterate goes through all the entries of the compound and calls the given
// function by passing each one of them.
// If the given function returns an error, the iteration stops.
func (c *Compound) Iterate(fn func(key string, v Value) error) error {
	for _, f := range c.fields {
		if err := fn(f.key, f.value); err != nil {
			return err
		}
	}
	return nil
}

// Add sets key to v in this compound and returns it, to allow chaining
// when building documents. It panics if v is nil or if v contains c.
func (c *Compound) Add(key string, v Value) *Compound {
	if isNil(v) {
		panic("enbeet: Add called with a nil value for key " + key)
	}
	if contains(v, c) {
		panic("enbeet: Add called with a value containing the compound for key " + key)
	}
	c.put(key, v)
	return c
}

// Set stores v at the given path. Every segment but the last must lead
// to a compound: missing entries, and entries holding any other kind,
// are replaced by empty compounds. The last segment is overwritten
// regardless of what it held.
func (c *Compound) Set(v Value, path ...string) error {
	if len(path) == 0 {
		return errors.WithStack(ErrEmptyPath)
	}
	if isNil(v) {
		return errors.Wrapf(ErrUnmappedValueKind, "nil value at %s", Path(path))
	}
	if err := c.checkCycle(v, path); err != nil {
		return err
	}

	cur := c
	for _, key := range path[:len(path)-1] {
		next, ok := cur.getField(key).(*Compound)
		if !ok || next == nil {
			next = NewCompound()
			cur.put(key, next)
		}
		cur = next
	}

	cur.put(path[len(path)-1], v)
	return nil
}

// checkCycle fails if v contains c or any existing compound along path,
// the ones Set would make ancestors of v.
func (c *Compound) checkCycle(v Value, path []string) error {
	switch v.(type) {
	case *Compound, *List:
	default:
		return nil
	}

	cur := c
	for i := 0; ; i++ {
		if contains(v, cur) {
			return errors.Wrapf(ErrCycle, "at %s", Path(path))
		}
		if i == len(path)-1 {
			return nil
		}
		next, ok := cur.getField(path[i]).(*Compound)
		if !ok || next == nil {
			return nil
		}
		cur = next
	}
}

// Get returns the value stored at the given path. It returns false if
// any segment is missing or if an intermediate segment doesn't hold a
// compound. An empty path returns the compound itself.
func (c *Compound) Get(path ...string) (Value, bool) {
	if len(path) == 0 {
		return c, true
	}

	cur := c
	for _, key := range path[:len(path)-1] {
		next, ok := cur.getField(key).(*Compound)
		if !ok || next == nil {
			return nil, false
		}
		cur = next
	}

	v := cur.getField(path[len(path)-1])
	return v, v != nil
}

// Delete removes the value stored at the given path and reports whether
// there was one.
func (c *Compound) Delete(path ...string) bool {
	if len(path) == 0 {
		return false
	}

	parent, ok := GetAs[*Compound](c, path[:len(path)-1]...)
	if !ok {
		return false
	}

	key := path[len(path)-1]
	i, ok := parent.index[key]
	if !ok {
		return false
	}

	parent.fields = append(parent.fields[:i], parent.fields[i+1:]...)
	delete(parent.index, key)
	for j := i; j < len(parent.fields); j++ {
		parent.index[parent.fields[j].key] = j
	}
	return true
}

// Clone returns a deep copy of the compound, name included.
func (c *Compound) Clone() *Compound {
	cc := Compound{
		name:   c.name,
		named:  c.named,
		fields: make([]field, len(c.fields)),
	}
	if c.index != nil {
		cc.index = make(map[string]int, len(c.index))
	}

	for i, f := range c.fields {
		cc.fields[i] = field{key: f.key, value: cloneValue(f.value)}
		cc.index[f.key] = i
	}

	return &cc
}

func (c *Compound) getField(key string) Value {
	i, ok := c.index[key]
	if !ok {
		return nil
	}
	return c.fields[i].value
}

func (c *Compound) put(key string, v Value) {
	if i, ok := c.index[key]; ok {
		c.fields[i].value = v
		return
	}

	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[key] = len(c.fields)
	c.fields = append(c.fields, field{key: key, value: v})
}

// GetAs returns the value stored at path if it is of type T.
func GetAs[T Value](c *Compound, path ...string) (T, bool) {
	v, ok := c.Get(path...)
	if !ok {
		var zero T
		return zero, false
	}
	return As[T](v)
}

// GetByte returns the Byte stored at path, or false if there is none.
func (c *Compound) GetByte(path ...string) (int8, bool) {
	v, ok := GetAs[ByteValue](c, path...)
	return int8(v), ok
}

// GetShort returns the Short stored at path, or false if there is none.
func (c *Compound) GetShort(path ...string) (int16, bool) {
	v, ok := GetAs[ShortValue](c, path...)
	return int16(v), ok
}

// GetInt returns the Int stored at path, or false if there is none.
func (c *Compound) GetInt(path ...string) (int32, bool) {
	v, ok := GetAs[IntValue](c, path...)
	return int32(v), ok
}

// GetLong returns the Long stored at path, or false if there is none.
func (c *Compound) GetLong(path ...string) (int64, bool) {
	v, ok := GetAs[LongValue](c, path...)
	return int64(v), ok
}

// GetFloat returns the Float stored at path, or false if there is none.
func (c *Compound) GetFloat(path ...string) (float32, bool) {
	v, ok := GetAs[FloatValue](c, path...)
	return float32(v), ok
}

// GetDouble returns the Double stored at path, or false if there is none.
func (c *Compound) GetDouble(path ...string) (float64, bool) {
	v, ok := GetAs[DoubleValue](c, path...)
	return float64(v), ok
}

// GetByteArray returns the ByteArray stored at path, or false if there is none.
func (c *Compound) GetByteArray(path ...string) ([]byte, bool) {
	v, ok := GetAs[ByteArrayValue](c, path...)
	return []byte(v), ok
}

// GetString returns the String stored at path, or false if there is none.
func (c *Compound) GetString(path ...string) (string, bool) {
	v, ok := GetAs[StringValue](c, path...)
	return string(v), ok
}

// GetList returns the List stored at path, or false if there is none.
func (c *Compound) GetList(path ...string) (*List, bool) {
	return GetAs[*List](c, path...)
}

// GetCompound returns the Compound stored at path, or false if there is none.
func (c *Compound) GetCompound(path ...string) (*Compound, bool) {
	return GetAs[*Compound](c, path...)
}

// GetIntArray returns the IntArray stored at path, or false if there is none.
func (c *Compound) GetIntArray(path ...string) ([]int32, bool) {
	v, ok := GetAs[IntArrayValue](c, path...)
	return []int32(v), ok
}

// GetLongArray returns the LongArray stored at path, or false if there is none.
func (c *Compound) GetLongArray(path ...string) ([]int64, bool) {
	v, ok := GetAs[LongArrayValue](c, path...)
	return []int64(v), ok
}

// GetVarIntArray decodes the byte array stored at path as a sequence
// of varints. It returns false if there is no byte array at path, and
// an error wrapping ErrMalformedVarInt if the array is corrupted.
func (c *Compound) GetVarIntArray(path ...string) ([]int32, bool, error) {
	b, ok := c.GetByteArray(path...)
	if !ok {
		return nil, false, nil
	}

	xs, err := encoding.DecodeVarInts(b)
	if err != nil {
		return nil, true, errors.Wrapf(err, "varint array at %s", Path(path))
	}
	return xs, true, nil
}

// SetVarIntArray encodes values as varints and stores them at path as a
// byte array.
func (c *Compound) SetVarIntArray(values []int32, path ...string) error {
	return c.Set(ByteArrayValue(encoding.AppendVarInts(nil, values)), path...)
}
