package types

import (
	"strings"
)

// A Path is a sequence of keys leading to a value nested in compounds.
type Path []string

// ParsePath splits s on dots. An empty string is the empty path.
func ParsePath(s string) Path {
	if s == "" {
		return nil
	}
	return Path(strings.Split(s, "."))
}

// String joins the keys of the path with dots.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// IsEqual returns whether other is equal to p.
func (p Path) IsEqual(other Path) bool {
	if len(other) != len(p) {
		return false
	}

	for i := range p {
		if other[i] != p[i] {
			return false
		}
	}

	return true
}

// Clone returns a copy of the path.
func (p Path) Clone() Path {
	return append(Path(nil), p...)
}

// GetValueFromCompound returns the value at path p in c.
func (p Path) GetValueFromCompound(c *Compound) (Value, bool) {
	return c.Get(p...)
}

// SetValueInCompound stores v at path p in c, creating intermediate
// compounds as needed.
func (p Path) SetValueInCompound(c *Compound, v Value) error {
	return c.Set(v, p...)
}
