package types

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
)

// MarshalJSON encodes the compound as a JSON object, entries in order.
// The conversion is lossy: kinds are not preserved.
func (c *Compound) MarshalJSON() ([]byte, error) {
	return appendJSON(nil, c)
}

// MarshalJSON encodes the list as a JSON array.
func (l *List) MarshalJSON() ([]byte, error) {
	return appendJSON(nil, l)
}

func (c *Compound) String() string {
	b, err := c.MarshalJSON()
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(b)
}

func (l *List) String() string {
	b, err := l.MarshalJSON()
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(b)
}

func appendJSON(dst []byte, v Value) ([]byte, error) {
	var err error

	switch t := v.(type) {
	case ByteValue:
		return strconv.AppendInt(dst, int64(t), 10), nil
	case ShortValue:
		return strconv.AppendInt(dst, int64(t), 10), nil
	case IntValue:
		return strconv.AppendInt(dst, int64(t), 10), nil
	case LongValue:
		return strconv.AppendInt(dst, int64(t), 10), nil
	case FloatValue:
		return appendJSONFloat(dst, float64(t), 32), nil
	case DoubleValue:
		return appendJSONFloat(dst, float64(t), 64), nil
	case StringValue:
		return appendJSONString(dst, string(t))
	case ByteArrayValue:
		dst = append(dst, '[')
		for i, x := range t {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = strconv.AppendInt(dst, int64(int8(x)), 10)
		}
		return append(dst, ']'), nil
	case IntArrayValue:
		dst = append(dst, '[')
		for i, x := range t {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = strconv.AppendInt(dst, int64(x), 10)
		}
		return append(dst, ']'), nil
	case LongArrayValue:
		dst = append(dst, '[')
		for i, x := range t {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = strconv.AppendInt(dst, x, 10)
		}
		return append(dst, ']'), nil
	case *List:
		dst = append(dst, '[')
		for i, x := range t.values {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst, err = appendJSON(dst, x)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	case *Compound:
		dst = append(dst, '{')
		for i, f := range t.fields {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst, err = appendJSONString(dst, f.key)
			if err != nil {
				return nil, err
			}
			dst = append(dst, ':')
			dst, err = appendJSON(dst, f.value)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	}

	return nil, errors.Wrapf(ErrUnmappedValueKind, "%T", v)
}

// appendJSONFloat writes NaN and infinities as null since JSON has no
// representation for them.
func appendJSONFloat(dst []byte, f float64, bitSize int) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}

	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.AppendFloat(dst, f, format, -1, bitSize)
}

func appendJSONString(dst []byte, s string) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}

// ParseJSON builds a compound from a JSON object. Kinds are inferred:
// integers become Int, or Long if they don't fit in 32 bits, other
// numbers become Double, booleans become a Byte of 0 or 1, and arrays
// become lists of the kind of their first element. An empty array
// becomes an empty list of kind End. Null is rejected.
func ParseJSON(data []byte) (*Compound, error) {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid json")
	}
	if dataType != jsonparser.Object {
		return nil, errors.Newf("expected a json object, got %s", dataType)
	}

	return parseJSONObject(value)
}

func parseJSONObject(data []byte) (*Compound, error) {
	c := NewCompound()

	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		// keys are already unescaped by jsonparser
		v, err := parseJSONValue(dataType, value)
		if err != nil {
			return errors.Wrapf(err, "key %q at offset %d", key, offset)
		}

		c.put(string(key), v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

func parseJSONArray(data []byte) (*List, error) {
	l := List{kind: KindEnd}
	var innerErr error

	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if innerErr != nil {
			return
		}
		if err != nil {
			innerErr = err
			return
		}

		v, err := parseJSONValue(dataType, value)
		if err != nil {
			innerErr = errors.Wrapf(err, "index %d", len(l.values))
			return
		}
		if len(l.values) == 0 {
			l.kind = v.Kind()
		}
		innerErr = l.Add(v)
	})
	if innerErr != nil {
		return nil, innerErr
	}
	if err != nil {
		return nil, errors.Wrap(err, "invalid json array")
	}

	return &l, nil
}

func parseJSONValue(dataType jsonparser.ValueType, data []byte) (Value, error) {
	switch dataType {
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		if b {
			return ByteValue(1), nil
		}
		return ByteValue(0), nil
	case jsonparser.Number:
		i, err := jsonparser.ParseInt(data)
		if err != nil {
			// not an integer or too big for an int64, parse it as a double
			f, err := jsonparser.ParseFloat(data)
			if err != nil {
				return nil, err
			}
			return DoubleValue(f), nil
		}
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return IntValue(i), nil
		}
		return LongValue(i), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return StringValue(s), nil
	case jsonparser.Array:
		return parseJSONArray(data)
	case jsonparser.Object:
		return parseJSONObject(data)
	}

	return nil, errors.Wrapf(ErrUnmappedValueKind, "json %s", dataType)
}
