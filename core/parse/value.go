package parse

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Value is a decoded JSON value. The set of implementations is closed:
// Null, Bool, Number, String, List and *Object.
type Value interface {
	kind() Kind
}

// Kind names the JSON kind of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "array"
	case KindObject:
		return "object"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// KindOf returns the kind of v. A nil Value reports KindNull.
func KindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.kind()
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number kept in its textual form so no precision is lost
// before a normalizer decides how to read it.
type Number json.Number

// String is a JSON string.
type String string

// List is a JSON array.
type List []Value

// Object is a JSON object that remembers the order its keys appeared in.
// Duplicate keys keep their first position and their last value, matching
// encoding/json semantics for the value.
type Object struct {
	keys   []string
	fields map[string]Value
}

func (Null) kind() Kind    { return KindNull }
func (Bool) kind() Kind    { return KindBool }
func (Number) kind() Kind  { return KindNumber }
func (String) kind() Kind  { return KindString }
func (List) kind() Kind    { return KindList }
func (*Object) kind() Kind { return KindObject }

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{fields: map[string]Value{}}
}

// Set stores value under key, appending key to the order on first use.
func (o *Object) Set(key string, value Value) {
	if o.fields == nil {
		o.fields = map[string]Value{}
	}
	if _, exists := o.fields[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = value
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.fields[key]
	return v, ok
}

// Keys returns the keys in first-seen order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of distinct keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Float64 parses the number.
func (n Number) Float64() (float64, error) {
	return json.Number(n).Float64()
}

// MarshalJSON implements json.Marshaler.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("0"), nil
	}
	return []byte(n), nil
}

// MarshalJSON implements json.Marshaler, preserving key order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := marshalValue(o.fields[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler. A nil List encodes as [].
func (l List) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		v, err := marshalValue(item)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func marshalValue(v Value) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}
