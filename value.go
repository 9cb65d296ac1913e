// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind    Kind = iota // constant: null
	BoolKind                // constant: true or false
	IntegerKind             // number with no fraction or exponent
	FloatKind               // number with fraction and/or exponent
	StringKind              // string
	ArrayKind               // [ ... ]
	ObjectKind              // { ... }
)

var kindNames = [...]string{
	NullKind:    "null",
	BoolKind:    "bool",
	IntegerKind: "integer",
	FloatKind:   "float",
	StringKind:  "string",
	ArrayKind:   "array",
	ObjectKind:  "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "invalid kind"
	}
	return kindNames[k]
}

// A Value is a parsed JSON value. The concrete type of a Value is always one
// of Null, Bool, Integer, Float, String, Array, or Object.
type Value interface {
	Kind() Kind

	isValue()
}

// Null represents the null constant.
type Null struct{}

// A Bool is a Boolean constant, true or false.
type Bool bool

// An Integer is a number written without a fraction or exponent.
type Integer int64

// A Float is a number written with a fraction and/or exponent.
type Float float64

// A String is a string value with its escape sequences decoded.
type String string

// An Array is a sequence of values.
type Array []Value

// An Object is a collection of key-value members, in the order their keys
// first appeared in the input. Keys are unique.
type Object []Member

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

func (Null) Kind() Kind    { return NullKind }
func (Bool) Kind() Kind    { return BoolKind }
func (Integer) Kind() Kind { return IntegerKind }
func (Float) Kind() Kind   { return FloatKind }
func (String) Kind() Kind  { return StringKind }
func (Array) Kind() Kind   { return ArrayKind }
func (Object) Kind() Kind  { return ObjectKind }

func (Null) isValue()    {}
func (Bool) isValue()    {}
func (Integer) isValue() {}
func (Float) isValue()   {}
func (String) isValue()  {}
func (Array) isValue()   {}
func (Object) isValue()  {}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the value of the member of o with the given key, and reports
// whether such a member exists.
func (o Object) Find(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// Interface converts v into plain Go values: objects become map[string]any,
// arrays []any, strings string, integers int64, floats float64, Booleans
// bool, and null a nil interface.
func Interface(v Value) any {
	switch t := v.(type) {
	case Object:
		m := make(map[string]any, len(t))
		for _, mem := range t {
			m[mem.Key] = Interface(mem.Value)
		}
		return m
	case Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = Interface(elt)
		}
		return out
	case String:
		return string(t)
	case Integer:
		return int64(t)
	case Float:
		return float64(t)
	case Bool:
		return bool(t)
	default:
		return nil
	}
}
