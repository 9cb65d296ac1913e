// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package bind populates Go records from parsed JSON objects.
//
// Each record type is described by a Mapper, which lists the object keys it
// understands and how to store each one. No reflection is involved:
//
//	type Person struct {
//	   Name string
//	   Age  int64
//	}
//
//	var personMap = bind.New[Person]().
//	   Field("name", bind.String(func(p *Person) *string { return &p.Name })).
//	   Field("age", bind.Int(func(p *Person) *int64 { return &p.Age }))
//
//	p, err := personMap.Decode(v)
//
// Object members whose keys have no field are ignored, and fields whose keys
// do not appear in the object keep their zero value. A null member value also
// leaves its field unchanged.
package bind

import (
	"fmt"

	"github.com/creachadair/jvalue"
)

// A Setter stores a JSON value into the corresponding field of dst.
type Setter[T any] func(dst *T, v jvalue.Value) error

// A Mapper copies the members of JSON objects into values of type T.
type Mapper[T any] struct {
	fields map[string]Setter[T]
}

// New constructs a new Mapper for T with no fields.
func New[T any]() *Mapper[T] { return &Mapper[T]{fields: make(map[string]Setter[T])} }

// Field registers set to store the value of the object member with the given
// key. It returns m to permit chaining.
func (m *Mapper[T]) Field(key string, set Setter[T]) *Mapper[T] {
	m.fields[key] = set
	return m
}

// Decode populates a new T from v, which must be an object.
func (m *Mapper[T]) Decode(v jvalue.Value) (T, error) {
	var out T
	return out, m.DecodeInto(&out, v)
}

// DecodeInto populates *dst from v, which must be an object.
func (m *Mapper[T]) DecodeInto(dst *T, v jvalue.Value) error {
	obj, ok := v.(jvalue.Object)
	if !ok {
		return fmt.Errorf("got %v, want object", kindOf(v))
	}
	for _, mem := range obj {
		set, ok := m.fields[mem.Key]
		if !ok {
			continue
		}
		if err := set(dst, mem.Value); err != nil {
			return fmt.Errorf("field %q: %w", mem.Key, err)
		}
	}
	return nil
}

// DecodeArray populates a slice of T from v, which must be an array of
// objects.
func (m *Mapper[T]) DecodeArray(v jvalue.Value) ([]T, error) {
	arr, ok := v.(jvalue.Array)
	if !ok {
		return nil, fmt.Errorf("got %v, want array", kindOf(v))
	}
	out := make([]T, len(arr))
	for i, elt := range arr {
		if err := m.DecodeInto(&out[i], elt); err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
	}
	return out, nil
}

// String returns a Setter that stores a JSON string into the field selected by
// field.
func String[T any](field func(*T) *string) Setter[T] {
	return scalar(field, "string", func(v jvalue.Value) (string, bool) {
		s, ok := v.(jvalue.String)
		return string(s), ok
	})
}

// Int returns a Setter that stores a JSON integer into the field selected by
// field.
func Int[T any](field func(*T) *int64) Setter[T] {
	return scalar(field, "integer", func(v jvalue.Value) (int64, bool) {
		z, ok := v.(jvalue.Integer)
		return int64(z), ok
	})
}

// Float returns a Setter that stores a JSON number into the field selected by
// field. Both integer and floating-point values are accepted.
func Float[T any](field func(*T) *float64) Setter[T] {
	return scalar(field, "number", func(v jvalue.Value) (float64, bool) {
		switch t := v.(type) {
		case jvalue.Float:
			return float64(t), true
		case jvalue.Integer:
			return float64(t), true
		}
		return 0, false
	})
}

// Bool returns a Setter that stores a JSON Boolean into the field selected by
// field.
func Bool[T any](field func(*T) *bool) Setter[T] {
	return scalar(field, "bool", func(v jvalue.Value) (bool, bool) {
		b, ok := v.(jvalue.Bool)
		return bool(b), ok
	})
}

// Value returns a Setter that stores a JSON value of any kind, unconverted,
// into the field selected by field.
func Value[T any](field func(*T) *jvalue.Value) Setter[T] {
	return func(dst *T, v jvalue.Value) error {
		*field(dst) = v
		return nil
	}
}

// Object returns a Setter that decodes a JSON object using m and stores the
// result into the field selected by field.
func Object[T, U any](field func(*T) *U, m *Mapper[U]) Setter[T] {
	return func(dst *T, v jvalue.Value) error {
		if isNull(v) {
			return nil
		}
		return m.DecodeInto(field(dst), v)
	}
}

// Slice returns a Setter that decodes a JSON array of objects using m and
// stores the result into the field selected by field.
func Slice[T, U any](field func(*T) *[]U, m *Mapper[U]) Setter[T] {
	return func(dst *T, v jvalue.Value) error {
		if isNull(v) {
			return nil
		}
		out, err := m.DecodeArray(v)
		if err != nil {
			return err
		}
		*field(dst) = out
		return nil
	}
}

func scalar[T, V any](field func(*T) *V, want string, conv func(jvalue.Value) (V, bool)) Setter[T] {
	return func(dst *T, v jvalue.Value) error {
		if isNull(v) {
			return nil
		}
		x, ok := conv(v)
		if !ok {
			return fmt.Errorf("got %v, want %s", kindOf(v), want)
		}
		*field(dst) = x
		return nil
	}
}

func isNull(v jvalue.Value) bool { _, ok := v.(jvalue.Null); return ok }

func kindOf(v jvalue.Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}
