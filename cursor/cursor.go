// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor navigates the structure of a parsed JSON value by object
// key and array index.
//
// A Cursor remembers each step it has taken, so that it can report where it
// is as a path expression such as $.list[0].x, and so that traversal errors
// say where they happened.
package cursor

import (
	"fmt"
	"strings"

	"github.com/creachadair/jvalue"
)

// Path is shorthand for New(v).Down(path...) followed by a check that the
// value reached has type T.
func Path[T jvalue.Value](v jvalue.Value, path ...any) (T, error) {
	var zero T
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return zero, err
	}
	got, ok := c.Value().(T)
	if !ok {
		return zero, fmt.Errorf("at %s: value is %s, not %T", c.Where(), kindOf(c.Value()), zero)
	}
	return got, nil
}

// A step is one move down from the value before it.
type step struct {
	label string // e.g., .key, ["odd key"], [3], ()
	value jvalue.Value
}

// A Cursor tracks a position inside a jvalue.Value.
type Cursor struct {
	root  jvalue.Value
	steps []step
	err   error
}

// New returns a Cursor positioned at root.
func New(root jvalue.Value) *Cursor { return &Cursor{root: root} }

// Origin returns the value c was created with.
func (c *Cursor) Origin() jvalue.Value { return c.root }

// AtOrigin reports whether c has taken no steps.
func (c *Cursor) AtOrigin() bool { return len(c.steps) == 0 }

// Value returns the value at the current position.
func (c *Cursor) Value() jvalue.Value {
	if n := len(c.steps); n > 0 {
		return c.steps[n-1].value
	}
	return c.root
}

// Path returns the values from the origin to the current position, inclusive.
func (c *Cursor) Path() []jvalue.Value {
	out := make([]jvalue.Value, 0, len(c.steps)+1)
	out = append(out, c.root)
	for _, s := range c.steps {
		out = append(out, s.value)
	}
	return out
}

// Where renders the current position as a path expression rooted at "$".
// Object members are written .key, or ["key"] when the key is not a plain
// identifier. Array elements are written [i], and function steps ().
func (c *Cursor) Where() string {
	var sb strings.Builder
	sb.WriteString("$")
	for _, s := range c.steps {
		sb.WriteString(s.label)
	}
	return sb.String()
}

// Err returns the error from the last call to Down, or nil.
func (c *Cursor) Err() error { return c.err }

// Up backs c off by one step, if it is not at the origin, and returns c.
func (c *Cursor) Up() *Cursor {
	if n := len(c.steps); n > 0 {
		c.steps = c.steps[:n-1]
	}
	return c
}

// Reset returns c to its origin and clears its error.
func (c *Cursor) Reset() { c.steps = c.steps[:0]; c.err = nil }

// Down moves c along path from its current position, and returns c. On
// failure c stays at the last value it reached and Err reports why.
//
// Each path element is one of:
//
//   - A string, which selects the member of an object with that key.
//   - An int, which selects an element of an array, or the value of an
//     object member by position. Negative values count from the end.
//   - A func(jvalue.Value) (jvalue.Value, error), whose result becomes the
//     next value. An error from the function ends the traversal.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	for _, elt := range path {
		cur := c.Value()
		switch t := elt.(type) {
		case string:
			obj, ok := cur.(jvalue.Object)
			if !ok {
				return c.failf("cannot select key %q from %s", t, kindOf(cur))
			}
			v, ok := obj.Find(t)
			if !ok {
				return c.failf("key %q not found", t)
			}
			c.push(keyLabel(t), v)

		case int:
			switch e := cur.(type) {
			case jvalue.Array:
				i, ok := resolveIndex(len(e), t)
				if !ok {
					return c.failf("index %d out of range for array of length %d", t, len(e))
				}
				c.push(fmt.Sprintf("[%d]", i), e[i])
			case jvalue.Object:
				i, ok := resolveIndex(len(e), t)
				if !ok {
					return c.failf("index %d out of range for object of length %d", t, len(e))
				}
				c.push(keyLabel(e[i].Key), e[i].Value)
			default:
				return c.failf("cannot select index %d from %s", t, kindOf(cur))
			}

		case func(jvalue.Value) (jvalue.Value, error):
			next, err := t(cur)
			if err != nil {
				return c.failf("%w", err)
			}
			c.push("()", next)

		default:
			return c.failf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(label string, v jvalue.Value) {
	c.steps = append(c.steps, step{label: label, value: v})
}

func (c *Cursor) failf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf("at %s: "+msg, append([]any{c.Where()}, args...)...)
	return c
}

func keyLabel(key string) string {
	if isIdent(key) {
		return "." + key
	}
	return fmt.Sprintf("[%q]", key)
}

func isIdent(s string) bool {
	for i, ch := range s {
		if ch == '_' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' {
			continue
		} else if i > 0 && ch >= '0' && ch <= '9' {
			continue
		}
		return false
	}
	return s != ""
}

func kindOf(v jvalue.Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}

// resolveIndex maps i, which may count back from the end, into [0, n).
func resolveIndex(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
