// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jvalue"
	"github.com/creachadair/jvalue/cursor"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestCursor(t *testing.T) {
	v, err := jvalue.Parse(testJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	root := v.(jvalue.Object)
	find := func(o jvalue.Value, key string) jvalue.Value {
		v, ok := o.(jvalue.Object).Find(key)
		if !ok {
			t.Fatalf("Find %q: not found", key)
		}
		return v
	}

	tests := []struct {
		name string
		path []any
		want jvalue.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{"o", "x"}, find(root, "o"), true},

		{"ArrayPos", []any{"list", 1}, find(root, "list").(jvalue.Array)[1], false},
		{"ArrayNeg", []any{"list", -1}, find(root, "list").(jvalue.Array)[1], false},
		{"ArrayRange", []any{"o", 25}, find(root, "o"), true},
		{"ObjPath", []any{"xyz", "d"}, jvalue.Bool(true), false},
		{"ObjIndex", []any{"xyz", -1}, jvalue.Bool(false), false},
		{"Deep", []any{"list", 0, "x"}, jvalue.Integer(1), false},
		{"Scalar", []any{"y", "hello", 0}, jvalue.String("there"), true},
		{"BadElement", []any{"y", 2.5}, find(root, "y"), true},

		{"FuncArray", []any{"o", testPathFunc}, jvalue.Integer(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, jvalue.Integer(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, jvalue.Bool(true), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
				}
			} else if tc.fail {
				t.Errorf("Down %+v: got success, want error", tc.path)
			}
			if diff := cmp.Diff(tc.want, c.Value()); diff != "" {
				t.Errorf("Down %+v: wrong result (-want, +got):\n%s", tc.path, diff)
			}
		})
	}
}

func TestCursorNav(t *testing.T) {
	v := jvalue.MustParse(`{"a": {"b": [10, 20]}}`)
	c := cursor.New(v)
	if !c.AtOrigin() {
		t.Error("New cursor is not at origin")
	}
	c.Down("a", "b", 0)
	if err := c.Err(); err != nil {
		t.Fatalf("Down: unexpected error: %v", err)
	}
	if got := len(c.Path()); got != 4 {
		t.Errorf("Path: got %d values, want 4", got)
	}
	if diff := cmp.Diff(jvalue.Integer(20), c.Up().Down(1).Value()); diff != "" {
		t.Errorf("Up.Down: (-want, +got)\n%s", diff)
	}
	c.Reset()
	if !c.AtOrigin() || c.Err() != nil {
		t.Errorf("Reset: at origin %v, err %v", c.AtOrigin(), c.Err())
	}
	if diff := cmp.Diff(v, c.Origin()); diff != "" {
		t.Errorf("Origin: (-want, +got)\n%s", diff)
	}
}

func TestPath(t *testing.T) {
	v := jvalue.MustParse(testJSON)

	s, err := cursor.Path[jvalue.String](v, "y", "hello")
	if err != nil {
		t.Fatalf("Path: unexpected error: %v", err)
	} else if s != "there" {
		t.Errorf("Path: got %q, want %q", s, "there")
	}

	if got, err := cursor.Path[jvalue.Integer](v, "y", "hello"); err == nil {
		t.Errorf("Path: got %v, want error", got)
	} else {
		t.Logf("Got expected error: %v", err)
	}
	if got, err := cursor.Path[jvalue.Array](v, "nonesuch"); err == nil {
		t.Errorf("Path: got %v, want error", got)
	}
}

var errNoLength = errors.New("not a thing with length")

func testPathFunc(v jvalue.Value) (jvalue.Value, error) {
	switch t := v.(type) {
	case jvalue.Array:
		return jvalue.Integer(len(t)), nil
	case jvalue.Object:
		return jvalue.Integer(len(t)), nil
	default:
		return nil, errNoLength
	}
}

func TestWhere(t *testing.T) {
	v := jvalue.MustParse(`{"a": [{"b c": 1, "d": [true]}], "_x9": {"9": null}}`)
	tests := []struct {
		path []any
		want string
	}{
		{nil, "$"},
		{[]any{"a"}, "$.a"},
		{[]any{"a", 0}, "$.a[0]"},
		{[]any{"a", -1, "b c"}, `$.a[0]["b c"]`},
		{[]any{"a", 0, 1, 0}, "$.a[0].d[0]"},
		{[]any{"_x9", "9"}, `$._x9["9"]`},
		{[]any{"a", testPathFunc}, "$.a()"},
	}
	for _, test := range tests {
		c := cursor.New(v).Down(test.path...)
		if err := c.Err(); err != nil {
			t.Errorf("Down %+v: unexpected error: %v", test.path, err)
			continue
		}
		if got := c.Where(); got != test.want {
			t.Errorf("Down %+v: got %q, want %q", test.path, got, test.want)
		}
	}
}

func TestErrorLocation(t *testing.T) {
	v := jvalue.MustParse(testJSON)
	tests := []struct {
		path []any
		want string
	}{
		{[]any{"nonesuch"}, `at $: key "nonesuch" not found`},
		{[]any{"list", 0, "y"}, `at $.list[0]: key "y" not found`},
		{[]any{"o", 2}, "at $.o: index 2 out of range for array of length 2"},
		{[]any{"y", "hello", 0}, "at $.y.hello: cannot select index 0 from string"},
		{[]any{"xyz", "p", "q"}, `at $.xyz.p: cannot select key "q" from bool`},
		{[]any{"y", 2.5}, "at $.y: invalid path element float64"},
		{[]any{"xyz", "d", testPathFunc}, "at $.xyz.d: " + errNoLength.Error()},
	}
	for _, test := range tests {
		c := cursor.New(v).Down(test.path...)
		err := c.Err()
		if err == nil {
			t.Errorf("Down %+v: got %v, want error", test.path, c.Value())
			continue
		}
		if got := err.Error(); got != test.want {
			t.Errorf("Down %+v: got error %q, want %q", test.path, got, test.want)
		}
	}

	if err := cursor.New(v).Down("xyz", "d", testPathFunc).Err(); !errors.Is(err, errNoLength) {
		t.Errorf("Down: got %v, want %v", err, errNoLength)
	}
	if _, err := cursor.Path[jvalue.Integer](v, "y", "hello"); err == nil ||
		err.Error() != "at $.y.hello: value is string, not jvalue.Integer" {
		t.Errorf("Path: got error %v", err)
	}
}
