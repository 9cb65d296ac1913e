// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jvalue implements a recursive-descent parser for JSON text.
//
// # Parsing
//
// Call Parse to parse a complete JSON value from a string, or ParseBytes to
// parse from a byte slice. The input must contain exactly one value,
// optionally surrounded by whitespace:
//
//	v, err := jvalue.Parse(`{"name": "Oscar", "tags": ["grouch"]}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// In case of error, no value is returned and the error has concrete type
// *jvalue.SyntaxError, reporting the location of the problem and its kind.
// Use errors.Is to check for a particular kind:
//
//	if errors.Is(err, jvalue.ErrDepth) {
//	   log.Print("Input is nested too deeply")
//	}
//
// The literals true, false, and null extend to the next comma, close bracket,
// close brace, or end of input. Hence "true x" reports ErrLiteral, whereas
// "123 x" reports ErrTrailing.
//
// TryParse is a variant that reports success as a bool.
//
// # Values
//
// The concrete type of a parsed Value is one of:
//
//	JSON type  | Go type          | Notes
//	---------- | ---------------- | ---------------------------------------
//	object     | jvalue.Object    | members in input order, keys unique
//	array      | jvalue.Array     |
//	string     | jvalue.String    | escape sequences decoded
//	number     | jvalue.Integer   | no fraction or exponent, fits in int64
//	number     | jvalue.Float     | has a fraction and/or exponent
//	true/false | jvalue.Bool      |
//	null       | jvalue.Null      |
//
// If an object contains the same key more than once, the last value given
// for that key wins.
//
// # Limits
//
// Arrays and objects may be nested at most DefaultMaxDepth-1 levels deep.
// Construct a Parser and call its MaxDepth method to change the limit:
//
//	p := jvalue.NewParser()
//	p.MaxDepth(100)
//	v, err := p.Parse(input)
package jvalue
