// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import "fmt"

// ErrorKind classifies the syntax errors reported by the parser.
// An ErrorKind is itself an error, so that callers can write:
//
//	if errors.Is(err, jvalue.ErrDepth) { ... }
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	ErrEmpty        ErrorKind = iota + 1 // input is empty or all whitespace
	ErrUnexpected                        // unexpected character
	ErrComma                             // dangling or misplaced comma
	ErrColon                             // missing colon after object key
	ErrUnterminated                      // unterminated string, array, or object
	ErrEscape                            // invalid escape sequence
	ErrControl                           // unescaped control character in string
	ErrNumber                            // invalid number
	ErrLiteral                           // invalid true, false, or null token
	ErrDepth                             // nesting depth limit exceeded
	ErrTrailing                          // content after the top-level value
)

var kindStr = [...]string{
	0:               "unknown error",
	ErrEmpty:        "empty input",
	ErrUnexpected:   "unexpected character",
	ErrComma:        "misplaced comma",
	ErrColon:        "missing colon",
	ErrUnterminated: "unterminated value",
	ErrEscape:       "invalid escape",
	ErrControl:      "invalid token",
	ErrNumber:       "invalid number",
	ErrLiteral:      "invalid token",
	ErrDepth:        "nesting too deep",
	ErrTrailing:     "trailing content",
}

func (k ErrorKind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[0]
	}
	return kindStr[k]
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string { return k.String() }

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Kind     ErrorKind
	Offset   int // byte offset of the error in the input
	Location LineCol
	Message  string
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping. It reports the kind of s.
func (s *SyntaxError) Unwrap() error { return s.Kind }
