// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/creachadair/jvalue/internal/escape"
	"go4.org/mem"
)

// DefaultMaxDepth is the nesting depth at which the parser rejects its input
// unless configured otherwise. The top-level value is at depth 0, and each
// enclosing array or object adds 1, so at most DefaultMaxDepth-1 containers
// may be nested.
const DefaultMaxDepth = 20

// A scanner implements the productions of the JSON grammar over an immutable
// input. Each production takes the offset where it begins and the current
// nesting depth, and returns the parsed value with the number of bytes it
// consumed. The caller advances its own position by that count.
type scanner struct {
	input    mem.RO
	maxDepth int
}

// value parses a single value of any type at pos, skipping leading
// whitespace.
func (s *scanner) value(pos, depth int) (Value, int, error) {
	i := s.skipSpace(pos)
	if i >= s.input.Len() {
		return nil, 0, s.failf(i, ErrUnterminated, "unexpected end of input, want value")
	}

	var v Value
	var n int
	var err error
	switch ch := s.input.At(i); {
	case ch == ',':
		return nil, 0, s.failf(i, ErrComma, `unexpected ",", want value`)
	case ch == '{':
		v, n, err = s.object(i, depth)
	case ch == '[':
		v, n, err = s.array(i, depth)
	case ch == '"':
		var text string
		text, n, err = s.str(i)
		v = String(text)
	case isNumStart(ch):
		v, n, err = s.number(i)
	case ch == 'n':
		v = Null{}
		n, err = s.literal(i, "null")
	case ch == 't':
		v = Bool(true)
		n, err = s.literal(i, "true")
	case ch == 'f':
		v = Bool(false)
		n, err = s.literal(i, "false")
	default:
		return nil, 0, s.failf(i, ErrUnexpected, "unknown character %q", s.charAt(i))
	}
	if err != nil {
		return nil, 0, err
	}
	return v, i - pos + n, nil
}

// object parses an object whose open brace is at pos.
func (s *scanner) object(pos, depth int) (Value, int, error) {
	depth++
	if depth >= s.maxDepth {
		return nil, 0, s.failf(pos, ErrDepth, "object nested deeper than %d", s.maxDepth-1)
	}

	obj := Object{}
	var index map[string]int // key → offset in obj
	comma := false           // a comma has been seen, but no member after it
	i := pos + 1
	for {
		i = s.skipSpace(i)
		if i >= s.input.Len() {
			return nil, 0, s.failf(pos, ErrUnterminated, "unterminated object")
		}
		switch s.input.At(i) {
		case '}':
			if comma {
				return nil, 0, s.failf(i, ErrComma, `comma before "}"`)
			}
			return obj, i + 1 - pos, nil

		case ',':
			if len(obj) == 0 || comma {
				return nil, 0, s.failf(i, ErrComma, "unexpected comma in object")
			}
			comma = true
			i++

		case '"':
			if len(obj) != 0 && !comma {
				return nil, 0, s.failf(i, ErrUnexpected, "missing comma between object members")
			}
			key, val, n, err := s.member(i, depth)
			if err != nil {
				return nil, 0, err
			}
			if j, ok := index[key]; ok {
				obj[j].Value = val // last write wins
			} else {
				if index == nil {
					index = make(map[string]int)
				}
				index[key] = len(obj)
				obj = append(obj, Member{Key: key, Value: val})
			}
			comma = false
			i += n

		default:
			return nil, 0, s.failf(i, ErrUnexpected, `got %q, want string key or "}"`, s.charAt(i))
		}
	}
}

// member parses a "key": value pair whose key begins at pos.
func (s *scanner) member(pos, depth int) (string, Value, int, error) {
	key, n, err := s.str(pos)
	if err != nil {
		return "", nil, 0, err
	}
	i := s.skipSpace(pos + n)
	if i >= s.input.Len() || s.input.At(i) != ':' {
		return "", nil, 0, s.failf(i, ErrColon, "missing colon after key %q", key)
	}
	i++
	val, n, err := s.value(i, depth)
	if err != nil {
		return "", nil, 0, err
	}
	return key, val, i + n - pos, nil
}

// array parses an array whose open bracket is at pos.
func (s *scanner) array(pos, depth int) (Value, int, error) {
	depth++
	if depth >= s.maxDepth {
		return nil, 0, s.failf(pos, ErrDepth, "array nested deeper than %d", s.maxDepth-1)
	}

	arr := Array{}
	comma := false // a comma has been seen, but no element after it
	i := pos + 1
	for {
		i = s.skipSpace(i)
		if i >= s.input.Len() {
			return nil, 0, s.failf(pos, ErrUnterminated, "unterminated array")
		}
		switch s.input.At(i) {
		case ']':
			if comma {
				return nil, 0, s.failf(i, ErrComma, `comma before "]"`)
			}
			return arr, i + 1 - pos, nil

		case ',':
			if len(arr) == 0 || comma {
				return nil, 0, s.failf(i, ErrComma, "unexpected comma in array")
			}
			comma = true
			i++

		default:
			if len(arr) != 0 && !comma {
				return nil, 0, s.failf(i, ErrUnexpected, "missing comma between array elements")
			}
			v, n, err := s.value(i, depth)
			if err != nil {
				return nil, 0, err
			}
			arr = append(arr, v)
			comma = false
			i += n
		}
	}
}

// str parses a string whose open quotation mark is at pos, and returns its
// decoded text. Whitespace following the close quotation mark is consumed.
func (s *scanner) str(pos int) (string, int, error) {
	var esc, wide bool
	i := pos + 1
	for {
		if i >= s.input.Len() {
			return "", 0, s.failf(pos, ErrUnterminated, "unterminated string")
		}
		ch := s.input.At(i)
		if ch == '"' {
			break
		} else if ch == '\\' {
			n, err := s.escape(i)
			if err != nil {
				return "", 0, err
			}
			esc = true
			i += n
			continue
		} else if ch < ' ' {
			return "", 0, s.failf(i, ErrControl, "unescaped control %q in string", ch)
		} else if ch >= utf8.RuneSelf {
			wide = true
		}
		i++
	}

	body := s.input.SliceTo(i).SliceFrom(pos + 1)
	if wide && !validUTF8(body) {
		return "", 0, s.failf(pos, ErrUnexpected, "invalid UTF-8 in string")
	}
	text := body.StringCopy()
	if esc {
		dec, err := escape.Unquote(body)
		if err != nil {
			return "", 0, s.failf(pos, ErrEscape, "%v", err)
		}
		text = string(dec)
	}
	return text, s.skipSpace(i+1) - pos, nil
}

// escape checks the escape sequence whose backslash is at pos, and returns
// its length in bytes.
func (s *scanner) escape(pos int) (int, error) {
	if pos+1 >= s.input.Len() {
		return 0, s.failf(pos, ErrUnterminated, "unterminated string")
	}
	switch ch := s.input.At(pos + 1); ch {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return 2, nil
	case 'u':
		if pos+6 > s.input.Len() {
			return 0, s.failf(pos, ErrEscape, "invalid hex with escape character: incomplete Unicode escape")
		}
		if _, err := escape.ParseHex4(s.input.SliceFrom(pos + 2).SliceTo(4)); err != nil {
			return 0, s.failf(pos, ErrEscape, "invalid hex with escape character: %v", err)
		}
		return 6, nil
	default:
		return 0, s.failf(pos, ErrEscape, "invalid escape character usage %q", s.charAt(pos+1))
	}
}

// number parses a number beginning at pos. Numbers written with a fraction or
// exponent are reported as Float, others as Integer.
func (s *scanner) number(pos int) (Value, int, error) {
	i := pos
	for i < s.input.Len() && isNumRune(s.input.At(i)) {
		i++
	}
	lex := s.input.SliceTo(i).SliceFrom(pos)
	if err := checkNumber(lex); err != nil {
		return nil, 0, s.failf(pos, ErrNumber, "invalid number %q: %v", lex.StringCopy(), err)
	}

	if isFloat(lex) {
		f, err := mem.ParseFloat(lex, 64)
		if err != nil {
			return nil, 0, s.failf(pos, ErrNumber, "invalid number %q: out of range", lex.StringCopy())
		}
		return Float(f), i - pos, nil
	}
	z, err := mem.ParseInt(lex, 10, 64)
	if err != nil {
		return nil, 0, s.failf(pos, ErrNumber, "invalid number %q: out of range", lex.StringCopy())
	}
	return Integer(z), i - pos, nil
}

// literal matches the constant want beginning at pos. The token extends to
// the next delimiter or the end of input, and must equal want apart from
// surrounding whitespace.
func (s *scanner) literal(pos int, want string) (int, error) {
	i := pos
	for i < s.input.Len() && !isDelim(s.input.At(i)) {
		i++
	}
	if got := trimSpace(s.input.SliceTo(i).SliceFrom(pos)); !got.Equal(mem.S(want)) {
		return 0, s.failf(pos, ErrLiteral, "invalid token %q, want %s", got.StringCopy(), want)
	}
	return i - pos, nil
}

func (s *scanner) skipSpace(pos int) int {
	for pos < s.input.Len() && isSpace(s.input.At(pos)) {
		pos++
	}
	return pos
}

func (s *scanner) charAt(pos int) rune {
	r, _ := mem.DecodeRune(s.input.SliceFrom(pos))
	return r
}

func (s *scanner) failf(pos int, kind ErrorKind, msg string, args ...any) error {
	return &SyntaxError{
		Kind:     kind,
		Offset:   pos,
		Location: locate(s.input, pos),
		Message:  fmt.Sprintf(msg, args...),
	}
}

// checkNumber reports whether lex is a well-formed JSON number:
//
//	-? (0 | [1-9][0-9]*) (. [0-9]+)? ([eE] [+-]? [0-9]+)?
//
// with the further rule that a leading zero must be the whole number or be
// followed by a decimal point, so 0e5 is rejected but 0.0e5 is not.
func checkNumber(lex mem.RO) error {
	i, n := 0, lex.Len()
	digits := func() int {
		start := i
		for i < n && isDigit(lex.At(i)) {
			i++
		}
		return i - start
	}

	if lex.At(0) == '+' {
		return errors.New("leading plus sign")
	} else if lex.At(0) == '-' {
		i++
	}
	if digits() == 0 {
		return errors.New("missing digits")
	} else if hasExtraLeadingZeroes(lex) {
		return errors.New("extra leading zeroes")
	}
	if i < n && lex.At(i) == '.' {
		i++
		if digits() == 0 {
			return errors.New("no digits after decimal point")
		}
	}
	if i < n && (lex.At(i) == 'e' || lex.At(i) == 'E') {
		i++
		if i < n && (lex.At(i) == '+' || lex.At(i) == '-') {
			i++
		}
		if digits() == 0 {
			return errors.New("missing exponent digits")
		}
	}
	if i < n {
		return fmt.Errorf("unexpected %q", lex.At(i))
	}
	return nil
}

// hasExtraLeadingZeroes reports whether the number in buf begins with a zero
// that is neither the whole number nor followed by a decimal point.
//
// OK: 0, -0, 10, 0.5.
// Bad: -01, 01, 00, 0e5.
func hasExtraLeadingZeroes(buf mem.RO) bool {
	if buf.At(0) == '-' {
		buf = buf.SliceFrom(1) // skip leading sign
	}
	return buf.At(0) == '0' && buf.Len() > 1 && buf.At(1) != '.'
}

func isFloat(lex mem.RO) bool {
	for i := 0; i < lex.Len(); i++ {
		if b := lex.At(i); b == '.' || b == 'e' || b == 'E' {
			return true
		}
	}
	return false
}

func trimSpace(m mem.RO) mem.RO {
	for m.Len() != 0 && isSpace(m.At(0)) {
		m = m.SliceFrom(1)
	}
	for m.Len() != 0 && isSpace(m.At(m.Len()-1)) {
		m = m.SliceTo(m.Len() - 1)
	}
	return m
}

func validUTF8(m mem.RO) bool {
	for m.Len() != 0 {
		r, n := mem.DecodeRune(m)
		if r == utf8.RuneError && n <= 1 {
			return false
		}
		m = m.SliceFrom(n)
	}
	return true
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDelim(ch byte) bool    { return ch == ',' || ch == '}' || ch == ']' }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNumStart(ch byte) bool { return ch == '-' || ch == '+' || isDigit(ch) }

func isNumRune(ch byte) bool {
	return isDigit(ch) || ch == '-' || ch == '+' || ch == '.' || ch == 'e' || ch == 'E'
}
