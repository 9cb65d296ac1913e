// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape decodes the escape sequences of JSON string literals.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes the body of a JSON string literal. The input must have the
// enclosing double quotation marks already removed.
//
// Escape sequences are replaced with the characters they denote. A \u escape
// for a high surrogate immediately followed by a \u escape for a low surrogate
// is combined into a single rune; an unpaired surrogate decodes as the Unicode
// replacement rune. Unquote reports an error for an incomplete or invalid
// escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	putByte := func(bs ...byte) { dec = append(dec, bs...) }
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		b := src.At(0)
		src = src.SliceFrom(1)
		switch b {
		case '"', '\\', '/':
			putByte(b)
		case 'b':
			putByte('\b')
		case 'f':
			putByte('\f')
		case 'n':
			putByte('\n')
		case 'r':
			putByte('\r')
		case 't':
			putByte('\t')
		case 'u':
			r, n, err := decodeUnicode(src)
			if err != nil {
				return nil, err
			}
			dec = utf8.AppendRune(dec, r)
			src = src.SliceFrom(n)
		default:
			return nil, fmt.Errorf("invalid %q after escape", b)
		}

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// decodeUnicode decodes the hex digits of a \u escape at the front of src
// (following the "\u"), along with the trailing half of a surrogate pair if
// one is present. It returns the rune and the number of bytes consumed.
func decodeUnicode(src mem.RO) (rune, int, error) {
	if src.Len() < 4 {
		return 0, 0, errors.New("incomplete Unicode escape")
	}
	v, err := ParseHex4(src.SliceTo(4))
	if err != nil {
		return 0, 0, err
	}
	r := rune(v)
	if !utf16.IsSurrogate(r) {
		return r, 4, nil
	}

	// Look for a low surrogate: \uXXXX.
	rest := src.SliceFrom(4)
	if rest.Len() >= 6 && rest.At(0) == '\\' && rest.At(1) == 'u' {
		if w, err := ParseHex4(rest.SliceFrom(2).SliceTo(4)); err == nil {
			if dr := utf16.DecodeRune(r, rune(w)); dr != utf8.RuneError {
				return dr, 10, nil
			}
		}
	}
	return utf8.RuneError, 4, nil
}

// ParseHex4 parses exactly four hexadecimal digits from data.
func ParseHex4(data mem.RO) (int64, error) {
	if data.Len() != 4 {
		return 0, fmt.Errorf("got %d hex digits, want 4", data.Len())
	}
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
