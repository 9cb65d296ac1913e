// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"fmt"

	"go4.org/mem"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// locate reports the line and column of the given byte offset in input.
// Offsets past the end of input are clamped to the end.
func locate(input mem.RO, offset int) LineCol {
	offset = min(offset, input.Len())
	lc := LineCol{Line: 1}
	for i := 0; i < offset; i++ {
		if input.At(i) == '\n' {
			lc.Line++
			lc.Column = 0
		} else {
			lc.Column++
		}
	}
	return lc
}
