package strs

import (
	"iter"

	"github.com/wippyai/unitext/codec"
	"github.com/wippyai/unitext/span"
)

// Length returns the number of units in buf before the terminator.
func Length[U codec.Unit](buf []U) int {
	return span.New(buf).Len()
}

// CharCount returns the number of codepoints in buf, decoding until the
// terminator, a decode failure, or maxUnits units have been consumed.
// maxUnits == span.Unknown means no bound.
func CharCount[U codec.Unit](enc codec.Encoding[U], buf []U, maxUnits int) int {
	c := span.Bounded(buf, maxUnits).Cursor()
	count := 0
	for {
		r, next := c.Next(enc)
		if r == 0 {
			return count
		}
		count++
		c = next
	}
}

// CharAt returns the codepoint at the zero-based codepoint index, or 0 when
// index is out of range.
func CharAt[U codec.Unit](enc codec.Encoding[U], buf []U, index int) rune {
	if index < 0 {
		return 0
	}
	i := 0
	for _, r := range All(enc, buf) {
		if i == index {
			return r
		}
		i++
	}
	return 0
}

// All iterates over the codepoints of buf, yielding the unit offset of each
// codepoint and the codepoint. Iteration stops at the terminator or the
// first decode failure.
func All[U codec.Unit](enc codec.Encoding[U], buf []U) iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		c := span.Start(buf)
		for {
			r, next := c.Next(enc)
			if r == 0 {
				return
			}
			if !yield(c.Pos(), r) {
				return
			}
			c = next
		}
	}
}

// ContainsNonPrintable reports whether buf holds a codepoint at or below
// the space character (controls, tab, newline and space itself).
func ContainsNonPrintable[U codec.Unit](enc codec.Encoding[U], buf []U) bool {
	for _, r := range All(enc, buf) {
		if r <= ' ' {
			return true
		}
	}
	return false
}

// ContainsPrintable reports whether buf holds a codepoint above the space
// character.
func ContainsPrintable[U codec.Unit](enc codec.Encoding[U], buf []U) bool {
	for _, r := range All(enc, buf) {
		if r > ' ' {
			return true
		}
	}
	return false
}
