package strs

import (
	"github.com/wippyai/unitext/codec"
	"github.com/wippyai/unitext/span"
)

// Compare compares a and b codepoint by codepoint and returns -1, 0 or +1.
// A side that terminates first compares lower.
func Compare[A, B codec.Unit](ea codec.Encoding[A], a []A, eb codec.Encoding[B], b []B) int {
	ca, cb := span.Start(a), span.Start(b)
	for {
		var r1, r2 rune
		r1, ca = ca.Next(ea)
		r2, cb = cb.Next(eb)

		switch {
		case r1 < r2:
			return -1
		case r1 > r2:
			return 1
		case r1 == 0:
			return 0
		}
	}
}

// Equal reports whether a and b hold the same codepoints. With
// caseSensitive false, ASCII letters compare equal regardless of case.
func Equal[A, B codec.Unit](ea codec.Encoding[A], a []A, eb codec.Encoding[B], b []B, caseSensitive bool) bool {
	// counting is cheaper than comparing when lengths differ
	if CharCount(ea, a, span.Unknown) != CharCount(eb, b, span.Unknown) {
		return false
	}

	ca, cb := span.Start(a), span.Start(b)
	for {
		var r1, r2 rune
		r1, ca = ca.Next(ea)
		r2, cb = cb.Next(eb)
		if r1 == 0 || r2 == 0 {
			return r1 == r2
		}
		if !caseSensitive {
			r1, r2 = FoldASCII(r1), FoldASCII(r2)
		}
		if r1 != r2 {
			return false
		}
	}
}

// EqualFold is Equal with ASCII case folding.
func EqualFold[A, B codec.Unit](ea codec.Encoding[A], a []A, eb codec.Encoding[B], b []B) bool {
	return Equal(ea, a, eb, b, false)
}

// FoldASCII lowercases A-Z and returns every other codepoint unchanged.
func FoldASCII(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
