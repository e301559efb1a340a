// Package span provides views and cursors over encoded buffers.
//
// A Span never owns memory: it is a window onto a caller-owned []U. The
// slice length is the declared length and a zero unit inside it terminates
// the string early. A Cursor is a position within a Span from which the next
// codepoint can be decoded; advancing returns a new Cursor.
package span

import "github.com/wippyai/unitext/codec"

// Unknown is the declared length meaning "scan for the terminator".
const Unknown = -1

// Span is a view over a buffer of units.
type Span[U codec.Unit] struct {
	buf []U
}

// New returns a span covering buf.
func New[U codec.Unit](buf []U) Span[U] {
	return Span[U]{buf: buf}
}

// Bounded returns a span over the first n units of buf. n == Unknown, or n
// larger than the buffer, covers all of buf.
func Bounded[U codec.Unit](buf []U, n int) Span[U] {
	if n < 0 || n > len(buf) {
		return Span[U]{buf: buf}
	}
	return Span[U]{buf: buf[:n]}
}

// Buffer returns the underlying window, terminator not stripped.
func (s Span[U]) Buffer() []U { return s.buf }

// Units returns the units before the terminator.
func (s Span[U]) Units() []U {
	return s.buf[:s.Len()]
}

// Len returns the number of units before the terminator.
func (s Span[U]) Len() int {
	for i, u := range s.buf {
		if u == 0 {
			return i
		}
	}
	return len(s.buf)
}

// Empty reports whether the span holds no units before the terminator.
func (s Span[U]) Empty() bool {
	return len(s.buf) == 0 || s.buf[0] == 0
}

// Slice returns the sub-span [i, j) of the window.
func (s Span[U]) Slice(i, j int) Span[U] {
	return Span[U]{buf: s.buf[i:j]}
}

// Cursor returns a cursor at the start of the span.
func (s Span[U]) Cursor() Cursor[U] {
	return Cursor[U]{buf: s.buf}
}

// Terminated returns a copy of units with a trailing zero unit.
func Terminated[U codec.Unit](units []U) []U {
	out := make([]U, len(units)+1)
	copy(out, units)
	return out
}

// FromString encodes s into a new terminated buffer. Codepoints that enc
// cannot represent, and NUL, are skipped.
func FromString[U codec.Unit](enc codec.Encoding[U], s string) []U {
	n := 1
	for _, r := range s {
		if r != 0 {
			n += enc.Width(r)
		}
	}
	out := make([]U, n)
	pos := 0
	for _, r := range s {
		if r != 0 {
			pos += enc.Encode(out[pos:], r)
		}
	}
	return out
}

// String decodes the span into a Go string, stopping at the terminator or
// the first decode failure.
func String[U codec.Unit](enc codec.Encoding[U], buf []U) string {
	out := make([]rune, 0, len(buf))
	c := Start(buf)
	for {
		r, next := c.Next(enc)
		if r == 0 {
			break
		}
		out = append(out, r)
		c = next
	}
	return string(out)
}
