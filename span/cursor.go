package span

import "github.com/wippyai/unitext/codec"

// Cursor is a position within a buffer.
type Cursor[U codec.Unit] struct {
	buf []U
	pos int
}

// Start returns a cursor at the beginning of buf.
func Start[U codec.Unit](buf []U) Cursor[U] {
	return Cursor[U]{buf: buf}
}

// Pos returns the unit offset of the cursor.
func (c Cursor[U]) Pos() int { return c.pos }

// Rest returns the units from the cursor to the end of the window.
func (c Cursor[U]) Rest() []U { return c.buf[c.pos:] }

// Next decodes the codepoint at the cursor and returns it with the advanced
// cursor. At the terminator or on a decode failure it returns 0 and c
// unchanged.
func (c Cursor[U]) Next(enc codec.Encoding[U]) (rune, Cursor[U]) {
	r, n := enc.Decode(c.buf[c.pos:])
	if n == 0 {
		return 0, c
	}
	return r, Cursor[U]{buf: c.buf, pos: c.pos + n}
}

// AtEnd reports whether the cursor sits on the terminator or the end of the
// window. A cursor where Next returns 0 but AtEnd is false has hit
// malformed input.
func (c Cursor[U]) AtEnd() bool {
	return c.pos >= len(c.buf) || c.buf[c.pos] == 0
}
