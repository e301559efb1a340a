// Package bom detects, skips, attaches and removes the byte order mark at the
// start of encoded buffers, and decodes BOM-prefixed byte streams.
package bom

import (
	"github.com/wippyai/unitext/codec"
	"github.com/wippyai/unitext/span"
	"github.com/wippyai/unitext/strs"
)

// Detect reports whether buf starts with a byte order mark.
func Detect[U codec.Unit](enc codec.Encoding[U], buf []U) bool {
	r, _ := enc.Decode(buf)
	return r == codec.BOM
}

// Skip advances c past a leading byte order mark. The cursor is returned
// unchanged with false when none is present.
func Skip[U codec.Unit](enc codec.Encoding[U], c span.Cursor[U]) (span.Cursor[U], bool) {
	r, next := c.Next(enc)
	if r != codec.BOM {
		return c, false
	}
	return next, true
}

// Attach inserts a byte order mark at the start of the terminated string in
// dst. The return value is the capacity the result needs, terminator
// included; a nil dst performs the size query for an empty string. A string
// that already starts with a mark is left as is. When dst cannot hold the
// result it is not modified.
func Attach[U codec.Unit](enc codec.Encoding[U], dst []U) int {
	n := strs.Length(dst)
	if Detect(enc, dst[:n]) {
		return n + 1
	}

	w := enc.Width(codec.BOM)
	required := n + w + 1
	if required > len(dst) {
		return required
	}

	copy(dst[w:], dst[:n])
	enc.Encode(dst, codec.BOM)
	dst[n+w] = 0
	return required
}

// Remove strips a leading byte order mark from buf in place and returns the
// new length in units, terminator excluded.
func Remove[U codec.Unit](enc codec.Encoding[U], buf []U) int {
	n := strs.Length(buf)
	r, w := enc.Decode(buf[:n])
	if r != codec.BOM {
		return n
	}

	copy(buf, buf[w:n])
	if n-w < len(buf) {
		buf[n-w] = 0
	}
	return n - w
}
