package paths

import (
	"github.com/wippyai/unitext/codec"
	"github.com/wippyai/unitext/span"
)

// SplitFile splits path after its last separator. folder keeps the
// separator; file is the rest of the path.
func (e *Engine[U]) SplitFile(path []U) (folder, file span.Span[U]) {
	cut := 0
	c := span.Start(path)
	for {
		r, next := c.Next(e.enc)
		if r == 0 {
			break
		}
		if e.isSep(r) {
			cut = next.Pos()
		}
		c = next
	}
	return span.New(path[:cut]), span.New(path[cut:c.Pos()])
}

// Ext writes into dst the extension of the last component of path, without
// the dot. A component whose only dot is its first codepoint has no
// extension. The return value is the required capacity; a nil dst performs
// the size query.
func (e *Engine[U]) Ext(dst, path []U) int {
	_, file := e.SplitFile(path)
	units := file.Units()

	dot := -1
	c := span.Start(units)
	for {
		r, next := c.Next(e.enc)
		if r == 0 {
			break
		}
		if r == '.' && c.Pos() > 0 {
			dot = next.Pos()
		}
		c = next
	}

	w := newWriter(e.enc, dst)
	if dot >= 0 {
		w.part(span.New(units[dot:]))
	}
	return w.finish()
}

// SplitFile splits path using the host platform rules.
func SplitFile[U codec.Unit](enc codec.Encoding[U], path []U) (folder, file span.Span[U]) {
	return host(enc).SplitFile(path)
}

// Ext extracts the extension of path using the host platform rules.
func Ext[U codec.Unit](enc codec.Encoding[U], dst, path []U) int {
	return host(enc).Ext(dst, path)
}
