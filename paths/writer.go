package paths

import (
	"github.com/wippyai/unitext"
	"github.com/wippyai/unitext/codec"
	"github.com/wippyai/unitext/span"
	"github.com/wippyai/unitext/strs"
)

// writer emits codepoints into an optional destination while counting the
// capacity the full output needs. Once a codepoint does not fit, nothing
// further is written so the destination keeps a clean prefix.
type writer[U codec.Unit] struct {
	enc  codec.Encoding[U]
	dst  []U
	pos  int
	need int
	full bool
}

func newWriter[U codec.Unit](enc codec.Encoding[U], dst []U) *writer[U] {
	return &writer[U]{enc: enc, dst: dst, full: len(dst) == 0}
}

func (w *writer[U]) put(r rune) {
	n := w.enc.Width(r)
	w.need += n
	if w.full {
		return
	}
	if w.pos+n > len(w.dst)-1 {
		w.full = true
		return
	}
	w.pos += w.enc.Encode(w.dst[w.pos:], r)
}

func (w *writer[U]) part(s span.Span[U]) {
	for _, r := range strs.All(w.enc, s.Units()) {
		w.put(r)
	}
}

func (w *writer[U]) root(n int, p unitext.Platform) {
	if n == 0 {
		return
	}
	w.put(p.Separator())
	if n >= 2 && p == unitext.PlatformWindows {
		w.put(p.Separator())
	}
}

// finish terminates the destination and returns the required capacity.
func (w *writer[U]) finish() int {
	if len(w.dst) > 0 {
		w.dst[w.pos] = 0
	}
	return w.need + 1
}
