package paths

import (
	"go.uber.org/zap"

	"github.com/wippyai/unitext/codec"
	"github.com/wippyai/unitext/errors"
	"github.com/wippyai/unitext/span"
	"github.com/wippyai/unitext/strs"
)

// Absolute resolves path against base and writes the result into dst. An
// absolute path is resolved on its own and base is ignored. The return value
// is the capacity the result needs, terminator included; a nil dst performs
// the size query.
//
// When a ".." component ascends above the root, dst receives an empty string,
// the returned size is 1 and the error has kind errors.KindAboveRoot.
func (e *Engine[U]) Absolute(dst, path, base []U) (int, error) {
	p, err := e.Split(path)
	if err != nil {
		return e.fail(dst, err)
	}

	root := p.Root
	var out []span.Span[U]
	if !e.IsAbsolute(path) {
		b, err := e.Split(base)
		if err != nil {
			return e.fail(dst, err)
		}
		root = b.Root
		out = make([]span.Span[U], 0, len(b.Parts)+len(p.Parts))
		for _, part := range b.Parts {
			if !part.Empty() {
				out = append(out, part)
			}
		}
	}

	for i, part := range p.Parts {
		switch {
		case e.isParent(part):
			if len(out) == 0 {
				err := errors.AboveRoot(p.Strings(e.enc), i)
				Logger().Debug("path ascends above root",
					zap.String("path", span.String(e.enc, path)),
					zap.String("base", span.String(e.enc, base)),
					zap.Int("component", i))
				return e.fail(dst, err)
			}
			out = out[:len(out)-1]
		case part.Empty():
		default:
			out = append(out, part)
		}
	}

	w := newWriter(e.enc, dst)
	w.root(root, e.cfg.Platform)
	for i, part := range out {
		if i > 0 {
			w.put(e.cfg.Platform.Separator())
		}
		w.part(part)
	}
	return w.finish(), nil
}

// Relative writes into dst the path that leads from base to path. Both are
// expected to be absolute. A trailing empty component in path is kept, so a
// directory stays a directory. The sizing contract is that of Absolute.
func (e *Engine[U]) Relative(dst, path, base []U) (int, error) {
	p, err := e.Split(path)
	if err != nil {
		return e.fail(dst, err)
	}
	b, err := e.Split(base)
	if err != nil {
		return e.fail(dst, err)
	}

	bparts := b.Parts
	if n := len(bparts); n > 0 && bparts[n-1].Empty() {
		bparts = bparts[:n-1]
	}

	common := 0
	for common < len(p.Parts) && common < len(bparts) &&
		strs.Equal(e.enc, p.Parts[common].Units(), e.enc, bparts[common].Units(), true) {
		common++
	}

	w := newWriter(e.enc, dst)
	for range bparts[common:] {
		w.put('.')
		w.put('.')
		w.put(e.cfg.Platform.Separator())
	}
	for i, part := range p.Parts[common:] {
		if i > 0 {
			w.put(e.cfg.Platform.Separator())
		}
		w.part(part)
	}
	return w.finish(), nil
}

func (e *Engine[U]) isParent(s span.Span[U]) bool {
	c := s.Cursor()
	for range 2 {
		var r rune
		r, c = c.Next(e.enc)
		if r != '.' {
			return false
		}
	}
	return c.AtEnd()
}

func (e *Engine[U]) fail(dst []U, err error) (int, error) {
	if len(dst) > 0 {
		dst[0] = 0
	}
	return 1, err
}

// Absolute resolves path against base using the host platform rules.
func Absolute[U codec.Unit](enc codec.Encoding[U], dst, path, base []U) (int, error) {
	return host(enc).Absolute(dst, path, base)
}

// Relative computes the path from base to path using the host platform rules.
func Relative[U codec.Unit](enc codec.Encoding[U], dst, path, base []U) (int, error) {
	return host(enc).Relative(dst, path, base)
}
