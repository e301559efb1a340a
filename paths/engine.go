package paths

import (
	"github.com/wippyai/unitext"
	"github.com/wippyai/unitext/codec"
)

// Engine applies one platform's path rules to buffers of one encoding.
// An Engine is immutable and safe for concurrent use.
type Engine[U codec.Unit] struct {
	enc codec.Encoding[U]
	cfg unitext.Config
}

// New returns an engine for enc. A nil cfg selects the host platform.
func New[U codec.Unit](enc codec.Encoding[U], cfg *unitext.Config) (*Engine[U], error) {
	c := unitext.Resolve(cfg)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Engine[U]{enc: codec.Select(&c, enc), cfg: c}, nil
}

func host[U codec.Unit](enc codec.Encoding[U]) *Engine[U] {
	return &Engine[U]{enc: enc, cfg: unitext.Resolve(nil)}
}

// Config returns the resolved configuration of the engine.
func (e *Engine[U]) Config() unitext.Config { return e.cfg }

// Encoding returns the encoding the engine decodes with.
func (e *Engine[U]) Encoding() codec.Encoding[U] { return e.enc }

func (e *Engine[U]) isSep(r rune) bool { return e.cfg.Platform.IsSeparator(r) }

// IsAbsolute reports whether path is absolute under the engine's platform.
func (e *Engine[U]) IsAbsolute(path []U) bool {
	r1, n := e.enc.Decode(path)
	if r1 == 0 {
		return false
	}
	if e.cfg.Platform != unitext.PlatformWindows {
		return r1 == '/'
	}
	if ('A' <= r1 && r1 <= 'Z') || ('a' <= r1 && r1 <= 'z') {
		if r2, _ := e.enc.Decode(path[n:]); r2 == ':' {
			return true
		}
	}
	return e.IsNetworkPath(path)
}

// IsRelative reports whether path is not absolute.
func (e *Engine[U]) IsRelative(path []U) bool {
	return !e.IsAbsolute(path)
}

// IsNetworkPath reports whether path starts with two separators. Network
// paths exist only on windows.
func (e *Engine[U]) IsNetworkPath(path []U) bool {
	if e.cfg.Platform != unitext.PlatformWindows {
		return false
	}
	r1, n := e.enc.Decode(path)
	if !e.isSep(r1) {
		return false
	}
	r2, _ := e.enc.Decode(path[n:])
	return e.isSep(r2)
}

// IsAbsolute reports whether path is absolute on the host platform.
func IsAbsolute[U codec.Unit](enc codec.Encoding[U], path []U) bool {
	return host(enc).IsAbsolute(path)
}

// IsRelative reports whether path is relative on the host platform.
func IsRelative[U codec.Unit](enc codec.Encoding[U], path []U) bool {
	return host(enc).IsRelative(path)
}

// IsNetworkPath reports whether path is a network path on the host platform.
func IsNetworkPath[U codec.Unit](enc codec.Encoding[U], path []U) bool {
	return host(enc).IsNetworkPath(path)
}
