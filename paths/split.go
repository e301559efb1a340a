package paths

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/unitext/codec"
	"github.com/wippyai/unitext/errors"
	"github.com/wippyai/unitext/span"
)

// List is a path split into components.
type List[U codec.Unit] struct {
	// Root is the number of leading separators: 0 for a relative path, 1 for
	// a rooted path, 2 or more for a network path.
	Root int
	// Parts are the components in path order. Only the last may be empty.
	Parts []span.Span[U]
}

// Len returns the number of components.
func (l List[U]) Len() int { return len(l.Parts) }

// Strings decodes the components.
func (l List[U]) Strings(enc codec.Encoding[U]) []string {
	out := make([]string, len(l.Parts))
	for i, p := range l.Parts {
		out[i] = span.String(enc, p.Units())
	}
	return out
}

// Split breaks path into components. Decoding stops at the terminator or the
// first malformed sequence.
func (e *Engine[U]) Split(path []U) (List[U], error) {
	var list List[U]

	c := span.Start(path)
	for {
		r, next := c.Next(e.enc)
		if r == 0 || !e.isSep(r) {
			break
		}
		list.Root++
		c = next
	}

	start := c.Pos()
	sawSep := false
	add := func(end int) error {
		if len(list.Parts) >= e.cfg.MaxComponents {
			err := errors.CapacityExceeded(errors.PhasePath, "component count", e.cfg.MaxComponents)
			err.Path = []string{"component", strconv.Itoa(len(list.Parts))}
			Logger().Debug("path has too many components",
				zap.String("encoding", e.enc.Name()),
				zap.Int("limit", e.cfg.MaxComponents))
			return err
		}
		list.Parts = append(list.Parts, span.New(path[start:end]))
		return nil
	}

	for {
		r, next := c.Next(e.enc)
		if r == 0 {
			if c.Pos() > start || sawSep {
				if err := add(c.Pos()); err != nil {
					return List[U]{}, err
				}
			}
			return list, nil
		}
		if e.isSep(r) {
			if c.Pos() > start {
				if err := add(c.Pos()); err != nil {
					return List[U]{}, err
				}
			}
			start = next.Pos()
			sawSep = true
		}
		c = next
	}
}

// Split breaks path into components using the host platform rules.
func Split[U codec.Unit](enc codec.Encoding[U], path []U) (List[U], error) {
	return host(enc).Split(path)
}
