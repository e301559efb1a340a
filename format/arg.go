package format

import (
	"github.com/wippyai/unitext/codec"
	"github.com/wippyai/unitext/span"
)

// Kind is the type of a formatting argument.
type Kind int

const (
	KindInt Kind = iota
	KindUint
	KindFloat
	KindString
	KindRune
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindRune:
		return "rune"
	default:
		return "unknown"
	}
}

// Arg is one typed formatting argument.
type Arg struct {
	s    string
	i    int64
	u    uint64
	f    float64
	r    rune
	kind Kind
}

// Kind returns the argument kind.
func (a Arg) Kind() Kind { return a.kind }

func (a Arg) value() any {
	switch a.kind {
	case KindInt:
		return a.i
	case KindUint:
		return a.u
	case KindFloat:
		return a.f
	case KindString:
		return a.s
	default:
		return a.r
	}
}

// I returns an integer argument.
func I(v int64) Arg { return Arg{kind: KindInt, i: v} }

// U returns an unsigned integer argument.
func U(v uint64) Arg { return Arg{kind: KindUint, u: v} }

// F returns a floating point argument.
func F(v float64) Arg { return Arg{kind: KindFloat, f: v} }

// S returns a string argument.
func S(v string) Arg { return Arg{kind: KindString, s: v} }

// R returns a codepoint argument.
func R(v rune) Arg { return Arg{kind: KindRune, r: v} }

// Text returns a string argument decoded from an encoded buffer.
func Text[U codec.Unit](enc codec.Encoding[U], buf []U) Arg {
	return S(span.String(enc, buf))
}
