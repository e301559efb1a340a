package codec

import (
	"unsafe"

	"github.com/wippyai/unitext"
)

// Unit is the storage unit of an encoded buffer.
type Unit interface {
	~uint8 | ~uint16 | ~uint32
}

// Encoding is the capability every concrete encoding provides.
type Encoding[U Unit] interface {
	// Name returns the encoding label, e.g. "utf-16".
	Name() string
	// Decode reads one codepoint from the start of buf. It returns (0, 0) at
	// the terminator, at the end of buf, and on malformed input.
	Decode(buf []U) (r rune, n int)
	// Width returns the number of units needed to store r, or 0 if r
	// cannot be encoded.
	Width(r rune) int
	// Encode writes r at the start of dst and returns the units written.
	// It writes nothing and returns 0 if r cannot be encoded or dst is
	// shorter than Width(r).
	Encode(dst []U, r rune) int
}

const (
	// MaxRune is the largest Unicode scalar value.
	MaxRune = '\U0010FFFF'
	// BOM is the byte-order mark codepoint.
	BOM = '\uFEFF'

	surrHigh = 0xD800
	surrLow  = 0xDC00
	surrEnd  = 0xE000
	surrSelf = 0x10000
)

// IsSurrogate reports whether r lies in the UTF-16 surrogate range.
func IsSurrogate(r rune) bool {
	return surrHigh <= r && r < surrEnd
}

// ValidRune reports whether r is a Unicode scalar value.
func ValidRune(r rune) bool {
	return 0 <= r && r <= MaxRune && !IsSurrogate(r)
}

// UnitSize returns the size in bytes of one storage unit of U.
func UnitSize[U Unit]() int {
	var u U
	return int(unsafe.Sizeof(u))
}

// Select returns Raw[U] when cfg requests the ASCII-only fast path and enc
// otherwise.
func Select[U Unit](cfg *unitext.Config, enc Encoding[U]) Encoding[U] {
	if cfg != nil && cfg.ASCIIOnly {
		return Raw[U]{}
	}
	return enc
}
