package codec

import (
	"math"
	"strconv"
)

// Raw maps every unit to exactly one codepoint. It is the ASCII-only fast
// path: multi-unit sequences are not assembled, so it is only correct for
// text whose codepoints fit in a single unit.
type Raw[U Unit] struct{}

func (Raw[U]) Name() string { return "raw-" + strconv.Itoa(UnitSize[U]()*8) }

// Decode implements Encoding. A 32-bit unit that does not fit in a rune
// decodes as malformed.
func (Raw[U]) Decode(buf []U) (rune, int) {
	if len(buf) == 0 || buf[0] == 0 || uint64(buf[0]) > math.MaxInt32 {
		return 0, 0
	}
	return rune(buf[0]), 1
}

// Width implements Encoding.
func (Raw[U]) Width(r rune) int {
	if r < 0 || uint32(r) > uint32(^U(0)) {
		return 0
	}
	return 1
}

// Encode implements Encoding.
func (e Raw[U]) Encode(dst []U, r rune) int {
	if e.Width(r) == 0 || len(dst) < 1 {
		return 0
	}
	dst[0] = U(r)
	return 1
}
