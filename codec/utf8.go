package codec

// UTF8 encodes codepoints as 1 to 4 bytes.
type UTF8 struct{}

const (
	contLo = 0x80
	contHi = 0xBF
)

func (UTF8) Name() string { return "utf-8" }

// Decode implements Encoding.
func (UTF8) Decode(buf []uint8) (rune, int) {
	if len(buf) == 0 || buf[0] == 0 {
		return 0, 0
	}

	b0 := buf[0]
	if b0 < 0x80 {
		return rune(b0), 1
	}

	// size and legal range of the first continuation byte per lead byte
	var size int
	lo, hi := uint8(contLo), uint8(contHi)
	switch {
	case b0 >= 0xC2 && b0 <= 0xDF:
		size = 2
	case b0 == 0xE0:
		size, lo = 3, 0xA0
	case b0 == 0xED:
		size, hi = 3, 0x9F
	case b0 >= 0xE1 && b0 <= 0xEF:
		size = 3
	case b0 == 0xF0:
		size, lo = 4, 0x90
	case b0 >= 0xF1 && b0 <= 0xF3:
		size = 4
	case b0 == 0xF4:
		size, hi = 4, 0x8F
	default:
		return 0, 0
	}

	if len(buf) < size {
		return 0, 0
	}
	if b1 := buf[1]; b1 < lo || b1 > hi {
		return 0, 0
	}
	for i := 2; i < size; i++ {
		if buf[i] < contLo || buf[i] > contHi {
			return 0, 0
		}
	}

	switch size {
	case 2:
		return rune(b0&0x1F)<<6 | rune(buf[1]&0x3F), 2
	case 3:
		return rune(b0&0x0F)<<12 | rune(buf[1]&0x3F)<<6 | rune(buf[2]&0x3F), 3
	default:
		return rune(b0&0x07)<<18 | rune(buf[1]&0x3F)<<12 | rune(buf[2]&0x3F)<<6 | rune(buf[3]&0x3F), 4
	}
}

// Width implements Encoding.
func (UTF8) Width(r rune) int {
	switch {
	case r < 0:
		return 0
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case IsSurrogate(r):
		return 0
	case r < surrSelf:
		return 3
	case r <= MaxRune:
		return 4
	default:
		return 0
	}
}

// Encode implements Encoding.
func (e UTF8) Encode(dst []uint8, r rune) int {
	w := e.Width(r)
	if w == 0 || len(dst) < w {
		return 0
	}
	switch w {
	case 1:
		dst[0] = uint8(r)
	case 2:
		dst[0] = 0xC0 | uint8(r>>6)
		dst[1] = 0x80 | uint8(r)&0x3F
	case 3:
		dst[0] = 0xE0 | uint8(r>>12)
		dst[1] = 0x80 | uint8(r>>6)&0x3F
		dst[2] = 0x80 | uint8(r)&0x3F
	default:
		dst[0] = 0xF0 | uint8(r>>18)
		dst[1] = 0x80 | uint8(r>>12)&0x3F
		dst[2] = 0x80 | uint8(r>>6)&0x3F
		dst[3] = 0x80 | uint8(r)&0x3F
	}
	return w
}
