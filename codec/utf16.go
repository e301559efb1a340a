package codec

// UTF16 encodes codepoints as one unit or a surrogate pair.
type UTF16 struct{}

func (UTF16) Name() string { return "utf-16" }

// Decode implements Encoding.
func (UTF16) Decode(buf []uint16) (rune, int) {
	if len(buf) == 0 || buf[0] == 0 {
		return 0, 0
	}

	u0 := rune(buf[0])
	switch {
	case u0 < surrHigh || u0 >= surrEnd:
		return u0, 1
	case u0 >= surrLow:
		// lone low surrogate
		return 0, 0
	}

	if len(buf) < 2 {
		return 0, 0
	}
	u1 := rune(buf[1])
	if u1 < surrLow || u1 >= surrEnd {
		return 0, 0
	}
	return (u0-surrHigh)<<10 + (u1 - surrLow) + surrSelf, 2
}

// Width implements Encoding.
func (UTF16) Width(r rune) int {
	switch {
	case r < 0, IsSurrogate(r), r > MaxRune:
		return 0
	case r < surrSelf:
		return 1
	default:
		return 2
	}
}

// Encode implements Encoding.
func (e UTF16) Encode(dst []uint16, r rune) int {
	w := e.Width(r)
	if w == 0 || len(dst) < w {
		return 0
	}
	if w == 1 {
		dst[0] = uint16(r)
		return 1
	}
	r -= surrSelf
	dst[0] = uint16(surrHigh + (r>>10)&0x3FF)
	dst[1] = uint16(surrLow + r&0x3FF)
	return 2
}
