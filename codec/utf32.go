package codec

// UTF32 stores each codepoint in one unit.
type UTF32 struct{}

func (UTF32) Name() string { return "utf-32" }

// Decode implements Encoding.
func (UTF32) Decode(buf []uint32) (rune, int) {
	if len(buf) == 0 || buf[0] == 0 {
		return 0, 0
	}
	if buf[0] > MaxRune {
		return 0, 0
	}
	r := rune(buf[0])
	if IsSurrogate(r) {
		return 0, 0
	}
	return r, 1
}

// Width implements Encoding.
func (UTF32) Width(r rune) int {
	if !ValidRune(r) {
		return 0
	}
	return 1
}

// Encode implements Encoding.
func (e UTF32) Encode(dst []uint32, r rune) int {
	if e.Width(r) == 0 || len(dst) < 1 {
		return 0
	}
	dst[0] = uint32(r)
	return 1
}
