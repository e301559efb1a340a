package codec

// WideFor resolves the wide encoding for U by unit size: 16-bit units use
// UTF-16 and 32-bit units use UTF-32. It reports false for 8-bit units and
// for named unit types.
func WideFor[U Unit]() (Encoding[U], bool) {
	switch UnitSize[U]() {
	case 2:
		enc, ok := any(UTF16{}).(Encoding[U])
		return enc, ok
	case 4:
		enc, ok := any(UTF32{}).(Encoding[U])
		return enc, ok
	default:
		return nil, false
	}
}
