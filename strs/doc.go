// Package strs implements string algorithms written once against
// codec.Encoding, so the same code serves UTF-8, UTF-16, UTF-32 and wide
// buffers, and can mix encodings where it compares decoded codepoints.
//
// # Length vs CharCount
//
//	Length      storage units before the terminator, no decoding
//	CharCount   codepoints, decoded one at a time
//
// For "héllo" in UTF-8, Length is 6 and CharCount is 5.
//
// # Two-Phase Sizing
//
// Copy, Append and Convert accept a nil destination and return the capacity,
// terminator included, needed for the complete result. With a destination
// they write at most len(dst) units, always terminate, never split a
// codepoint, and return the same required capacity. A return value larger
// than len(dst) therefore means the output was truncated:
//
//	n := strs.Convert(codec.UTF16{}, nil, codec.UTF8{}, src)
//	dst := make([]uint16, n)
//	strs.Convert(codec.UTF16{}, dst, codec.UTF8{}, src)
//
// # Comparison
//
// Compare and Equal decode both sides in lock-step and never look at raw
// units, so the two sides may use different encodings. The terminator
// compares lower than every codepoint. Case-insensitive equality folds only
// A-Z; there is no locale or full Unicode case folding.
package strs
