// Package codec implements the codepoint decode/encode layer.
//
// Every encoding implements the same capability:
//
//	Decode(buf) (r, n)   one codepoint from the start of buf, n units consumed
//	Width(r) n           units needed to store r
//	Encode(dst, r) n     writes r, returns units written
//
// The encoding of a buffer is a type-level property: UTF8 works on []uint8,
// UTF16 on []uint16, UTF32 on []uint32. Raw treats every unit as one
// codepoint and is selected when Config.ASCIIOnly is set.
//
// # Decode Failures
//
// Decode signals both end-of-string and malformed input by returning (0, 0).
// The cursor does not advance in either case. Callers that need to tell the
// two apart check whether units remain before the terminator:
//
//	r, n := enc.Decode(buf)
//	if n == 0 && len(buf) > 0 && buf[0] != 0 {
//	    // malformed or truncated sequence
//	}
//
// Rejected input:
//
//	UTF-8   illegal lead bytes (80-C1, F5-FF), bad continuation bytes,
//	        overlong forms, encoded surrogates, truncated sequences
//	UTF-16  high surrogate not followed by a low surrogate, lone low surrogate
//	UTF-32  surrogates and values above 0x10FFFF
//
// # Widths
//
//	Codepoint range      UTF-8  UTF-16  UTF-32
//	─────────────────────────────────────────────
//	U+0000..U+007F       1      1       1
//	U+0080..U+07FF       2      1       1
//	U+0800..U+FFFF       3      1       1
//	U+10000..U+10FFFF    4      2       1
//
// Width returns 0 for surrogates and values outside the Unicode range; Encode
// refuses them and also refuses to write past the end of dst.
package codec
