package strs

import (
	"github.com/wippyai/unitext/codec"
	"github.com/wippyai/unitext/span"
)

// CopySize returns the capacity needed to copy src, terminator included.
func CopySize[U codec.Unit](src []U) int {
	return Length(src) + 1
}

// Copy copies src into dst and terminates it. A nil dst performs the size
// query only. When dst is too small the copy stops at the last codepoint
// boundary that leaves room for the terminator. The return value is always
// the capacity required for the full copy.
func Copy[U codec.Unit](enc codec.Encoding[U], dst, src []U) int {
	units := span.New(src).Units()
	required := len(units) + 1
	if dst == nil || len(dst) == 0 {
		return required
	}

	if required <= len(dst) {
		copy(dst, units)
		dst[len(units)] = 0
		return required
	}

	n := boundary(enc, units, len(dst)-1)
	copy(dst, units[:n])
	dst[n] = 0
	return required
}

// boundary returns the largest codepoint boundary in units not beyond limit.
func boundary[U codec.Unit](enc codec.Encoding[U], units []U, limit int) int {
	c := span.Start(units)
	for {
		r, next := c.Next(enc)
		if r == 0 || next.Pos() > limit {
			return c.Pos()
		}
		c = next
	}
}

// AppendSize returns the capacity needed to store dst's current string
// followed by src, terminator included.
func AppendSize[U codec.Unit](dst, src []U) int {
	return Length(dst) + CopySize(src)
}

// Append copies src after the string already stored in dst. The existing
// terminator is searched within len(dst); if there is none the last unit
// of dst is treated as the terminator position. A nil dst behaves like an
// empty one and only reports the size. The return value is the capacity
// required for the whole concatenation.
func Append[U codec.Unit](enc codec.Encoding[U], dst, src []U) int {
	if dst == nil || len(dst) == 0 {
		return CopySize(src)
	}

	existing := Length(dst)
	if existing == len(dst) {
		existing = len(dst) - 1
	}
	return existing + Copy(enc, dst[existing:], src)
}

// Convert decodes src and re-encodes it into dst's encoding. The sizing and
// truncation rules are those of Copy. Decoding stops at the terminator or
// the first malformed sequence; codepoints the target encoding cannot
// represent are dropped.
func Convert[D, S codec.Unit](de codec.Encoding[D], dst []D, se codec.Encoding[S], src []S) int {
	required := 1
	for _, r := range All(se, src) {
		required += de.Width(r)
	}
	if dst == nil || len(dst) == 0 {
		return required
	}

	limit := len(dst) - 1
	pos := 0
	for _, r := range All(se, src) {
		w := de.Width(r)
		if pos+w > limit {
			break
		}
		pos += de.Encode(dst[pos:], r)
	}
	dst[pos] = 0
	return required
}
