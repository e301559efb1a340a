package format

import (
	"github.com/wippyai/unitext/codec"
	"github.com/wippyai/unitext/errors"
	"github.com/wippyai/unitext/span"
	"github.com/wippyai/unitext/strs"
)

// Format renders template with args into dst in the encoding enc. A nil dst
// performs the size query. The result is truncated at a codepoint boundary
// when dst is too small; the return value is always the required capacity.
func Format[U codec.Unit](enc codec.Encoding[U], dst, template []U, args ...Arg) (int, error) {
	native, err := toNative(enc, template)
	if err != nil {
		return 0, err
	}

	out, err := Render(native, args...)
	if err != nil {
		return 0, err
	}

	if u8, ok := any(dst).([]uint8); ok {
		if _, isUTF8 := any(enc).(codec.UTF8); isUTF8 {
			return strs.Copy(codec.UTF8{}, u8, terminated(out)), nil
		}
	}
	return strs.Convert(enc, dst, codec.UTF8{}, terminated(out)), nil
}

// Size returns the capacity Format needs for template and args.
func Size[U codec.Unit](enc codec.Encoding[U], template []U, args ...Arg) (int, error) {
	return Format(enc, nil, template, args...)
}

func toNative[U codec.Unit](enc codec.Encoding[U], template []U) (string, error) {
	c := span.Start(template)
	for {
		r, next := c.Next(enc)
		if r == 0 {
			break
		}
		c = next
	}
	if !c.AtEnd() {
		return "", errors.InvalidSequence(errors.PhaseFormat, enc.Name(), c.Pos(), c.Rest()[:1])
	}
	return span.String(enc, template), nil
}

func terminated(s string) []uint8 {
	out := make([]uint8, len(s)+1)
	copy(out, s)
	return out
}
