//go:build windows

package codec

// WideUnit is the platform wide character unit.
type WideUnit = uint16

// Wide is the platform wide encoding.
var Wide Encoding[WideUnit] = UTF16{}
