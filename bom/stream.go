package bom

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"github.com/wippyai/unitext/errors"
)

// Charset names a byte serialization of Unicode text.
type Charset int

const (
	UTF8 Charset = iota
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

// String returns the charset name.
func (c Charset) String() string {
	switch c {
	case UTF8:
		return "utf-8"
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	case UTF32LE:
		return "utf-32le"
	case UTF32BE:
		return "utf-32be"
	default:
		return "unknown"
	}
}

// ParseCharset maps a charset name to a Charset.
func ParseCharset(name string) (Charset, error) {
	switch name {
	case "utf8", "utf-8":
		return UTF8, nil
	case "utf16", "utf-16", "utf16le", "utf-16le":
		return UTF16LE, nil
	case "utf16be", "utf-16be":
		return UTF16BE, nil
	case "utf32", "utf-32", "utf32le", "utf-32le":
		return UTF32LE, nil
	case "utf32be", "utf-32be":
		return UTF32BE, nil
	default:
		return 0, errors.Unsupported(errors.PhaseBOM, "charset "+name)
	}
}

// ByteOrder returns the unit byte order of the charset.
func (c Charset) ByteOrder() binary.ByteOrder {
	if c == UTF16BE || c == UTF32BE {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (c Charset) encoding() encoding.Encoding {
	switch c {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case UTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	case UTF32BE:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	default:
		return unicode.UTF8
	}
}

// marks lists the byte order marks NewReader recognizes. The UTF-32LE mark
// starts with the UTF-16LE one and must be tried first.
var marks = []struct {
	prefix  []byte
	charset Charset
}{
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, UTF32BE},
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, UTF32LE},
	{[]byte{0xEF, 0xBB, 0xBF}, UTF8},
	{[]byte{0xFE, 0xFF}, UTF16BE},
	{[]byte{0xFF, 0xFE}, UTF16LE},
}

// Sniff returns the charset named by a byte order mark at the start of b and
// the length of the mark. Without a mark it returns fallback and 0.
func Sniff(b []byte, fallback Charset) (Charset, int) {
	for _, m := range marks {
		if bytes.HasPrefix(b, m.prefix) {
			return m.charset, len(m.prefix)
		}
	}
	return fallback, 0
}

// NewReader returns a reader that decodes r into UTF-8. A leading byte order
// mark selects the charset and is consumed; without one, fallback is used.
func NewReader(r io.Reader, fallback Charset) io.Reader {
	return &reader{src: bufio.NewReader(r), fallback: fallback}
}

type reader struct {
	src      *bufio.Reader
	decoded  io.Reader
	fallback Charset
}

func (r *reader) Read(p []byte) (int, error) {
	if r.decoded == nil {
		head, err := r.src.Peek(4)
		if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
			return 0, errors.Wrap(errors.PhaseBOM, errors.KindInvalidInput, err, "read byte order mark")
		}
		charset, n := Sniff(head, r.fallback)
		if _, err := r.src.Discard(n); err != nil {
			return 0, errors.Wrap(errors.PhaseBOM, errors.KindInvalidInput, err, "skip byte order mark")
		}
		r.decoded = transform.NewReader(r.src, charset.encoding().NewDecoder())
	}
	return r.decoded.Read(p)
}

// Units16 splits b into 16-bit units in the given byte order. A trailing odd
// byte is ignored.
func Units16(b []byte, order binary.ByteOrder) []uint16 {
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = order.Uint16(b[2*i:])
	}
	return out
}

// Units32 splits b into 32-bit units in the given byte order. Trailing bytes
// that do not form a whole unit are ignored.
func Units32(b []byte, order binary.ByteOrder) []uint32 {
	out := make([]uint32, len(b)/4)
	for i := range out {
		out[i] = order.Uint32(b[4*i:])
	}
	return out
}

// Bytes16 serializes units in the given byte order.
func Bytes16(units []uint16, order binary.ByteOrder) []byte {
	out := make([]byte, 2*len(units))
	for i, u := range units {
		order.PutUint16(out[2*i:], u)
	}
	return out
}

// Bytes32 serializes units in the given byte order.
func Bytes32(units []uint32, order binary.ByteOrder) []byte {
	out := make([]byte, 4*len(units))
	for i, u := range units {
		order.PutUint32(out[4*i:], u)
	}
	return out
}
