// Package unitext provides encoding-agnostic text primitives for Go.
//
// The library decodes and re-encodes Unicode text across UTF-8, UTF-16,
// UTF-32 and the platform wide encoding, and builds generic string
// algorithms and a path normalization engine on top of that single
// decode/encode abstraction. One algorithm implementation serves every
// encoding a caller's buffer may use.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	unitext/             Root package with Config, Platform, Memory and Allocator
//	├── codec/           Codepoint decode/width/encode per encoding
//	├── span/            Spans and cursors over []U buffers
//	├── strs/            Length, CharCount, Compare, Equal, Copy, Append, Convert
//	├── format/          Typed-argument formatting into any encoding
//	├── bom/             Byte-order mark helpers and BOM-aware readers
//	├── paths/           Absolute/relative path normalization
//	├── wasmmem/         Encoded strings in WebAssembly linear memory
//	├── errors/          Structured error types
//	└── cmd/unitext/     Command line tool and interactive explorer
//
// # Quick Start
//
// Count characters and convert between encodings:
//
//	src := []byte("héllo\x00")
//	n := strs.CharCount(codec.UTF8{}, src, span.Unknown) // 5
//
//	size := strs.Convert(codec.UTF16{}, nil, codec.UTF8{}, src)
//	dst := make([]uint16, size)
//	strs.Convert(codec.UTF16{}, dst, codec.UTF8{}, src)
//
// Resolve a relative path against a base:
//
//	eng, err := paths.New[uint8](codec.UTF8{}, &unitext.Config{Platform: unitext.PlatformWindows})
//	size, err := eng.Absolute(nil, path, base)
//	dst := make([]byte, size)
//	_, err = eng.Absolute(dst, path, base)
//
// # Two-Phase Sizing
//
// Every operation that writes into a destination accepts a nil destination.
// With nil it returns the exact number of units, terminator included, that
// a subsequent call with a buffer of that size will write. Both passes run
// the same code and produce identical results for identical inputs.
//
// # Terminators
//
// Buffers are plain slices. A zero unit inside the slice terminates the
// string; without one the slice end does. Codepoint 0 is therefore never
// part of a string, and 0xFEFF is reserved for byte-order marks.
//
// # Thread Safety
//
// All operations are pure functions over caller-supplied buffers and are
// safe for concurrent use as long as callers do not share destination
// buffers. Package loggers must be set before concurrent use.
package unitext
