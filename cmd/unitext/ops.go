package main

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/wippyai/unitext"
	"github.com/wippyai/unitext/bom"
	"github.com/wippyai/unitext/codec"
	"github.com/wippyai/unitext/errors"
	"github.com/wippyai/unitext/format"
	"github.com/wippyai/unitext/paths"
	"github.com/wippyai/unitext/span"
	"github.com/wippyai/unitext/strs"
)

// operation describes one command and the operands it takes.
type operation struct {
	name     string
	help     string
	operands []string
	variadic bool
}

var operations = []operation{
	{name: "count", help: "count codepoints", operands: []string{"text"}},
	{name: "length", help: "count storage units", operands: []string{"text"}},
	{name: "compare", help: "order two strings", operands: []string{"a", "b"}},
	{name: "equal", help: "test two strings for equality", operands: []string{"a", "b"}},
	{name: "absolute", help: "resolve a path against a base", operands: []string{"path", "base"}},
	{name: "relative", help: "path leading from base to path", operands: []string{"path", "base"}},
	{name: "format", help: "render a template", operands: []string{"template", "args"}, variadic: true},
	{name: "ext", help: "file extension", operands: []string{"path"}},
	{name: "bom", help: "attach a byte order mark and dump the bytes", operands: []string{"text"}},
}

func lookup(name string) (operation, bool) {
	for _, op := range operations {
		if op.name == name {
			return op, true
		}
	}
	return operation{}, false
}

// settings are the flags shared by every operation.
type settings struct {
	encoding string
	fold     bool
	config   unitext.Config
}

// execute runs op over args in the configured encoding.
func execute(s settings, name string, args []string) (string, error) {
	op, ok := lookup(name)
	if !ok {
		return "", errors.Unsupported(errors.PhaseCommand, "operation "+name)
	}
	if len(args) < len(op.operands) && !(op.variadic && len(args) >= len(op.operands)-1) {
		return "", errors.New(errors.PhaseCommand, errors.KindArgMissing).
			Path(op.name).
			Detail("want %s", strings.Join(op.operands, " ")).
			Build()
	}
	if len(args) > len(op.operands) && !op.variadic {
		return "", errors.New(errors.PhaseCommand, errors.KindArgExtra).
			Path(op.name).
			Detail("want %s", strings.Join(op.operands, " ")).
			Build()
	}

	switch s.encoding {
	case "utf8", "utf-8":
		return run[uint8](s, codec.UTF8{}, name, args)
	case "utf16", "utf-16":
		return run[uint16](s, codec.UTF16{}, name, args)
	case "utf32", "utf-32":
		return run[uint32](s, codec.UTF32{}, name, args)
	case "wide":
		return run[codec.WideUnit](s, codec.Wide, name, args)
	default:
		return "", errors.Unsupported(errors.PhaseCommand, "encoding "+s.encoding)
	}
}

func run[U codec.Unit](s settings, base codec.Encoding[U], name string, args []string) (string, error) {
	cfg := s.config
	// Operands are always encoded with base. Under ASCIIOnly only the
	// reading side switches to Raw.
	enc := codec.Select(&cfg, base)
	text := func(i int) []U { return span.FromString[U](base, args[i]) }

	switch name {
	case "count":
		return strconv.Itoa(strs.CharCount(enc, text(0), span.Unknown)), nil

	case "length":
		return strconv.Itoa(strs.Length(text(0))), nil

	case "compare":
		return strconv.Itoa(strs.Compare(enc, text(0), enc, text(1))), nil

	case "equal":
		return strconv.FormatBool(strs.Equal(enc, text(0), enc, text(1), !s.fold)), nil

	case "absolute", "relative":
		e, err := paths.New(base, &cfg)
		if err != nil {
			return "", err
		}
		convert := e.Absolute
		if name == "relative" {
			convert = e.Relative
		}
		size, err := convert(nil, text(0), text(1))
		if err != nil {
			return "", err
		}
		dst := make([]U, size)
		if _, err := convert(dst, text(0), text(1)); err != nil {
			return "", err
		}
		return span.String(base, dst), nil

	case "ext":
		e, err := paths.New(base, &cfg)
		if err != nil {
			return "", err
		}
		dst := make([]U, e.Ext(nil, text(0)))
		e.Ext(dst, text(0))
		return span.String(base, dst), nil

	case "format":
		fargs := make([]format.Arg, 0, len(args)-1)
		for _, a := range args[1:] {
			arg, err := parseArg(a)
			if err != nil {
				return "", err
			}
			fargs = append(fargs, arg)
		}
		size, err := format.Size(enc, text(0), fargs...)
		if err != nil {
			return "", err
		}
		dst := make([]U, size)
		if _, err := format.Format(enc, dst, text(0), fargs...); err != nil {
			return "", err
		}
		return span.String(base, dst), nil

	case "bom":
		src := text(0)
		dst := make([]U, len(src))
		copy(dst, src)
		if size := bom.Attach(enc, dst); size > len(dst) {
			dst = make([]U, size)
			copy(dst, src)
			bom.Attach(enc, dst)
		}
		return hex.EncodeToString(serialize(dst[:strs.Length(dst)])), nil
	}
	return "", errors.Unsupported(errors.PhaseCommand, "operation "+name)
}

// serialize returns the little-endian bytes of units.
func serialize[U codec.Unit](units []U) []byte {
	switch v := any(units).(type) {
	case []uint8:
		return v
	case []uint16:
		return bom.Bytes16(v, bom.UTF16LE.ByteOrder())
	case []uint32:
		return bom.Bytes32(v, bom.UTF32LE.ByteOrder())
	}
	return nil
}

// parseArg reads a typed format argument written as kind:value. A bare value
// is a string.
func parseArg(s string) (format.Arg, error) {
	kind, value, ok := strings.Cut(s, ":")
	if !ok {
		return format.S(s), nil
	}

	bad := func(err error) (format.Arg, error) {
		return format.Arg{}, errors.New(errors.PhaseCommand, errors.KindInvalidInput).
			Path("arg", s).
			Cause(err).
			Detail("cannot parse %s value", kind).
			Build()
	}

	switch kind {
	case "int", "i":
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return bad(err)
		}
		return format.I(v), nil
	case "uint", "u":
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return bad(err)
		}
		return format.U(v), nil
	case "float", "f":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return bad(err)
		}
		return format.F(v), nil
	case "rune", "c":
		r := []rune(value)
		if len(r) != 1 {
			return format.Arg{}, errors.InvalidInput(errors.PhaseCommand, "rune argument must be one codepoint")
		}
		return format.R(r[0]), nil
	case "str", "s":
		return format.S(value), nil
	default:
		return format.S(s), nil
	}
}
