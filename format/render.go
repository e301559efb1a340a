package format

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/wippyai/unitext/codec"
	"github.com/wippyai/unitext/errors"
)

// Render formats template with args natively in UTF-8.
func Render(template string, args ...Arg) (string, error) {
	var b strings.Builder
	b.Grow(len(template))

	next := 0
	directive := 0
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}

		prefix, verb, end, err := parseDirective(template, i)
		if err != nil {
			return "", err
		}
		i = end

		if verb == '%' {
			b.WriteByte('%')
			continue
		}

		directive++
		path := []string{"directive", strconv.Itoa(directive)}
		if next >= len(args) {
			return "", errors.New(errors.PhaseFormat, errors.KindArgMissing).
				Path(path...).
				Detail("%%%c has no argument", verb).
				Build()
		}
		arg := args[next]
		next++

		goVerb, err := checkVerb(verb, arg, path)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, prefix+string(goVerb), arg.value())
	}

	if next < len(args) {
		return "", errors.New(errors.PhaseFormat, errors.KindArgExtra).
			Detail("%d unused arguments", len(args)-next).
			Value(len(args) - next).
			Build()
	}
	return b.String(), nil
}

// parseDirective reads the directive starting at template[start] == '%'.
// It returns the fmt prefix (percent, flags, width, precision), the verb and
// the index of the verb.
func parseDirective(template string, start int) (string, byte, int, error) {
	i := start + 1
	for i < len(template) && strings.IndexByte("-+ 0#", template[i]) >= 0 {
		i++
	}
	for i < len(template) && isDigit(template[i]) {
		i++
	}
	if i < len(template) && template[i] == '.' {
		i++
		for i < len(template) && isDigit(template[i]) {
			i++
		}
	}
	if i >= len(template) {
		return "", 0, 0, errors.InvalidData(errors.PhaseFormat, []string{"offset", strconv.Itoa(start)},
			"template ends inside a directive")
	}
	return template[start:i], template[i], i, nil
}

func checkVerb(verb byte, arg Arg, path []string) (byte, error) {
	var ok bool
	goVerb := verb
	switch verb {
	case 'd', 'i':
		ok, goVerb = arg.kind == KindInt, 'd'
	case 'u':
		ok, goVerb = arg.kind == KindUint, 'd'
	case 'x', 'X', 'o':
		ok = arg.kind == KindInt || arg.kind == KindUint
	case 'f', 'e', 'E', 'g', 'G':
		ok = arg.kind == KindFloat
	case 's':
		ok = arg.kind == KindString
	case 'c':
		ok = arg.kind == KindRune
	default:
		return 0, errors.New(errors.PhaseFormat, errors.KindUnsupported).
			Path(path...).
			Detail("unknown verb %q", verb).
			Build()
	}
	if !ok {
		return 0, errors.TypeMismatch(errors.PhaseFormat, path, expected(verb), arg.kind.String())
	}
	return goVerb, checkValue(arg, path)
}

// checkValue rejects text that cannot be carried into a terminated buffer.
func checkValue(arg Arg, path []string) error {
	switch arg.kind {
	case KindString:
		if !utf8.ValidString(arg.s) {
			return errors.InvalidData(errors.PhaseFormat, path, "string argument is not valid UTF-8")
		}
		if i := strings.IndexByte(arg.s, 0); i >= 0 {
			return errors.InvalidData(errors.PhaseFormat, path, "string argument has NUL at byte "+strconv.Itoa(i))
		}
	case KindRune:
		if arg.r == 0 || !codec.ValidRune(arg.r) {
			return errors.New(errors.PhaseFormat, errors.KindInvalidData).
				Path(path...).
				Value(arg.r).
				Detail("invalid codepoint %#x", arg.r).
				Build()
		}
	}
	return nil
}

func expected(verb byte) string {
	switch verb {
	case 'd', 'i':
		return KindInt.String()
	case 'u':
		return KindUint.String()
	case 'x', 'X', 'o':
		return "int or uint"
	case 's':
		return KindString.String()
	case 'c':
		return KindRune.String()
	default:
		return KindFloat.String()
	}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
