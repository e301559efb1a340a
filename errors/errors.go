package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase names the stage of text processing that failed.
type Phase string

const (
	PhaseDecode  Phase = "decode"  // units to codepoints
	PhaseEncode  Phase = "encode"  // codepoints to units
	PhaseSize    Phase = "size"    // two-phase size query
	PhaseFormat  Phase = "format"  // template rendering
	PhasePath    Phase = "path"    // path normalization
	PhaseBOM     Phase = "bom"     // byte-order mark handling
	PhaseMemory  Phase = "memory"  // linear memory access
	PhaseConfig  Phase = "config"  // configuration validation
	PhaseCommand Phase = "command" // command line handling
)

// Kind is the category of failure.
type Kind string

const (
	KindTypeMismatch     Kind = "type_mismatch"
	KindOutOfBounds      Kind = "out_of_bounds"
	KindInvalidData      Kind = "invalid_data"
	KindUnsupported      Kind = "unsupported"
	KindAllocation       Kind = "allocation"
	KindOverflow         Kind = "overflow"
	KindAboveRoot        Kind = "above_root"
	KindCapacityExceeded Kind = "capacity_exceeded"
	KindArgMissing       Kind = "arg_missing"
	KindArgExtra         Kind = "arg_extra"
	KindInvalidInput     Kind = "invalid_input"
)

// Error is the error type returned by every unitext package.
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Encoding string
	Detail   string
	Path     []string
}

// Error renders "[phase] kind at a.b: encoding e - detail (caused by: ...)",
// leaving out the parts that are not set.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Phase, e.Kind)

	if len(e.Path) > 0 {
		b.WriteString(" at " + strings.Join(e.Path, "."))
	}

	sep := ": "
	if e.Encoding != "" {
		b.WriteString(sep + "encoding " + e.Encoding)
		sep = " - "
	}
	if e.Detail != "" {
		b.WriteString(sep + e.Detail)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, " (caused by: %v)", e.Cause)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error with the same Phase and Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Phase == t.Phase && e.Kind == t.Kind
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if !stderrors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

// Builder assembles an Error field by field.
type Builder struct {
	err Error
}

// New starts an error of the given phase and kind.
func New(phase Phase, kind Kind) *Builder {
	return &Builder{err: Error{Phase: phase, Kind: kind}}
}

func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

func (b *Builder) Encoding(name string) *Builder {
	b.err.Encoding = name
	return b
}

// Value records the offending value or position.
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the message. msg is a format string only when args are given.
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	b.err.Detail = msg
	return b
}

// Build returns the error. The builder must not be reused.
func (b *Builder) Build() *Error {
	return &b.err
}

// TypeMismatch reports an argument whose kind does not suit its directive.
func TypeMismatch(phase Phase, path []string, want, got string) *Error {
	return New(phase, KindTypeMismatch).
		Path(path...).
		Detail("expected %s argument, got %s", want, got).
		Build()
}

// InvalidSequence reports units that do not decode. offset is in units.
func InvalidSequence(phase Phase, encoding string, offset int, units any) *Error {
	return New(phase, KindInvalidData).
		Encoding(encoding).
		Value(offset).
		Detail("invalid sequence at unit %d: %x", offset, units).
		Build()
}

func AllocationFailed(phase Phase, size, align uint32) *Error {
	return New(phase, KindAllocation).
		Detail("failed to allocate %d bytes (align %d)", size, align).
		Build()
}

// AboveRoot reports a ".." at component index that has nothing left to
// remove. path holds the components of the offending path.
func AboveRoot(path []string, index int) *Error {
	return New(PhasePath, KindAboveRoot).
		Path(path...).
		Value(index).
		Detail("component %d ascends above the root", index).
		Build()
}

// CapacityExceeded reports a fixed bound that input went past.
func CapacityExceeded(phase Phase, what string, limit int) *Error {
	return New(phase, KindCapacityExceeded).
		Value(limit).
		Detail("%s exceeds limit of %d", what, limit).
		Build()
}

func Unsupported(phase Phase, what string) *Error {
	return New(phase, KindUnsupported).Detail(what).Build()
}

func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return New(phase, KindOutOfBounds).
		Path(path...).
		Value(index).
		Detail("index %d out of bounds (length %d)", index, length).
		Build()
}

// Overflow reports a value that does not fit target.
func Overflow(phase Phase, path []string, value any, target string) *Error {
	return New(phase, KindOverflow).
		Path(path...).
		Value(value).
		Detail("value %v overflows %s", value, target).
		Build()
}

func InvalidData(phase Phase, path []string, detail string) *Error {
	return New(phase, KindInvalidData).Path(path...).Detail(detail).Build()
}

func InvalidInput(phase Phase, detail string) *Error {
	return New(phase, KindInvalidInput).Detail(detail).Build()
}

// Wrap attaches phase and kind to an error from outside the library.
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return New(phase, kind).Cause(cause).Detail(detail).Build()
}
