// Package format renders printf-style templates into buffers of any
// encoding.
//
// Arguments are typed values of a closed set of kinds, so a directive can be
// checked against its argument instead of reinterpreting memory:
//
//	Directive        Argument kind
//	──────────────────────────────────
//	%d %i            Int
//	%u               Uint
//	%x %X %o         Int or Uint
//	%f %e %E %g %G   Float
//	%s               String
//	%c               Rune
//	%%               none
//
// Flags (-, +, space, 0, #), a width and a precision may appear between the
// percent sign and the verb.
//
// # Encodings
//
// Rendering always happens natively in UTF-8. Format decodes a template of
// another encoding into UTF-8, renders it, and transcodes the result into the
// destination encoding. This double conversion costs time on non-UTF-8
// buffers; it keeps a single formatter for every encoding.
//
// Format follows the two-phase sizing contract of the strs package: a nil
// destination returns the required capacity.
package format
