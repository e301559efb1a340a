// Package errors defines the structured error returned by unitext packages.
//
// An Error names the Phase that failed (decode, format, path, memory and so
// on) and the Kind of failure. Two errors match under errors.Is when both
// agree, so callers test for a category without comparing messages:
//
//	_, err := eng.Absolute(dst, path, base)
//	if errors.Is(err, &uerrors.Error{Phase: uerrors.PhasePath, Kind: uerrors.KindAboveRoot}) {
//		// path climbs out of base
//	}
//
// Errors are assembled with a Builder or one of the constructors:
//
//	err := errors.New(errors.PhaseFormat, errors.KindTypeMismatch).
//		Path("directive", "2").
//		Detail("%%d expects an integer argument").
//		Build()
package errors
