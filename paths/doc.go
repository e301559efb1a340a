// Package paths converts between absolute and relative filesystem paths held
// in encoded buffers.
//
// Paths are purely textual; nothing here touches a filesystem. An Engine
// binds an encoding to a unitext.Config, which selects the platform rules:
//
//	Platform   Separators in   Separator out   Absolute when
//	────────────────────────────────────────────────────────────────────
//	posix      /               /               leading /
//	windows    / and \         \               C: prefix or \\ network prefix
//
// Every producing operation follows the two-phase sizing contract: pass a nil
// destination to learn the required capacity, then call again with a buffer
// of that size.
//
// # Splitting
//
// Split breaks a path into components. Runs of separators collapse, except
// that a trailing separator leaves a final empty component so callers can
// tell a directory from a file. A leading separator run is kept as the list
// root. The component count is bounded by Config.MaxComponents; exceeding it
// is an error.
//
// # Conversion
//
// Absolute resolves a relative path against an absolute base. ".." removes
// the previous component and fails with an above-root error when nothing is
// left to remove; "." is kept literally. Relative produces the path that
// leads from base to path, using one ".." per base component past the common
// prefix. Both assume canonical inputs without literal ".." components.
package paths
