package unitext

import (
	"runtime"

	"github.com/wippyai/unitext/errors"
)

// Platform selects the path conventions used by the path engine.
type Platform int

const (
	// PlatformPOSIX uses '/' as the only separator; absolute paths start with '/'.
	PlatformPOSIX Platform = iota
	// PlatformWindows accepts '/' and '\' as separators and emits '\'.
	// Absolute paths start with a drive letter or a network prefix.
	PlatformWindows
)

// DefaultMaxComponents bounds the number of components a path may split into.
const DefaultMaxComponents = 128

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "windows"
	case PlatformPOSIX:
		return "posix"
	default:
		return "unknown"
	}
}

// Separator returns the separator emitted on this platform.
func (p Platform) Separator() rune {
	if p == PlatformWindows {
		return '\\'
	}
	return '/'
}

// IsSeparator reports whether r separates path components on this platform.
func (p Platform) IsSeparator(r rune) bool {
	return r == '/' || (p == PlatformWindows && r == '\\')
}

// HostPlatform returns the platform of the running binary.
func HostPlatform() Platform {
	if runtime.GOOS == "windows" {
		return PlatformWindows
	}
	return PlatformPOSIX
}

// ParsePlatform maps "host", "windows" and "posix" to a Platform.
func ParsePlatform(name string) (Platform, error) {
	switch name {
	case "", "host":
		return HostPlatform(), nil
	case "windows", "win":
		return PlatformWindows, nil
	case "posix", "unix", "linux", "darwin":
		return PlatformPOSIX, nil
	default:
		return 0, errors.InvalidInput(errors.PhaseConfig, "unknown platform "+name)
	}
}

// Config holds the explicit settings threaded through the library.
type Config struct {
	// ASCIIOnly treats every storage unit as one codepoint, skipping
	// multi-unit decoding. Only correct for pure ASCII input.
	ASCIIOnly bool

	// Platform selects separators and absoluteness rules for paths.
	Platform Platform

	// MaxComponents bounds path splitting. 0 means DefaultMaxComponents.
	MaxComponents int
}

// DefaultConfig returns the configuration for the host platform.
func DefaultConfig() *Config {
	return &Config{
		Platform:      HostPlatform(),
		MaxComponents: DefaultMaxComponents,
	}
}

// Resolve returns cfg with zero fields replaced by defaults.
// A nil cfg yields DefaultConfig().
func Resolve(cfg *Config) Config {
	if cfg == nil {
		return *DefaultConfig()
	}
	out := *cfg
	if out.MaxComponents == 0 {
		out.MaxComponents = DefaultMaxComponents
	}
	return out
}

// Validate reports configuration values that cannot be honoured.
func (c *Config) Validate() error {
	if c.MaxComponents < 0 {
		return errors.InvalidInput(errors.PhaseConfig, "max components must not be negative")
	}
	switch c.Platform {
	case PlatformPOSIX, PlatformWindows:
	default:
		return errors.InvalidInput(errors.PhaseConfig, "unknown platform")
	}
	return nil
}
