package paths

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/unitext"
	"github.com/wippyai/unitext/codec"
	"github.com/wippyai/unitext/errors"
	"github.com/wippyai/unitext/span"
)

func newEngine[U codec.Unit](t *testing.T, enc codec.Encoding[U], p unitext.Platform) *Engine[U] {
	t.Helper()
	e, err := New(enc, &unitext.Config{Platform: p})
	require.NoError(t, err)
	return e
}

func str[U codec.Unit](enc codec.Encoding[U], s string) []U {
	return span.FromString[U](enc, s)
}

// run performs the two-phase protocol and returns the decoded result.
func run[U codec.Unit](t *testing.T, enc codec.Encoding[U], op func(dst []U) (int, error)) (string, error) {
	t.Helper()
	size, err := op(nil)
	if err != nil {
		return "", err
	}
	dst := make([]U, size)
	got, err := op(dst)
	require.NoError(t, err)
	require.Equal(t, size, got, "fill pass must report the size query result")
	return span.String(enc, dst), nil
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		platform unitext.Platform
		path     string
		root     int
		parts    []string
	}{
		{"relative", unitext.PlatformPOSIX, "a/b/c", 0, []string{"a", "b", "c"}},
		{"rooted", unitext.PlatformPOSIX, "/a/b", 1, []string{"a", "b"}},
		{"trailing separator", unitext.PlatformPOSIX, "a/b/", 0, []string{"a", "b", ""}},
		{"repeated separators", unitext.PlatformPOSIX, "a//b///c", 0, []string{"a", "b", "c"}},
		{"repeated trailing", unitext.PlatformPOSIX, "a//", 0, []string{"a", ""}},
		{"root only", unitext.PlatformPOSIX, "/", 1, []string{}},
		{"empty", unitext.PlatformPOSIX, "", 0, []string{}},
		{"backslash on posix", unitext.PlatformPOSIX, `a\b`, 0, []string{`a\b`}},
		{"windows drive", unitext.PlatformWindows, `C:\a\b`, 0, []string{"C:", "a", "b"}},
		{"windows mixed", unitext.PlatformWindows, `C:/a\b/`, 0, []string{"C:", "a", "b", ""}},
		{"windows network", unitext.PlatformWindows, `\\srv\share`, 2, []string{"srv", "share"}},
		{"unicode", unitext.PlatformPOSIX, "/dé/😀", 1, []string{"dé", "😀"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := codec.UTF16{}
			e := newEngine(t, enc, tt.platform)
			list, err := e.Split(str(enc, tt.path))
			require.NoError(t, err)
			assert.Equal(t, tt.root, list.Root)
			assert.Equal(t, tt.parts, list.Strings(enc))
			assert.Equal(t, len(tt.parts), list.Len())
		})
	}
}

func TestSplit_ComponentLimit(t *testing.T) {
	enc := codec.UTF8{}
	e, err := New(enc, &unitext.Config{Platform: unitext.PlatformPOSIX, MaxComponents: 3})
	require.NoError(t, err)

	_, err = e.Split(str(enc, "a/b/c"))
	require.NoError(t, err)

	_, err = e.Split(str(enc, "a/b/c/d"))
	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhasePath, Kind: errors.KindCapacityExceeded})

	// A trailing empty component counts too.
	_, err = e.Split(str(enc, "a/b/c/"))
	assert.Error(t, err)
}

func TestSplit_DefaultLimit(t *testing.T) {
	enc := codec.UTF8{}
	e := newEngine(t, enc, unitext.PlatformPOSIX)

	_, err := e.Split(str(enc, strings.Repeat("x/", 127)+"x"))
	require.NoError(t, err)

	_, err = e.Split(str(enc, strings.Repeat("x/", 128)+"x"))
	assert.Error(t, err)
}

func TestIsAbsolute(t *testing.T) {
	tests := []struct {
		path    string
		windows bool
		posix   bool
		network bool
	}{
		{`C:\a`, true, false, false},
		{`z:`, true, false, false},
		{`C`, false, false, false},
		{`1:\a`, false, false, false},
		{`\\srv\share`, true, false, true},
		{`//srv/share`, true, true, true},
		{`/usr/bin`, false, true, false},
		{`\a`, false, false, false},
		{`a/b`, false, false, false},
		{``, false, false, false},
	}

	enc := codec.UTF32{}
	win := newEngine(t, enc, unitext.PlatformWindows)
	posix := newEngine(t, enc, unitext.PlatformPOSIX)

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p := str(enc, tt.path)
			assert.Equal(t, tt.windows, win.IsAbsolute(p), "windows")
			assert.Equal(t, tt.posix, posix.IsAbsolute(p), "posix")
			assert.Equal(t, !tt.windows, win.IsRelative(p))
			assert.Equal(t, tt.network, win.IsNetworkPath(p))
			assert.False(t, posix.IsNetworkPath(p))
		})
	}
}

func TestAbsolute(t *testing.T) {
	tests := []struct {
		name     string
		platform unitext.Platform
		path     string
		base     string
		want     string
	}{
		{"parent windows", unitext.PlatformWindows, `..\foo`, `C:\a\b`, `C:\a\foo`},
		{"child windows", unitext.PlatformWindows, `x\y`, `C:\a`, `C:\a\x\y`},
		{"dot kept", unitext.PlatformWindows, `.\x`, `C:\a`, `C:\a\.\x`},
		{"forward slashes on windows", unitext.PlatformWindows, `../foo`, `C:/a/b/`, `C:\a\foo`},
		{"trailing separator dropped", unitext.PlatformWindows, `x\`, `C:\a`, `C:\a\x`},
		{"network base", unitext.PlatformWindows, `..\y`, `\\srv\share\x`, `\\srv\share\y`},
		{"absolute path ignores base", unitext.PlatformWindows, `D:\q\..\r`, `C:\a`, `D:\r`},
		{"absolute posix path ignores base", unitext.PlatformPOSIX, "/x/../y", "/a", "/y"},
		{"posix", unitext.PlatformPOSIX, "../c", "/a/b", "/a/c"},
		{"posix to root", unitext.PlatformPOSIX, "../..", "/a/b", "/"},
		{"posix empty path", unitext.PlatformPOSIX, "", "/a/b", "/a/b"},
		{"unicode", unitext.PlatformPOSIX, "😀/é", "/dé", "/dé/😀/é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := codec.UTF16{}
			e := newEngine(t, enc, tt.platform)
			got, err := run(t, enc, func(dst []uint16) (int, error) {
				return e.Absolute(dst, str(enc, tt.path), str(enc, tt.base))
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAbsolute_AboveRoot(t *testing.T) {
	enc := codec.UTF8{}
	e := newEngine(t, enc, unitext.PlatformWindows)

	dst := []uint8{'j', 'u', 'n', 'k'}
	n, err := e.Absolute(dst, str(enc, `..\..\..\x`), str(enc, `C:\a`))
	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhasePath, Kind: errors.KindAboveRoot})
	assert.Equal(t, 1, n)
	assert.Equal(t, uint8(0), dst[0])

	n, err = e.Absolute(nil, str(enc, `..\..\..\x`), str(enc, `C:\a`))
	assert.Error(t, err)
	assert.Equal(t, 1, n)

	var pe *errors.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Value)
}

func TestAbsolute_LogsFailure(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	enc := codec.UTF8{}
	e := newEngine(t, enc, unitext.PlatformPOSIX)
	_, err := e.Absolute(nil, str(enc, "../.."), str(enc, "/a"))
	require.Error(t, err)

	entries := logs.FilterMessage("path ascends above root").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "../..", entries[0].ContextMap()["path"])
}

func TestAbsolute_Truncates(t *testing.T) {
	enc := codec.UTF16{}
	e := newEngine(t, enc, unitext.PlatformPOSIX)

	size, err := e.Absolute(nil, str(enc, "😀"), str(enc, "/ab"))
	require.NoError(t, err)
	assert.Equal(t, 7, size)

	// Room for "/ab/" only; the pair must not be split.
	dst := make([]uint16, 6)
	n, err := e.Absolute(dst, str(enc, "😀"), str(enc, "/ab"))
	require.NoError(t, err)
	assert.Equal(t, size, n)
	assert.Equal(t, "/ab/", span.String(enc, dst))
}

func TestRelative(t *testing.T) {
	tests := []struct {
		name     string
		platform unitext.Platform
		path     string
		base     string
		want     string
	}{
		{"sibling windows", unitext.PlatformWindows, `C:\a\b\c`, `C:\a\d`, `..\b\c`},
		{"child", unitext.PlatformWindows, `C:\a\b`, `C:\a`, `b`},
		{"same", unitext.PlatformWindows, `C:\a`, `C:\a`, ``},
		{"base trailing separator", unitext.PlatformWindows, `C:\a\b`, `C:\a\`, `b`},
		{"directory kept", unitext.PlatformWindows, `C:\a\b\`, `C:\a\c`, `..\b\`},
		{"other drive", unitext.PlatformWindows, `D:\x`, `C:\a`, `..\..\D:\x`},
		{"case sensitive", unitext.PlatformWindows, `C:\A\b`, `C:\a`, `..\A\b`},
		{"posix", unitext.PlatformPOSIX, "/a/b/c", "/a/d/e", "../../b/c"},
		{"posix ancestor", unitext.PlatformPOSIX, "/a", "/a/b/c", "../../"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := codec.UTF8{}
			e := newEngine(t, enc, tt.platform)
			got, err := run(t, enc, func(dst []uint8) (int, error) {
				return e.Relative(dst, str(enc, tt.path), str(enc, tt.base))
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRelativeAbsolute_Idempotent(t *testing.T) {
	tests := []struct {
		platform unitext.Platform
		path     string
		base     string
	}{
		{unitext.PlatformWindows, `C:\a\b\c`, `C:\a\d`},
		{unitext.PlatformWindows, `C:\a\b`, `C:\a`},
		{unitext.PlatformWindows, `C:\a`, `C:\a\b\c`},
		{unitext.PlatformWindows, `C:\x\y\z`, `C:\p\q`},
		{unitext.PlatformWindows, `\\srv\share\a`, `\\srv\share\b\c`},
		{unitext.PlatformPOSIX, "/usr/local/bin", "/usr/share/doc"},
		{unitext.PlatformPOSIX, "/a", "/a/b"},
		{unitext.PlatformPOSIX, "/héllo/😀", "/héllo/wörld"},
	}

	for _, tt := range tests {
		t.Run(tt.path+"@"+tt.base, func(t *testing.T) {
			enc := codec.UTF16{}
			e := newEngine(t, enc, tt.platform)

			rel, err := run(t, enc, func(dst []uint16) (int, error) {
				return e.Relative(dst, str(enc, tt.path), str(enc, tt.base))
			})
			require.NoError(t, err)

			abs, err := run(t, enc, func(dst []uint16) (int, error) {
				return e.Absolute(dst, str(enc, rel), str(enc, tt.base))
			})
			require.NoError(t, err)
			assert.Equal(t, tt.path, abs, "relative form %q", rel)
		})
	}
}

func TestSplitFile(t *testing.T) {
	tests := []struct {
		platform unitext.Platform
		path     string
		folder   string
		file     string
	}{
		{unitext.PlatformPOSIX, "/a/b/file.txt", "/a/b/", "file.txt"},
		{unitext.PlatformPOSIX, "file.txt", "", "file.txt"},
		{unitext.PlatformPOSIX, "/a/b/", "/a/b/", ""},
		{unitext.PlatformWindows, `C:\dir/sub\x.go`, `C:\dir/sub\`, "x.go"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			enc := codec.UTF8{}
			e := newEngine(t, enc, tt.platform)
			folder, file := e.SplitFile(str(enc, tt.path))
			assert.Equal(t, tt.folder, span.String(enc, folder.Units()))
			assert.Equal(t, tt.file, span.String(enc, file.Units()))
		})
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/a/b/file.txt", "txt"},
		{"archive.tar.gz", "gz"},
		{"/a.d/file", ""},
		{".bashrc", ""},
		{"/home/.config.yml", "yml"},
		{"name.", ""},
		{"/x/photo.jpég", "jpég"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			enc := codec.UTF16{}
			e := newEngine(t, enc, unitext.PlatformPOSIX)

			size := e.Ext(nil, str(enc, tt.path))
			dst := make([]uint16, size)
			assert.Equal(t, size, e.Ext(dst, str(enc, tt.path)))
			assert.Equal(t, tt.want, span.String(enc, dst))
		})
	}
}

func TestHostFunctions(t *testing.T) {
	enc := codec.UTF8{}
	e := host(enc)

	p := str(enc, "/a/b")
	assert.Equal(t, e.IsAbsolute(p), IsAbsolute(enc, p))
	assert.Equal(t, e.IsRelative(p), IsRelative(enc, p))
	assert.Equal(t, e.IsNetworkPath(p), IsNetworkPath(enc, p))

	list, err := Split(enc, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, list.Strings(enc))

	size, err := Absolute(enc, nil, str(enc, "c"), p)
	require.NoError(t, err)
	assert.Greater(t, size, 1)

	size, err = Relative(enc, nil, p, p)
	require.NoError(t, err)
	assert.Equal(t, 1, size)

	_, file := SplitFile(enc, str(enc, "/x/y.z"))
	assert.Equal(t, "y.z", span.String(enc, file.Units()))
	assert.Equal(t, 2, Ext(enc, nil, str(enc, "y.z")))
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New[uint8](codec.UTF8{}, &unitext.Config{MaxComponents: -1})
	assert.Error(t, err)

	e, err := New[uint8](codec.UTF8{}, &unitext.Config{ASCIIOnly: true})
	require.NoError(t, err)
	assert.Equal(t, "raw-8", e.Encoding().Name())
	assert.Equal(t, unitext.DefaultMaxComponents, e.Config().MaxComponents)
}
