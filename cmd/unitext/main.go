package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/unitext"
	"github.com/wippyai/unitext/bom"
	"github.com/wippyai/unitext/errors"
	"github.com/wippyai/unitext/paths"
	"github.com/wippyai/unitext/wasmmem"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: unitext -op <operation> [-enc utf16] [-platform windows] operands...")
	fmt.Fprintf(w, "       unitext -op format -enc utf32 'x=%%d' int:42\n")
	fmt.Fprintln(w, "       unitext -i  (interactive mode)")
}

func main() {
	var (
		op          = flag.String("op", "", "Operation: "+operationNames())
		enc         = flag.String("enc", "utf8", "Buffer encoding (utf8, utf16, utf32, wide)")
		platform    = flag.String("platform", "host", "Path rules (host, windows, posix)")
		ascii       = flag.Bool("ascii", false, "Treat every unit as one codepoint")
		fold        = flag.Bool("fold", false, "Compare ASCII letters case-insensitively")
		in          = flag.String("in", "", "Read the first operand from a file (BOM aware)")
		charset     = flag.String("charset", "utf8", "Charset of -in when it has no byte order mark")
		verbose     = flag.Bool("v", false, "Log library diagnostics to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	paths.SetLogger(log)
	wasmmem.SetLogger(log)

	p, err := unitext.ParsePlatform(*platform)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	s := settings{
		encoding: *enc,
		fold:     *fold,
		config:   unitext.Config{ASCIIOnly: *ascii, Platform: p},
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(s); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *op == "" {
		usage(os.Stderr)
		os.Exit(1)
	}

	args := flag.Args()
	if *in != "" {
		text, err := readInput(*in, *charset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		args = append([]string{text}, args...)
	}

	out, err := execute(s, *op, args)
	if err != nil {
		log.Debug("operation failed", zap.String("op", *op), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
	fmt.Println(out)
}

// exitCode returns 2 for usage mistakes and 1 for every other failure.
func exitCode(err error) int {
	switch kind, _ := errors.KindOf(err); kind {
	case errors.KindArgMissing, errors.KindArgExtra, errors.KindUnsupported:
		return 2
	default:
		return 1
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// readInput decodes a file to UTF-8, honouring a leading byte order mark.
func readInput(name, charset string) (string, error) {
	fallback, err := bom.ParseCharset(charset)
	if err != nil {
		return "", err
	}
	f, err := os.Open(name)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(bom.NewReader(f, fallback))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func operationNames() string {
	names := make([]string, len(operations))
	for i, op := range operations {
		names[i] = op.name
	}
	return strings.Join(names, ", ")
}
