//go:build !js

package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Native builds write to stderr. Severity prefixes are coloured when the
// output is a terminal.
var (
	outMu sync.Mutex
	out   io.Writer = os.Stderr
	color           = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
)

// SetOutput redirects native console output; nil restores stderr. Colour is
// disabled unless w is a terminal.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
	color = false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}

// Log writes an informational line.
func Log(args ...any) {
	write("", "", args)
}

// Warn writes a warning line.
func Warn(args ...any) {
	write("warning: ", "\033[33m", args)
}

// Error writes an error line.
func Error(args ...any) {
	write("error: ", "\033[31m", args)
}

func write(prefix, sgr string, args []any) {
	outMu.Lock()
	defer outMu.Unlock()
	if color && prefix != "" {
		prefix = sgr + prefix + "\033[0m"
	}
	fmt.Fprint(out, prefix)
	fmt.Fprintln(out, args...)
}
