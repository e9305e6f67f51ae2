package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
}

// Sprintf formats according to a format specifier and returns the resulting
// string, coloured when the terminal allows it.
func (f Formatter) Sprintf(format string, a ...any) string {
	text := fmt.Sprintf(format, a...)
	if noColor() {
		return f.prefix + text
	}
	return f.color.Sprint(text)
}

// Fprintln writes one formatted line to w.
func (f Formatter) Fprintln(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, f.Sprintf(format, a...))
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	Success = Formatter{color.New(color.FgGreen), "✓ "}
	Warning = Formatter{color.New(color.FgYellow), "! "}
	Error   = Formatter{color.New(color.FgRed, color.Bold), "✗ "}
	Info    = Formatter{color.New(color.FgCyan), ""}
)
