// Package term provides ANSI color state and terminal detection.
//
// Colors are package-level variables because both log and display need them.
// [Configure] sets them once during startup; when colors are disabled the
// variables are empty strings, making string concatenation a no-op.
package term

import (
	"os"
	"strings"

	"github.com/On-Jun9/ShutterRename/pkg/types"
	xterm "golang.org/x/term"
)

// ANSI color codes. Empty when colors are disabled.
var (
	Red    = ""
	Green  = ""
	Yellow = ""
	Cyan   = ""
	Gray   = ""
	NC     = "" // Reset sequence.
)

// Configure resolves the color mode and sets the package-level ANSI variables.
func Configure(mode types.ColorMode) {
	if resolve(mode) {
		Red = "\033[1;91m"
		Green = "\033[1;92m"
		Yellow = "\033[1;93m"
		Cyan = "\033[1;96m"
		Gray = "\033[90m"
		NC = "\033[0m"
	} else {
		Red, Green, Yellow, Cyan, Gray, NC = "", "", "", "", "", ""
	}
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return NC != "" }

// resolve honours NO_COLOR (https://no-color.org) and TERM=dumb in auto mode.
func resolve(mode types.ColorMode) bool {
	switch mode {
	case types.ColorAlways:
		return true
	case types.ColorNever:
		return false
	default:
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}
