// Package display prints the intro and outro frame around a run.
package display

import (
	"fmt"
	"io"

	"github.com/On-Jun9/ShutterRename/internal/term"
)

// Intro opens the frame with title.
func Intro(w io.Writer, title string) {
	fmt.Fprintf(w, "%s┌%s  %s%s%s\n", term.Gray, term.NC, term.Cyan, title, term.NC)
	fmt.Fprintf(w, "%s│%s\n", term.Gray, term.NC)
}

// Outro closes the frame with msg.
func Outro(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s│%s\n", term.Gray, term.NC)
	fmt.Fprintf(w, "%s└%s  %s\n", term.Gray, term.NC, msg)
}
