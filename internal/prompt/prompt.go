// Package prompt asks the user for values on an interactive terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/On-Jun9/ShutterRename/internal/term"
)

// ErrAborted is returned when input ends before a valid answer was given.
var ErrAborted = errors.New("prompt aborted")

type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Input asks question until validate accepts the answer. The placeholder is
// shown as a hint only; it is never used as a value.
func (p *Prompter) Input(question, placeholder string, validate func(string) error) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s◆%s  %s\n", term.Cyan, term.NC, question)
		fmt.Fprintf(p.out, "%s│  %s%s\n%s│%s  ", term.Gray, placeholder, term.NC, term.Gray, term.NC)

		line, err := p.in.ReadString('\n')
		answer := strings.TrimSpace(line)
		if err != nil && (answer == "" || !errors.Is(err, io.EOF)) {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(p.out)
				return "", ErrAborted
			}
			return "", err
		}

		if verr := validate(answer); verr != nil {
			fmt.Fprintf(p.out, "%s▲%s  %v\n", term.Yellow, term.NC, verr)
			if err != nil {
				return "", ErrAborted
			}
			continue
		}
		return answer, nil
	}
}
