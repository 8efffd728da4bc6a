package display

import (
	"bytes"
	"testing"

	"github.com/On-Jun9/ShutterRename/internal/term"
	"github.com/On-Jun9/ShutterRename/pkg/types"
)

func TestIntroOutro_Plain(t *testing.T) {
	term.Configure(types.ColorNever)

	var buf bytes.Buffer
	Intro(&buf, "Image renamer")
	Outro(&buf, "Done")

	want := "┌  Image renamer\n│\n│\n└  Done\n"
	if buf.String() != want {
		t.Fatalf("unexpected frame:\n%q\nwant\n%q", buf.String(), want)
	}
}
