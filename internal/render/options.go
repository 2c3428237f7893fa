package render

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// Options tunes output for the destination.
type Options struct {
	// Highlight marks the header and expanded row with ANSI bold.
	Highlight bool
}

// Detect enables highlighting when w is a terminal.
func Detect(w io.Writer) Options {
	f, ok := w.(*os.File)
	if !ok {
		return Options{}
	}
	fd := f.Fd()
	return Options{Highlight: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)}
}

func (o Options) bold(s string) string {
	if !o.Highlight || s == "" {
		return s
	}
	return ansiBold + s + ansiReset
}
