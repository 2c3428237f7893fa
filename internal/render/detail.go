package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/preston-bernstein/bggshelf/internal/domain/detail"
)

// Line widths standing in for the description's text scale: smaller text fits
// more on a line.
var wrapWidths = map[string]int{
	detail.ScaleLarge:  72,
	detail.ScaleMedium: 88,
	detail.ScaleSmall:  104,
}

const panelIndent = "    "

// Detail writes the expanded panel for one game: the description, the
// player-count recommendation line and the first-published year.
func Detail(w io.Writer, d detail.GameDetail, opts Options) error {
	width, ok := wrapWidths[d.FontScale()]
	if !ok {
		width = wrapWidths[detail.ScaleLarge]
	}

	var b strings.Builder
	for _, line := range Wrap(d.Description, width) {
		b.WriteString(panelIndent + line + "\n")
	}
	b.WriteString("\n")
	if summary := strings.TrimSpace(d.Summary().String()); summary != "" {
		b.WriteString(panelIndent + opts.bold(summary) + "\n")
	}
	fmt.Fprintf(&b, "%sYear first published: %s\n", panelIndent, d.FirstPublished)

	_, err := io.WriteString(w, b.String())
	return err
}

// Wrap breaks text into lines of at most width runes at word boundaries.
// Words longer than width get a line to themselves.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	currentLen := len([]rune(current))
	for _, word := range words[1:] {
		n := len([]rune(word))
		if currentLen+1+n > width {
			lines = append(lines, current)
			current, currentLen = word, n
			continue
		}
		current += " " + word
		currentLen += 1 + n
	}
	return append(lines, current)
}
