package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/preston-bernstein/bggshelf/internal/domain/collection"
	"github.com/preston-bernstein/bggshelf/internal/viewstate"
)

type column struct {
	key   collection.SortKey
	title string
}

// Header order matches the sortable ids; Players and Time are display only.
var columns = []column{
	{collection.SortGameName, "Name"},
	{collection.SortYearPublished, "Year"},
	{"", "Players"},
	{"", "Time (min)"},
	{collection.SortRating, "Rating"},
	{collection.SortNumPlays, "Plays"},
	{collection.SortAvgRating, "Avg. rating"},
	{collection.SortGeekRating, "Geek rating"},
	{collection.SortDelta, "Rating vs average"},
}

// Table writes the rows as an aligned table. The active sort column carries a
// direction arrow and the expanded row is marked with ">".
func Table(w io.Writer, rows []collection.GameSummary, state viewstate.ViewState, opts Options) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	header := make([]string, 0, len(columns)+1)
	header = append(header, " ")
	for _, c := range columns {
		title := c.title
		if c.key != "" && c.key == state.SortKey {
			title += " " + arrow(state.SortAscending)
		}
		header = append(header, title)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	expandedLine := -1
	for i, g := range rows {
		marker := " "
		if state.IsExpanded(g.GameName) {
			marker = ">"
			expandedLine = i + 1
		}
		fmt.Fprintln(tw, strings.Join([]string{
			marker,
			g.GameName,
			g.YearPublished,
			Players(g),
			PlayTime(g),
			Optional(g.Rating),
			Plays(g.NumPlays),
			Number(g.AvgRating),
			Number(g.GeekRating),
			Delta(g.Delta),
		}, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		if i == 0 || i == expandedLine {
			line = opts.bold(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No games in this collection.")
		return err
	}
	return nil
}

func arrow(ascending bool) string {
	if ascending {
		return "▲"
	}
	return "▼"
}
