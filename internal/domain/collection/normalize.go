package collection

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/preston-bernstein/bggshelf/internal/xmltree"
)

// ErrMissingStats marks an entry without a stats/rating block. A single bad
// entry fails the whole collection.
var ErrMissingStats = errors.New("collection entry has no stats rating node")

// CleanName undoes the two entity artifacts the feed leaves in names, in this
// order. It is not a general entity decoder.
func CleanName(raw string) string {
	s := strings.ReplaceAll(raw, "amp;", "")
	return strings.ReplaceAll(s, "&#039;", "'")
}

// Normalize flattens the children of a collection document root into summaries,
// preserving order.
func Normalize(entries []*xmltree.Node) ([]GameSummary, error) {
	out := make([]GameSummary, 0, len(entries))
	for i, entry := range entries {
		game, err := normalizeEntry(entry)
		if err != nil {
			objectID, _ := entry.Attr("objectid")
			return nil, fmt.Errorf("collection: entry %d (objectid %q): %w", i, objectID, err)
		}
		out = append(out, game)
	}
	return out, nil
}

// NormalizeDocument is Normalize over a parsed document root.
func NormalizeDocument(root *xmltree.Node) ([]GameSummary, error) {
	if root == nil {
		return nil, errors.New("collection: nil document")
	}
	return Normalize(root.Children)
}

func normalizeEntry(entry *xmltree.Node) (GameSummary, error) {
	if entry == nil {
		return GameSummary{}, errors.New("nil entry")
	}
	children := entry.Children

	ratings, statsAttrs, err := ratingsNode(children)
	if err != nil {
		return GameSummary{}, err
	}

	avg, avgOK := sumAttr(ratings.Children, "average")
	geek, _ := sumAttr(ratings.Children, "bayesaverage")

	personalRaw, _ := ratings.Attr("value")
	personal, personalOK := parseNumber(personalRaw)

	game := GameSummary{
		ID:            objectID(entry),
		GameName:      CleanName(concatValues(children, "name")),
		Thumbnail:     concatValues(children, "thumbnail"),
		YearPublished: concatValues(children, "yearpublished"),
		NumPlays:      sumPlays(children),
		AvgRating:     avg,
		GeekRating:    geek,
		MinPlayers:    statsAttrs["minplayers"],
		MaxPlayers:    statsAttrs["maxplayers"],
		MinPlayTime:   statsAttrs["minplaytime"],
		MaxPlayTime:   statsAttrs["maxplaytime"],
	}
	if personalOK && personal != 0 {
		game.Rating = Some(personal)
	}
	if avgOK && personalOK {
		game.Delta = Some(round2(math.Abs(avg - personal)))
	}
	return game, nil
}

func objectID(entry *xmltree.Node) int {
	raw, _ := entry.Attr("objectid")
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return id
}

func concatValues(children []*xmltree.Node, name string) string {
	var b strings.Builder
	for _, c := range children {
		if c.Name == name {
			b.WriteString(c.Value)
		}
	}
	return b.String()
}

func sumPlays(children []*xmltree.Node) int {
	total := 0
	for _, c := range children {
		if c.Name != "numplays" {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSpace(c.Value)); err == nil {
			total += n
		}
	}
	return total
}

// ratingsNode merges the attributes of every stats child and returns the first
// child of the last stats node, which carries the rating block.
func ratingsNode(children []*xmltree.Node) (*xmltree.Node, map[string]string, error) {
	attrs := make(map[string]string)
	var last *xmltree.Node
	for _, c := range children {
		if c.Name != "stats" {
			continue
		}
		for k, v := range c.Attributes {
			attrs[k] = v
		}
		last = c
	}
	if last == nil || len(last.Children) == 0 {
		return nil, nil, ErrMissingStats
	}
	return last.Children[0], attrs, nil
}

// sumAttr adds the numeric value attribute of every matching child. The bool
// is false if any matching value failed to parse.
func sumAttr(children []*xmltree.Node, name string) (float64, bool) {
	total, ok := 0.0, true
	for _, c := range children {
		if c.Name != name {
			continue
		}
		raw, _ := c.Attr("value")
		v, parsed := parseNumber(raw)
		if !parsed {
			ok = false
			continue
		}
		total += v
	}
	return total, ok
}

func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// round2 rounds a non-negative value to two places, taking exact ties away
// from zero. The tie test runs on the exact binary value, so 0.125 becomes
// 0.13 while 1.005 (stored just below) becomes 1.
func round2(v float64) float64 {
	exact := new(big.Rat).SetFloat64(v)
	if exact == nil || v < 0 {
		return v
	}
	exact.Mul(exact, big.NewRat(100, 1))
	exact.Add(exact, big.NewRat(1, 2))
	hundredths := new(big.Int).Quo(exact.Num(), exact.Denom())
	return float64(hundredths.Int64()) / 100
}
