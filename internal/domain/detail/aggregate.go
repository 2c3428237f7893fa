package detail

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/preston-bernstein/bggshelf/internal/xmltree"
)

var (
	ErrNoItem        = errors.New("detail: document has no item")
	ErrMissingPoll   = errors.New("detail: item has no poll")
	ErrMissingYear   = errors.New("detail: item has no yearpublished")
	ErrMissingDetail = errors.New("detail: item has no description")
)

// Aggregate builds a GameDetail from a parsed thing document.
func Aggregate(root *xmltree.Node) (GameDetail, error) {
	if root == nil || len(root.Children) == 0 {
		return GameDetail{}, ErrNoItem
	}
	item := root.Children[0]

	year := item.Find("yearpublished")
	if year == nil {
		return GameDetail{}, ErrMissingYear
	}
	firstPublished, _ := year.Attr("value")

	poll := item.Find("poll")
	if poll == nil {
		return GameDetail{}, ErrMissingPoll
	}

	description := item.Find("description")
	if description == nil {
		return GameDetail{}, ErrMissingDetail
	}

	id, _ := item.Attr("id")
	gameID, _ := strconv.Atoi(strings.TrimSpace(id))

	return GameDetail{
		ID:                         gameID,
		Description:                LegacySanitize(description.Value),
		FirstPublished:             firstPublished,
		PlayerCountRecommendations: Rank(Buckets(poll)),
	}, nil
}

// Buckets reads the poll's player-count entries. Each result child becomes its
// own tally.
func Buckets(poll *xmltree.Node) []Bucket {
	if poll == nil {
		return nil
	}
	out := make([]Bucket, 0, len(poll.Children))
	for _, results := range poll.Children {
		count, _ := results.Attr("numplayers")
		b := Bucket{Count: count, Tallies: make([]VoteTally, 0, len(results.Children))}
		for _, r := range results.Children {
			label, _ := r.Attr("value")
			raw, _ := r.Attr("numvotes")
			b.Tallies = append(b.Tallies, VoteTally{label: parseVotes(raw)})
		}
		out = append(out, b)
	}
	return out
}

// ScoreBucket scores one bucket. Per tally only the first non-zero label in
// the order Best, Recommended, Not Recommended counts towards TotalVotes; the
// score takes Best at full weight or else Recommended at half weight.
func ScoreBucket(b Bucket) PlayerCountRecommendation {
	var total, score float64
	for _, t := range b.Tallies {
		switch {
		case t[LabelBest] != 0:
			total += t[LabelBest]
		case t[LabelRecommended] != 0:
			total += t[LabelRecommended]
		case t[LabelNotRecommended] != 0:
			total += t[LabelNotRecommended]
		}

		switch {
		case t[LabelBest] != 0:
			score += t[LabelBest]
		case t[LabelRecommended] != 0:
			score += t[LabelRecommended] / 2
		}
	}

	weighted := 0.0
	if total != 0 {
		weighted = score / total
	}
	if math.IsNaN(weighted) || math.IsInf(weighted, 0) {
		weighted = 0
	}
	return PlayerCountRecommendation{
		Count:         b.Count,
		Score:         score,
		TotalVotes:    total,
		WeightedScore: weighted,
	}
}

// Rank scores every bucket, drops those with score < 1 or fewer than one vote,
// and orders the rest by weighted score, highest first.
func Rank(buckets []Bucket) []PlayerCountRecommendation {
	out := make([]PlayerCountRecommendation, 0, len(buckets))
	for _, b := range buckets {
		rec := ScoreBucket(b)
		if rec.Score >= 1 && rec.TotalVotes >= 1 {
			out = append(out, rec)
		}
	}
	slices.SortStableFunc(out, func(a, b PlayerCountRecommendation) int {
		switch {
		case a.WeightedScore > b.WeightedScore:
			return -1
		case a.WeightedScore < b.WeightedScore:
			return 1
		default:
			return 0
		}
	})
	return out
}

func parseVotes(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return v
}

// String renders a recommendation for logs.
func (r PlayerCountRecommendation) String() string {
	return fmt.Sprintf("%s players: %.3f (%g votes)", r.Count, r.WeightedScore, r.TotalVotes)
}
