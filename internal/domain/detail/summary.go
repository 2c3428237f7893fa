package detail

import "strings"

// Thresholds for grouping the runner-up player counts.
const (
	excellentAbove      = 0.65
	veryGoodAbove       = 0.5
	okayAbove           = 0.35
	notRecommendedBelow = 0.35
)

// RecommendationSummary groups ranked player counts. Best is the top entry;
// the groups hold the remaining counts in rank order.
type RecommendationSummary struct {
	Best           string
	Excellent      []string
	VeryGood       []string
	Okay           []string
	NotRecommended []string
}

// Summarize groups recommendations that are already ranked. A weighted score of
// exactly 0.35 falls in no group.
func Summarize(ranked []PlayerCountRecommendation) RecommendationSummary {
	if len(ranked) == 0 {
		return RecommendationSummary{}
	}
	s := RecommendationSummary{Best: ranked[0].Count}
	for _, r := range ranked[1:] {
		w := r.WeightedScore
		switch {
		case w > excellentAbove:
			s.Excellent = append(s.Excellent, r.Count)
		case w > veryGoodAbove:
			s.VeryGood = append(s.VeryGood, r.Count)
		case w > okayAbove:
			s.Okay = append(s.Okay, r.Count)
		case w < notRecommendedBelow:
			s.NotRecommended = append(s.NotRecommended, r.Count)
		}
	}
	return s
}

// String renders the one-line summary shown under the description, for example
// " Best with: 4 players, also excellent with: 3 players". Empty groups are left out.
func (s RecommendationSummary) String() string {
	if s.Best == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(" Best with: " + s.Best + " players, ")
	writeGroup(&b, "also excellent with", s.Excellent)
	writeGroup(&b, "very good with", s.VeryGood)
	writeGroup(&b, "okay with", s.Okay)
	writeGroup(&b, "not recommended with", s.NotRecommended)
	return strings.TrimSuffix(b.String(), ", ")
}

func writeGroup(b *strings.Builder, label string, counts []string) {
	if len(counts) == 0 {
		return
	}
	b.WriteString(label + ": " + strings.Join(counts, ", ") + " players, ")
}
