package detail

// Recommendation labels used by the player-count poll.
const (
	LabelBest           = "Best"
	LabelRecommended    = "Recommended"
	LabelNotRecommended = "Not Recommended"
)

// VoteTally holds the vote counts carried by one poll result entry, keyed by label.
// A feed normally yields one label per tally.
type VoteTally map[string]float64

// Bucket is one player-count entry of the poll with its result tallies in
// document order.
type Bucket struct {
	Count   string
	Tallies []VoteTally
}

// PlayerCountRecommendation is the scored form of a Bucket.
type PlayerCountRecommendation struct {
	Count         string  `json:"count"`
	Score         float64 `json:"score"`
	TotalVotes    float64 `json:"totalVotes"`
	WeightedScore float64 `json:"weightedScore"`
}

// GameDetail is the expanded view of one game.
type GameDetail struct {
	ID                         int                         `json:"id"`
	Description                string                      `json:"description"`
	FirstPublished             string                      `json:"firstPublished"`
	PlayerCountRecommendations []PlayerCountRecommendation `json:"playerCountRecommendations"`
}

// Summary groups the recommendations for display.
func (d GameDetail) Summary() RecommendationSummary {
	return Summarize(d.PlayerCountRecommendations)
}

// FontScale is the text scale for the description panel.
func (d GameDetail) FontScale() string {
	return FontScale(d.Description)
}
