package collection

import (
	"encoding/json"
	"strconv"
)

// Optional is a number that may be absent. It encodes as a JSON number when
// valid and as an empty string otherwise.
type Optional struct {
	Value float64
	Valid bool
}

// Some wraps a present value.
func Some(v float64) Optional {
	return Optional{Value: v, Valid: true}
}

// Or returns the value when present and fallback otherwise.
func (o Optional) Or(fallback float64) float64 {
	if o.Valid {
		return o.Value
	}
	return fallback
}

// String formats the value without trailing zeros, or "" when absent.
func (o Optional) String() string {
	if !o.Valid {
		return ""
	}
	return strconv.FormatFloat(o.Value, 'f', -1, 64)
}

func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte(`""`), nil
	}
	return json.Marshal(o.Value)
}

func (o *Optional) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*o = Some(num)
		return nil
	}
	*o = Optional{}
	return nil
}

// GameSummary is one owned game flattened from the collection feed.
type GameSummary struct {
	ID            int      `json:"id"`
	GameName      string   `json:"gameName"`
	Thumbnail     string   `json:"thumbnail"`
	YearPublished string   `json:"yearPublished"`
	NumPlays      int      `json:"numPlays"`
	Rating        Optional `json:"rating"`
	AvgRating     float64  `json:"avgRating"`
	GeekRating    float64  `json:"geekRating"`
	Delta         Optional `json:"delta"`
	MinPlayers    string   `json:"minPlayers"`
	MaxPlayers    string   `json:"maxPlayers"`
	MinPlayTime   string   `json:"minPlayTime"`
	MaxPlayTime   string   `json:"maxPlayTime"`
}
