package render

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/preston-bernstein/bggshelf/internal/domain/collection"
)

const notAvailable = "N/A"

// Players renders the player range as "min" when both bounds match, else "min-max".
func Players(g collection.GameSummary) string {
	if sameNumber(g.MinPlayers, g.MaxPlayers) {
		return g.MinPlayers
	}
	return g.MinPlayers + "-" + g.MaxPlayers
}

// PlayTime renders the play time range in minutes; "?" when either bound is missing.
func PlayTime(g collection.GameSummary) string {
	if g.MinPlayTime == "" || g.MaxPlayTime == "" {
		return "?"
	}
	if sameNumber(g.MinPlayTime, g.MaxPlayTime) {
		return g.MaxPlayTime
	}
	return g.MinPlayTime + "-" + g.MaxPlayTime
}

// Optional renders an optional rating; absent and zero both show as N/A.
func Optional(v collection.Optional) string {
	if !v.Valid || v.Value == 0 {
		return notAvailable
	}
	return Number(v.Value)
}

// Delta renders the rating gap with exactly two decimals, so an exact match
// shows as 0.00. Absent shows as N/A.
func Delta(v collection.Optional) string {
	if !v.Valid {
		return notAvailable
	}
	return humanize.FormatFloat("#,###.##", v.Value)
}

// Number renders a rating as BGG reports it: shortest form, no rounding.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Plays renders a play count with thousands separators.
func Plays(n int) string {
	return humanize.Comma(int64(n))
}

// sameNumber compares two numeric strings by value; blanks count as zero.
func sameNumber(a, b string) bool {
	return toNumber(a) == toNumber(b)
}

func toNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return -1
	}
	return v
}
