package collection

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey names a sortable column.
type SortKey string

const (
	SortGameName      SortKey = "gameName"
	SortYearPublished SortKey = "yearPublished"
	SortRating        SortKey = "rating"
	SortNumPlays      SortKey = "numPlays"
	SortAvgRating     SortKey = "avgRating"
	SortGeekRating    SortKey = "geekRating"
	SortDelta         SortKey = "delta"
)

// ErrUnknownSortKey is returned by ParseSortKey for unrecognised column ids.
var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKeys lists the columns in header order.
var SortKeys = []SortKey{
	SortGameName,
	SortYearPublished,
	SortRating,
	SortNumPlays,
	SortAvgRating,
	SortGeekRating,
	SortDelta,
}

// ParseSortKey resolves a header id. Matching is case-insensitive.
func ParseSortKey(raw string) (SortKey, error) {
	raw = strings.TrimSpace(raw)
	for _, k := range SortKeys {
		if strings.EqualFold(raw, string(k)) {
			return k, nil
		}
	}
	return "", ErrUnknownSortKey
}

// Numeric reports whether the key compares by subtraction rather than text.
func (k SortKey) Numeric() bool {
	return k != SortGameName
}

// DefaultAscending is the direction a key starts in when first selected:
// names A to Z, numbers highest first.
func (k SortKey) DefaultAscending() bool {
	return !k.Numeric()
}

// Sort returns a new slice ordered by key. The input is left untouched.
// Ties keep their input order; there is no secondary key.
func Sort(records []GameSummary, key SortKey, ascending bool) []GameSummary {
	out := slices.Clone(records)
	if out == nil {
		return []GameSummary{}
	}

	var cmp func(a, b GameSummary) int
	if key.Numeric() {
		cmp = func(a, b GameSummary) int {
			return compareFloat(numericValue(a, key), numericValue(b, key))
		}
	} else {
		col := collate.New(language.English)
		cmp = func(a, b GameSummary) int {
			return col.CompareString(a.GameName, b.GameName)
		}
	}

	slices.SortStableFunc(out, func(a, b GameSummary) int {
		if ascending {
			return cmp(a, b)
		}
		return cmp(b, a)
	})
	return out
}

// numericValue coerces a column to a number. Empty and unparsable values count
// as zero.
func numericValue(g GameSummary, key SortKey) float64 {
	switch key {
	case SortYearPublished:
		v, err := strconv.ParseFloat(strings.TrimSpace(g.YearPublished), 64)
		if err != nil {
			return 0
		}
		return v
	case SortRating:
		return g.Rating.Or(0)
	case SortNumPlays:
		return float64(g.NumPlays)
	case SortAvgRating:
		return g.AvgRating
	case SortGeekRating:
		return g.GeekRating
	case SortDelta:
		return g.Delta.Or(0)
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	d := a - b
	switch {
	case math.IsNaN(d) || d == 0:
		return 0
	case d < 0:
		return -1
	default:
		return 1
	}
}
