package viewstate

import "github.com/preston-bernstein/bggshelf/internal/domain/collection"

// ViewState is the list focus for one search session: the active sort column
// and direction, and the single expanded row, if any. Rows are identified by
// their display key (the game name).
//
// Mutate it only through ClickSortHeader, ClickItem and Reset.
type ViewState struct {
	SortKey       collection.SortKey `json:"sortKey"`
	SortAscending bool               `json:"sortAscending"`
	Expanded      string             `json:"expandedGameId,omitempty"`
}

// New returns the initial state: collapsed, sorted by name A to Z.
func New() ViewState {
	return ViewState{
		SortKey:       collection.SortGameName,
		SortAscending: true,
	}
}

// Reset returns the state to New. Called when a new search is submitted.
func (s *ViewState) Reset() {
	*s = New()
}

// IsExpanded reports whether the row with the given key is open.
func (s ViewState) IsExpanded(key string) bool {
	return s.Expanded != "" && s.Expanded == key
}

// HasExpanded reports whether any row is open.
func (s ViewState) HasExpanded() bool {
	return s.Expanded != ""
}

// ClickSortHeader selects a sort column. The same column flips direction; a new
// column starts in its default direction. Any expanded row is collapsed.
func (s *ViewState) ClickSortHeader(key collection.SortKey) {
	if key == s.SortKey {
		s.SortAscending = !s.SortAscending
	} else {
		s.SortKey = key
		s.SortAscending = key.DefaultAscending()
	}
	s.Expanded = ""
}

// ClickItem toggles a row. Opening a row closes whichever row was open.
func (s *ViewState) ClickItem(key string) {
	if key == s.Expanded {
		s.Expanded = ""
		return
	}
	s.Expanded = key
}
