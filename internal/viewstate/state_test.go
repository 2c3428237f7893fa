package viewstate

import (
	"testing"

	"github.com/preston-bernstein/bggshelf/internal/domain/collection"
)

func TestNewIsCollapsedAndSortedByName(t *testing.T) {
	s := New()
	if s.SortKey != collection.SortGameName || !s.SortAscending {
		t.Fatalf("unexpected initial sort %+v", s)
	}
	if s.HasExpanded() {
		t.Fatalf("expected nothing expanded, got %q", s.Expanded)
	}
}

func TestClickItemTogglesSingleExpansion(t *testing.T) {
	s := New()

	s.ClickItem("Catan")
	if !s.IsExpanded("Catan") {
		t.Fatalf("expected Catan expanded, got %q", s.Expanded)
	}

	s.ClickItem("Azul")
	if !s.IsExpanded("Azul") || s.IsExpanded("Catan") {
		t.Fatalf("expected only Azul expanded, got %q", s.Expanded)
	}

	s.ClickItem("Azul")
	if s.HasExpanded() {
		t.Fatalf("expected clicking the open row to collapse it, got %q", s.Expanded)
	}
}

func TestClickSortHeaderTransitions(t *testing.T) {
	s := New()

	s.ClickSortHeader(collection.SortGameName)
	if s.SortKey != collection.SortGameName || s.SortAscending {
		t.Fatalf("expected same key to flip direction, got %+v", s)
	}

	s.ClickSortHeader(collection.SortNumPlays)
	if s.SortKey != collection.SortNumPlays || s.SortAscending {
		t.Fatalf("expected numeric key to start descending, got %+v", s)
	}

	s.ClickSortHeader(collection.SortNumPlays)
	if !s.SortAscending {
		t.Fatalf("expected second click to flip to ascending, got %+v", s)
	}

	s.ClickSortHeader(collection.SortGameName)
	if s.SortKey != collection.SortGameName || !s.SortAscending {
		t.Fatalf("expected name to start ascending, got %+v", s)
	}
}

func TestClickSortHeaderAlwaysCollapses(t *testing.T) {
	for _, key := range collection.SortKeys {
		s := New()
		s.ClickItem("Catan")
		s.ClickSortHeader(key)
		if s.HasExpanded() {
			t.Fatalf("expected %s header click to collapse, got %q", key, s.Expanded)
		}
	}
}

func TestReset(t *testing.T) {
	s := New()
	s.ClickSortHeader(collection.SortDelta)
	s.ClickItem("Catan")
	s.Reset()
	if s != New() {
		t.Fatalf("expected reset to initial state, got %+v", s)
	}
}

func TestClickItemEmptyKeyIsNoop(t *testing.T) {
	s := New()
	s.ClickItem("")
	if s.HasExpanded() {
		t.Fatal("expected empty key to leave state collapsed")
	}
}
