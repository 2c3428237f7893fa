package fixture

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/preston-bernstein/bggshelf/internal/providers"
	"github.com/preston-bernstein/bggshelf/internal/testutil"
)

func TestFetchCollectionReturnsSampleGames(t *testing.T) {
	p := New()
	games, err := p.FetchCollection(context.Background(), "anyone")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(games) != 4 {
		t.Fatalf("expected 4 games, got %d", len(games))
	}
	if games[0].ID != 13 || games[0].GameName != "Catan" {
		t.Fatalf("unexpected first game: %+v", games[0])
	}
	if games[1].GameName != "Tzolk'in: The Mayan Calendar" {
		t.Fatalf("expected cleaned name, got %q", games[1].GameName)
	}
}

func TestFetchCollectionThrottledUser(t *testing.T) {
	_, err := New().FetchCollection(context.Background(), "Throttled")
	if _, ok := providers.AsRateLimitError(err); !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
}

func TestFetchCollectionRejectsBlankUser(t *testing.T) {
	if _, err := New().FetchCollection(context.Background(), " "); err == nil {
		t.Fatalf("expected error for blank user")
	}
}

func TestFetchCollectionHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().FetchCollection(ctx, "alice"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestEveryCollectionGameHasDetail(t *testing.T) {
	p := New()
	games, err := p.FetchCollection(context.Background(), "alice")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, g := range games {
		d, err := p.FetchDetail(context.Background(), g.ID)
		if err != nil {
			t.Fatalf("detail for %d: %v", g.ID, err)
		}
		if d.ID != g.ID || d.FirstPublished == "" || len(d.PlayerCountRecommendations) == 0 {
			t.Fatalf("unexpected detail for %d: %+v", g.ID, d)
		}
	}
}

func TestFetchDetailMatchesSample(t *testing.T) {
	d, err := New().FetchDetail(context.Background(), 13)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.Description != testutil.ThingDescription {
		t.Fatalf("unexpected description %q", d.Description)
	}
	if got := d.Summary().String(); got != testutil.ThingSummary {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestFetchDetailUnknownID(t *testing.T) {
	_, err := New().FetchDetail(context.Background(), 999)
	st, ok := providers.AsStatusError(err)
	if !ok || st.StatusCode != 404 {
		t.Fatalf("expected 404 status error, got %v", err)
	}
}

func TestFetchDetailMissingPoll(t *testing.T) {
	p := &Provider{files: fstest.MapFS{
		"data/thing_13.xml": {Data: []byte(testutil.ThingMissingPollXML)},
	}}
	_, err := p.FetchDetail(context.Background(), 13)
	var parseErr *providers.ParseError
	if !errors.As(err, &parseErr) || parseErr.Stage != "detail" {
		t.Fatalf("expected detail parse error, got %v", err)
	}
}
