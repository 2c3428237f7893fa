package providers

import (
	"context"

	"github.com/preston-bernstein/bggshelf/internal/domain/collection"
	"github.com/preston-bernstein/bggshelf/internal/domain/detail"
)

// CollectionProvider fetches a user's owned games, normalized into summaries
// in upstream document order.
type CollectionProvider interface {
	FetchCollection(ctx context.Context, username string) ([]collection.GameSummary, error)
}

// DetailProvider fetches and aggregates the expanded view of one game.
type DetailProvider interface {
	FetchDetail(ctx context.Context, id int) (detail.GameDetail, error)
}

// ShelfProvider combines all provider capabilities.
type ShelfProvider interface {
	CollectionProvider
	DetailProvider
}
