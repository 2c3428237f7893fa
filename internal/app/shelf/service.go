package shelf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/bggshelf/internal/domain/collection"
	"github.com/preston-bernstein/bggshelf/internal/domain/detail"
	"github.com/preston-bernstein/bggshelf/internal/logging"
	"github.com/preston-bernstein/bggshelf/internal/metrics"
	"github.com/preston-bernstein/bggshelf/internal/providers"
	"github.com/preston-bernstein/bggshelf/internal/viewstate"
)

var (
	// ErrEmptyUsername is returned for a blank search; nothing changes.
	ErrEmptyUsername = errors.New("shelf: username is required")
	// ErrSuperseded is returned by a search that finished after a newer one
	// was submitted. Its result is discarded.
	ErrSuperseded = errors.New("shelf: search superseded by a newer search")
	// ErrUnknownGame is returned when a row name is not in the current collection.
	ErrUnknownGame = errors.New("shelf: no game with that name in the collection")
)

// Store defines the contract for holding the current collection.
type Store interface {
	ListGames() []collection.GameSummary
	GameByName(name string) (collection.GameSummary, bool)
	SetGames(owner string, games []collection.GameSummary)
	Owner() string
	Clear()
}

// Service coordinates one browsing session: searching a user's collection,
// sorting and expanding rows, and loading details for the expanded row.
// It is safe for concurrent use; the most recently submitted search wins.
type Service struct {
	collections providers.CollectionProvider
	details     providers.DetailProvider
	store       Store
	logger      *slog.Logger
	metrics     *metrics.Recorder
	sessionID   string

	mu         sync.Mutex
	state      viewstate.ViewState
	generation uint64
}

// NewService constructs a Service. logger and recorder may be nil.
func NewService(collections providers.CollectionProvider, details providers.DetailProvider, store Store, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	sessionID := uuid.NewString()
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldSessionID, sessionID))
	}
	return &Service{
		collections: collections,
		details:     details,
		store:       store,
		logger:      logger,
		metrics:     recorder,
		sessionID:   sessionID,
		state:       viewstate.New(),
	}
}

// SessionID identifies this session in logs.
func (s *Service) SessionID() string {
	return s.sessionID
}

// Search replaces the collection with username's owned games and resets the
// view. It returns the number of games loaded. On failure the collection is
// emptied; no partial results are kept.
func (s *Service) Search(ctx context.Context, username string) (int, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, ErrEmptyUsername
	}
	if s.collections == nil {
		return 0, providers.ErrProviderUnavailable
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state.Reset()
	s.mu.Unlock()

	logger := logging.FromContext(ctx, s.logger)
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldUsername, username))
		ctx = logging.WithLogger(ctx, logger)
	}

	start := time.Now()
	games, err := s.collections.FetchCollection(ctx, username)
	elapsed := time.Since(start)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.metrics.RecordSearch(elapsed, len(games), err, true)
		logging.Debug(logger, "discarding superseded search")
		return 0, ErrSuperseded
	}
	s.metrics.RecordSearch(elapsed, len(games), err, false)

	if err != nil {
		s.store.Clear()
		logging.Warn(logger, "search failed", slog.Any("error", err))
		return 0, err
	}

	s.store.SetGames(username, games)
	logging.Info(logger, "search complete",
		slog.Int(logging.FieldCount, len(games)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return len(games), nil
}

// Owner returns the username whose collection is loaded.
func (s *Service) Owner() string {
	return s.store.Owner()
}

// Rows returns the loaded games ordered by the current sort column and direction.
func (s *Service) Rows() []collection.GameSummary {
	state := s.State()
	return collection.Sort(s.store.ListGames(), state.SortKey, state.SortAscending)
}

// ClickSort selects a sort column, or flips direction when it is already active.
func (s *Service) ClickSort(key collection.SortKey) error {
	parsed, err := collection.ParseSortKey(string(key))
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.state.ClickSortHeader(parsed)
	state := s.state
	s.mu.Unlock()

	logging.Debug(s.logger, "sort changed",
		slog.String(logging.FieldSortKey, string(state.SortKey)),
		slog.Bool("ascending", state.SortAscending),
	)
	return nil
}

// ClickItem toggles the row with the given game name.
func (s *Service) ClickItem(name string) error {
	if _, ok := s.store.GameByName(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGame, name)
	}

	s.mu.Lock()
	s.state.ClickItem(name)
	s.mu.Unlock()
	return nil
}

// Detail loads the expanded row's details. It reports false when no row is
// expanded. Details are fetched on every call.
func (s *Service) Detail(ctx context.Context) (detail.GameDetail, bool, error) {
	state := s.State()
	if !state.HasExpanded() {
		return detail.GameDetail{}, false, nil
	}

	game, ok := s.store.GameByName(state.Expanded)
	if !ok {
		return detail.GameDetail{}, true, fmt.Errorf("%w: %q", ErrUnknownGame, state.Expanded)
	}
	if s.details == nil {
		return detail.GameDetail{}, true, providers.ErrProviderUnavailable
	}

	logger := logging.FromContext(ctx, s.logger)
	if logger != nil {
		logger = logger.With(slog.Int(logging.FieldGameID, game.ID))
		ctx = logging.WithLogger(ctx, logger)
	}

	start := time.Now()
	d, err := s.details.FetchDetail(ctx, game.ID)
	s.metrics.RecordDetail(time.Since(start), err)
	if err != nil {
		logging.Warn(logger, "detail load failed", slog.Any("error", err))
		return detail.GameDetail{}, true, err
	}
	return d, true, nil
}

// State returns a copy of the current view state.
func (s *Service) State() viewstate.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
