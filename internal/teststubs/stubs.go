package teststubs

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/bggshelf/internal/domain/collection"
	"github.com/preston-bernstein/bggshelf/internal/domain/detail"
)

// StubProvider is a test double for providers.CollectionProvider and
// providers.DetailProvider.
type StubProvider struct {
	Games     []collection.GameSummary
	Err       error
	Detail    detail.GameDetail
	DetailErr error

	// Gate, when set, blocks FetchCollection until it is closed or the
	// context ends. Entered receives one signal per call once it is blocked.
	Gate    chan struct{}
	Entered chan string

	Calls       atomic.Int32
	DetailCalls atomic.Int32
	LastUser    atomic.Value
	LastID      atomic.Int64
}

// FetchCollection returns configured games and error while tracking calls.
func (s *StubProvider) FetchCollection(ctx context.Context, username string) ([]collection.GameSummary, error) {
	s.Calls.Add(1)
	s.LastUser.Store(username)
	if s.Entered != nil {
		s.Entered <- username
	}
	if s.Gate != nil {
		select {
		case <-s.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]collection.GameSummary(nil), s.Games...), nil
}

// FetchDetail returns the configured detail and error while tracking calls.
func (s *StubProvider) FetchDetail(ctx context.Context, id int) (detail.GameDetail, error) {
	_ = ctx
	s.DetailCalls.Add(1)
	s.LastID.Store(int64(id))
	if s.DetailErr != nil {
		return detail.GameDetail{}, s.DetailErr
	}
	d := s.Detail
	if d.ID == 0 {
		d.ID = id
	}
	return d, nil
}

// User returns the username of the most recent FetchCollection call.
func (s *StubProvider) User() string {
	u, _ := s.LastUser.Load().(string)
	return u
}

// PerUserProvider answers FetchCollection from a map keyed by username and
// can hold individual users until released.
type PerUserProvider struct {
	Games   map[string][]collection.GameSummary
	Gates   map[string]chan struct{}
	Entered chan string
	Calls   atomic.Int32
}

// FetchCollection returns the games configured for username.
func (p *PerUserProvider) FetchCollection(ctx context.Context, username string) ([]collection.GameSummary, error) {
	p.Calls.Add(1)
	if p.Entered != nil {
		p.Entered <- username
	}
	if gate, ok := p.Gates[username]; ok {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return append([]collection.GameSummary(nil), p.Games[username]...), nil
}
