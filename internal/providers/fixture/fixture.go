package fixture

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/preston-bernstein/bggshelf/internal/domain/collection"
	"github.com/preston-bernstein/bggshelf/internal/domain/detail"
	"github.com/preston-bernstein/bggshelf/internal/providers"
	"github.com/preston-bernstein/bggshelf/internal/xmltree"
)

const (
	providerName = "fixture"

	// ThrottledUser makes FetchCollection answer like a throttled upstream.
	ThrottledUser = "throttled"
)

//go:embed data/*.xml
var data embed.FS

// Provider serves a fixed sample collection and its detail documents, for
// offline demos and local testing. Every user owns the same games.
type Provider struct {
	files fs.FS
}

// New creates a fixture provider backed by the embedded sample documents.
func New() *Provider {
	return &Provider{files: data}
}

// FetchCollection returns the sample collection for any non-blank username.
func (p *Provider) FetchCollection(ctx context.Context, username string) ([]collection.GameSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("fixture: username is required")
	}
	if strings.EqualFold(username, ThrottledUser) {
		return nil, &providers.RateLimitError{Provider: providerName, StatusCode: http.StatusTooManyRequests}
	}

	root, err := p.parse("data/collection.xml")
	if err != nil {
		return nil, err
	}
	games, err := collection.NormalizeDocument(root)
	if err != nil {
		return nil, &providers.ParseError{Provider: providerName, Stage: "collection", Err: err}
	}
	return games, nil
}

// FetchDetail returns the sample detail for id, or a 404 StatusError when
// there is no document for it.
func (p *Provider) FetchDetail(ctx context.Context, id int) (detail.GameDetail, error) {
	if err := ctx.Err(); err != nil {
		return detail.GameDetail{}, err
	}
	root, err := p.parse(fmt.Sprintf("data/thing_%d.xml", id))
	if errors.Is(err, fs.ErrNotExist) {
		return detail.GameDetail{}, &providers.StatusError{Provider: providerName, StatusCode: http.StatusNotFound}
	}
	if err != nil {
		return detail.GameDetail{}, err
	}
	d, err := detail.Aggregate(root)
	if err != nil {
		return detail.GameDetail{}, &providers.ParseError{Provider: providerName, Stage: "detail", Err: err}
	}
	return d, nil
}

func (p *Provider) parse(name string) (*xmltree.Node, error) {
	f, err := p.files.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := xmltree.Parse(f)
	if err != nil {
		return nil, &providers.ParseError{Provider: providerName, Stage: "xml", Err: err}
	}
	return root, nil
}
