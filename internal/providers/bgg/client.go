package bgg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/bggshelf/internal/domain/collection"
	"github.com/preston-bernstein/bggshelf/internal/domain/detail"
	"github.com/preston-bernstein/bggshelf/internal/metrics"
	"github.com/preston-bernstein/bggshelf/internal/providers"
	"github.com/preston-bernstein/bggshelf/internal/xmltree"
)

// ErrEmptyUsername is returned when a collection is requested for a blank user.
var ErrEmptyUsername = errors.New("bgg: username is required")

// Config controls how the client reaches BoardGameGeek and the CORS relay.
type Config struct {
	CollectionURL string
	ThingURL      string
	ProxyURL      string
	HTTPClient    *http.Client
	Timeout       time.Duration
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
}

// Client fetches collections and game details from BoardGameGeek and maps
// them to domain models.
type Client struct {
	collectionURL string
	thingURL      string
	proxyURL      string
	httpClient    httpDoer
}

// NewClient constructs a BGG client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		collectionURL: normalizeBaseURL(cfg.CollectionURL, defaultCollectionURL),
		thingURL:      normalizeBaseURL(cfg.ThingURL, defaultThingURL),
		proxyURL:      normalizeBaseURL(cfg.ProxyURL, defaultProxyURL),
		httpClient:    resolveHTTPClient(cfg.HTTPClient, cfg.Timeout, cfg.Logger, cfg.Metrics),
	}
}

// FetchCollection retrieves the games owned by username, in feed order.
// A queued (202) response yields an empty list.
func (c *Client) FetchCollection(ctx context.Context, username string) ([]collection.GameSummary, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	body, err := c.get(ctx, c.collectionEndpoint(username))
	if err != nil {
		return nil, err
	}

	root, err := xmltree.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &providers.ParseError{Provider: providerName, Stage: "xml", Err: err}
	}
	if root.Name == "errors" {
		return nil, &providers.ParseError{Provider: providerName, Stage: "collection", Err: errors.New(upstreamMessage(root))}
	}

	games, err := collection.NormalizeDocument(root)
	if err != nil {
		return nil, &providers.ParseError{Provider: providerName, Stage: "collection", Err: err}
	}
	return games, nil
}

// FetchDetail retrieves one game's detail document through the relay and
// aggregates it.
func (c *Client) FetchDetail(ctx context.Context, id int) (detail.GameDetail, error) {
	body, err := c.get(ctx, c.detailEndpoint(id))
	if err != nil {
		return detail.GameDetail{}, err
	}

	contents, upstreamStatus := unwrapRelay(body)
	if upstreamStatus != 0 {
		if err := statusError(upstreamStatus, nil, contents); err != nil {
			return detail.GameDetail{}, err
		}
	}

	root, err := xmltree.ParseString(relayUnescape(contents))
	if err != nil {
		return detail.GameDetail{}, &providers.ParseError{Provider: providerName, Stage: "xml", Err: err}
	}

	d, err := detail.Aggregate(root)
	if err != nil {
		return detail.GameDetail{}, &providers.ParseError{Provider: providerName, Stage: "detail", Err: err}
	}
	if d.ID == 0 {
		d.ID = id
	}
	return d, nil
}

func (c *Client) collectionEndpoint(username string) string {
	return c.collectionURL + "/collection/" + url.PathEscape(username) + "?own=1"
}

func (c *Client) detailEndpoint(id int) string {
	target := c.thingURL + "/thing?id=" + strconv.Itoa(id)
	return c.proxyURL + "/get?url=" + url.QueryEscape(target)
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bgg: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, statusError(resp.StatusCode, resp.Header, string(snippet))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("bgg: read body: %w", err)
	}
	return body, nil
}

// statusError maps a non-2xx status to a typed error. BGG answers bursts with
// 429 or 503, both reported as throttling.
func statusError(status int, header http.Header, body string) error {
	if status >= 200 && status <= 299 {
		return nil
	}
	if status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: status,
			RetryAfter: parseRetryAfter(header.Get("Retry-After"), time.Now()),
			Message:    "BGG throttled the request",
		}
	}
	body = strings.TrimSpace(body)
	if len(body) > maxErrorBodyBytes {
		body = body[:maxErrorBodyBytes]
	}
	return &providers.StatusError{Provider: providerName, StatusCode: status, Body: body}
}

func parseRetryAfter(raw string, now time.Time) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

// upstreamMessage joins the <message> texts of an <errors> document.
func upstreamMessage(root *xmltree.Node) string {
	var msgs []string
	for _, e := range root.FindAll("error") {
		if m := e.Find("message"); m != nil && m.Value != "" {
			msgs = append(msgs, m.Value)
		}
	}
	if len(msgs) == 0 {
		return "upstream returned an error document"
	}
	return strings.Join(msgs, "; ")
}
