// Package fetcher retrieves Apple Developer Documentation JSON through the
// shared document cache. All requests carry the same browser-like headers
// and a fixed timeout; failures of any kind surface as *types.FetchError.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cferro/appledocs-mcp/internal/cache"
	"github.com/cferro/appledocs-mcp/pkg/types"
)

const (
	// DefaultBaseURL is the root of Apple's documentation data API.
	DefaultBaseURL = "https://developer.apple.com/tutorials/data"
	// DefaultTimeout bounds every upstream request.
	DefaultTimeout = 10 * time.Second

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	referer   = "https://developer.apple.com/documentation"

	// technologiesResource is the logical name of the technology index.
	technologiesResource = "technologies"
)

// Client fetches upstream documents. All fetches go through the cache, so
// repeated lookups within the TTL window cost one network call.
type Client struct {
	http    *http.Client
	baseURL string
	cache   *cache.Cache
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the upstream base URL. Used by tests and by the
// config layer.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New creates a Client backed by docs.
func New(docs *cache.Cache, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL: DefaultBaseURL,
		cache:   docs,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Technologies fetches and decodes the technology index.
func (c *Client) Technologies(ctx context.Context) (*types.TechnologyIndex, error) {
	url := c.baseURL + "/documentation/technologies.json"
	raw, err := c.get(ctx, technologiesResource, url)
	if err != nil {
		return nil, err
	}

	var index types.TechnologyIndex
	if err := json.Unmarshal(raw, &index); err != nil {
		return nil, &types.FetchError{Resource: technologiesResource, URL: url, Err: err}
	}
	return &index, nil
}

// Framework fetches the overview document for one framework by name.
// Framework URLs use the lowercased name with spaces removed, so multi-word
// titles like "Swift Charts" resolve to documentation/swiftcharts.json.
func (c *Client) Framework(ctx context.Context, name string) (*types.Document, error) {
	slug := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	url := c.baseURL + "/documentation/" + slug + ".json"
	return c.document(ctx, name, url)
}

// Symbol fetches the document at an arbitrary documentation path, for
// example "swiftui/view" or "documentation/uikit/uiviewcontroller".
func (c *Client) Symbol(ctx context.Context, path string) (*types.Document, error) {
	cleaned := CleanPath(path)
	url := c.baseURL + "/documentation/" + cleaned + ".json"
	return c.document(ctx, path, url)
}

// CleanPath normalizes a user-supplied documentation path: surrounding
// slashes, an optional "documentation/" prefix, and an optional ".json"
// suffix are stripped, and the remainder is lowercased.
func CleanPath(path string) string {
	cleaned := strings.Trim(path, "/")
	cleaned = strings.TrimPrefix(cleaned, "documentation/")
	cleaned = strings.TrimSuffix(cleaned, ".json")
	return strings.ToLower(cleaned)
}

func (c *Client) document(ctx context.Context, resource, url string) (*types.Document, error) {
	raw, err := c.get(ctx, resource, url)
	if err != nil {
		return nil, err
	}

	var doc types.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &types.FetchError{Resource: resource, URL: url, Err: err}
	}
	return &doc, nil
}

// get returns the raw document at url, served from cache when fresh.
func (c *Client) get(ctx context.Context, resource, url string) (json.RawMessage, error) {
	return c.cache.GetOrFetch(ctx, url, func(ctx context.Context) (json.RawMessage, error) {
		c.logger.Debug("fetching document", "resource", resource, "url", url)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, &types.FetchError{Resource: resource, URL: url, Err: err}
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Referer", referer)
		req.Header.Set("DNT", "1")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, &types.FetchError{Resource: resource, URL: url, Err: err}
		}
		defer func() { _ = resp.Body.Close() }()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, &types.FetchError{Resource: resource, URL: url, Err: types.ErrNotFound}
		case resp.StatusCode < 200 || resp.StatusCode > 299:
			return nil, &types.FetchError{
				Resource: resource,
				URL:      url,
				Err:      fmt.Errorf("unexpected status %s", resp.Status),
			}
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &types.FetchError{Resource: resource, URL: url, Err: err}
		}
		if !json.Valid(body) {
			return nil, &types.FetchError{Resource: resource, URL: url, Err: fmt.Errorf("malformed JSON response")}
		}
		return body, nil
	})
}
