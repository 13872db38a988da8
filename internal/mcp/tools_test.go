package mcp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cferro/appledocs-mcp/internal/config"
)

// upstreamFixture serves a minimal documentation API: a technology index
// with one framework plus that framework's page and one symbol page.
func upstreamFixture() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/documentation/technologies.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"references": {
				"doc://uikit": {"title": "UIKit", "kind": "symbol", "role": "collection",
					"abstract": [{"type": "text", "text": "Build iOS interfaces."}]},
				"doc://notes": {"title": "Release Notes", "kind": "article", "role": "article"}
			}
		}`))
	})
	mux.HandleFunc("/documentation/uikit.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"metadata": {"title": "UIKit", "platforms": [{"name": "iOS", "introducedAt": "2.0"}]},
			"abstract": [{"type": "text", "text": "Build iOS interfaces."}],
			"topicSections": [{"title": "Views", "identifiers": ["doc://uiview"]}],
			"references": {
				"doc://uiview": {"title": "UIView", "kind": "class", "url": "/documentation/uikit/uiview"},
				"doc://uiviewcontroller": {"title": "UIViewController", "kind": "class", "url": "/documentation/uikit/uiviewcontroller"}
			}
		}`))
	})
	mux.HandleFunc("/documentation/uikit/uiview.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"metadata": {"title": "UIView", "platforms": [{"name": "iOS", "introducedAt": "2.0"}]},
			"abstract": [{"type": "text", "text": "A rectangular view."}]
		}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	return mux
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	ts := httptest.NewServer(upstreamFixture())
	t.Cleanup(ts.Close)

	cfg := &config.Config{
		BaseURL:        ts.URL,
		RequestTimeout: 5 * time.Second,
		CacheTTL:       time.Minute,
		CacheCapacity:  64,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(cfg, logger)
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestHandleListTechnologies(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleListTechnologies(context.Background(), callRequest(nil))
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, "## Frameworks")
	assert.Contains(t, text, "**UIKit**: Build iOS interfaces.")
	assert.Contains(t, text, "**Release Notes**")
}

func TestHandleGetDocumentation_Symbol(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleGetDocumentation(context.Background(), callRequest(map[string]interface{}{
		"path": "uikit/uiview",
	}))
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, "# UIView")
	assert.Contains(t, text, "A rectangular view.")
}

func TestHandleGetDocumentation_FrameworkFallback(t *testing.T) {
	s := newTestServer(t)

	// The direct fetch 404s, but the path's first segment names a known
	// framework, so the resolver serves the framework overview instead.
	res, err := s.handleGetDocumentation(context.Background(), callRequest(map[string]interface{}{
		"path": "uikit/nosuchsymbol",
	}))
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, "# UIKit Framework")
	assert.Contains(t, text, "## Next Steps")
}

func TestHandleGetDocumentation_NotFoundIsGuidanceNotError(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleGetDocumentation(context.Background(), callRequest(map[string]interface{}{
		"path": "NotARealThing123",
	}))
	require.NoError(t, err, "unrecognized paths must produce guidance, not a protocol error")

	text := resultText(t, res)
	assert.Contains(t, text, "No Documentation Found")
	assert.Contains(t, text, "NotARealThing123")
}

func TestHandleGetDocumentation_MissingPath(t *testing.T) {
	s := newTestServer(t)

	_, err := s.handleGetDocumentation(context.Background(), callRequest(map[string]interface{}{}))
	requireMCPError(t, err, ErrorCodeInvalidParams)
}

func TestHandleSearchSymbols_FrameworkScope(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleSearchSymbols(context.Background(), callRequest(map[string]interface{}{
		"query":     "*ViewController",
		"framework": "UIKit",
	}))
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, `framework "UIKit"`)
	assert.Contains(t, text, "UIViewController")
	assert.NotContains(t, text, "1. **UIView**\n")
}

func TestHandleSearchSymbols_GlobalScope(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleSearchSymbols(context.Background(), callRequest(map[string]interface{}{
		"query": "*View*",
	}))
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, "all technologies")
	assert.Contains(t, text, "UIView")
}

func TestHandleSearchSymbols_Validation(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.handleSearchSymbols(ctx, callRequest(map[string]interface{}{}))
	requireMCPError(t, err, ErrorCodeInvalidParams)

	_, err = s.handleSearchSymbols(ctx, callRequest(map[string]interface{}{
		"query":       "View",
		"max_results": float64(500),
	}))
	requireMCPError(t, err, ErrorCodeInvalidParams)
}

func TestHandleSearchSymbols_UnknownFrameworkIsInternalError(t *testing.T) {
	s := newTestServer(t)

	_, err := s.handleSearchSymbols(context.Background(), callRequest(map[string]interface{}{
		"query":     "View",
		"framework": "NoSuchKit",
	}))
	requireMCPError(t, err, ErrorCodeInternalError)
}

func requireMCPError(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var mcpErr *MCPError
	require.True(t, errors.As(err, &mcpErr))
	assert.Equal(t, code, mcpErr.Code)
}

func TestMCPError_Message(t *testing.T) {
	err := newMCPError(ErrorCodeInvalidParams, "invalid params", nil)
	assert.True(t, strings.HasPrefix(err.Error(), "MCP error -32602"))
}
