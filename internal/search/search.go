package search

import (
	"context"
	"log/slog"
	"sort"

	"github.com/cferro/appledocs-mcp/pkg/types"
)

const (
	// DefaultFrameworkLimit caps a framework-scoped search.
	DefaultFrameworkLimit = 20
	// DefaultGlobalLimit caps a global search across frameworks.
	DefaultGlobalLimit = 50
	// MaxLimit is the hard ceiling for either scope.
	MaxLimit = 100

	// maxCandidateFrameworks bounds how many frameworks a global search
	// fetches. Throughput tradeoff: one global search costs at most this
	// many upstream calls plus the index fetch.
	maxCandidateFrameworks = 20
)

// Docs is the upstream document source the engine reads from.
type Docs interface {
	Technologies(ctx context.Context) (*types.TechnologyIndex, error)
	Framework(ctx context.Context, name string) (*types.Document, error)
}

// Engine runs framework-scoped and global symbol searches.
type Engine struct {
	docs   Docs
	logger *slog.Logger
}

// NewEngine creates an Engine reading from docs.
func NewEngine(docs Docs, logger *slog.Logger) *Engine {
	return &Engine{docs: docs, logger: logger}
}

// scoredResult pairs a result with its precomputed rank tier.
type scoredResult struct {
	result types.SearchResult
	score  int
}

// Framework searches one framework's references for the query. References
// are visited in document order and collection stops at maxResults, so a
// large framework's later entries never get filtered once the cap is hit.
// The collected set is then stable-sorted by match quality. A failed
// framework fetch propagates to the caller.
func (e *Engine) Framework(ctx context.Context, framework, query string, f Filters, maxResults int) ([]types.SearchResult, error) {
	maxResults = clampLimit(maxResults, DefaultFrameworkLimit)

	doc, err := e.docs.Framework(ctx, framework)
	if err != nil {
		return nil, err
	}

	match := CompilePattern(query)
	collected := make([]scoredResult, 0, maxResults)
	for _, id := range doc.References.IDs() {
		ref, ok := doc.References.Get(id)
		if !ok {
			continue
		}
		if !matchReference(ref, match, f) {
			continue
		}
		collected = append(collected, scoredResult{
			result: makeResult(ref, doc, framework),
			score:  scoreTitle(ref.Title, query),
		})
		if len(collected) >= maxResults {
			break
		}
	}

	// Stable sort keeps document order between equal-quality matches.
	sort.SliceStable(collected, func(i, j int) bool {
		return collected[i].score < collected[j].score
	})

	results := make([]types.SearchResult, len(collected))
	for i, sr := range collected {
		results[i] = sr.result
	}
	return results, nil
}

// Global searches every framework-level technology for the query,
// sequentially, until maxResults are accumulated. Each framework
// contributes at most a quarter of the budget, spreading results across
// roughly four frameworks. A single framework's failure is logged and
// skipped; the call fails only when the technology index is unreachable.
func (e *Engine) Global(ctx context.Context, query string, f Filters, maxResults int) ([]types.SearchResult, error) {
	maxResults = clampLimit(maxResults, DefaultGlobalLimit)

	index, err := e.docs.Technologies(ctx)
	if err != nil {
		return nil, err
	}

	frameworks := index.Frameworks()
	if len(frameworks) > maxCandidateFrameworks {
		frameworks = frameworks[:maxCandidateFrameworks]
	}

	perFramework := (maxResults + 3) / 4

	var results []types.SearchResult
	for _, tech := range frameworks {
		if len(results) >= maxResults {
			break
		}
		sub, err := e.Framework(ctx, tech.Title, query, f, perFramework)
		if err != nil {
			e.logger.Warn("framework search failed, skipping",
				"framework", tech.Title,
				"error", err)
			continue
		}
		results = append(results, sub...)
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// makeResult projects a matched reference into a display result. Platform
// availability falls back to the owning document's metadata when the
// reference carries none.
func makeResult(ref types.Reference, doc *types.Document, framework string) types.SearchResult {
	platforms := ref.Platforms
	if len(platforms) == 0 {
		platforms = doc.Metadata.Platforms
	}
	return types.SearchResult{
		Title:       ref.Title,
		Description: types.FlattenAbstract(ref.Abstract),
		Path:        ref.URL,
		Framework:   framework,
		SymbolKind:  ref.Kind,
		Platforms:   types.FormatPlatforms(platforms),
	}
}

func clampLimit(n, fallback int) int {
	if n <= 0 {
		return fallback
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}
