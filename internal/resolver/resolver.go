// Package resolver turns failed symbol lookups into actionable outcomes.
//
// The upstream API models frameworks and symbols as differently-shaped
// documents at different paths, so a caller asking for "SwiftUI" as if it
// were a symbol would only see an opaque fetch failure. The resolver
// intercepts that failure once: it checks whether the requested path
// actually names a known technology and, if so, serves a framework
// overview instead. When nothing matches, the caller gets structured
// not-found guidance rather than a raw error.
package resolver

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/cferro/appledocs-mcp/internal/fetcher"
	"github.com/cferro/appledocs-mcp/pkg/types"
)

// Docs is the upstream document source the resolver reads from.
type Docs interface {
	Technologies(ctx context.Context) (*types.TechnologyIndex, error)
	Framework(ctx context.Context, name string) (*types.Document, error)
	Symbol(ctx context.Context, path string) (*types.Document, error)
}

// Kind discriminates lookup outcomes.
type Kind int

const (
	// KindSymbol means the path resolved to a symbol document directly.
	KindSymbol Kind = iota
	// KindFramework means the path named a known framework; the outcome
	// carries an overview of it.
	KindFramework
	// KindNotFound means the path matched nothing the upstream knows.
	KindNotFound
)

// TopicSummary names one topic section and how many members it lists.
type TopicSummary struct {
	Title string
	Count int
}

// FrameworkGuidance is the overview payload for a detected framework.
type FrameworkGuidance struct {
	Name        string
	Description string
	Platforms   string
	Topics      []TopicSummary
}

// NotFoundGuidance is the terminal payload for an unrecognized path.
type NotFoundGuidance struct {
	Path string
}

// Outcome is the result of a documentation lookup. Exactly one of Symbol,
// Framework, or NotFound is set, matching Kind.
type Outcome struct {
	Kind      Kind
	Symbol    *types.Document
	Framework *FrameworkGuidance
	NotFound  *NotFoundGuidance
}

// Resolver looks up documentation paths with framework fallback.
type Resolver struct {
	docs   Docs
	logger *slog.Logger
}

// New creates a Resolver reading from docs.
func New(docs Docs, logger *slog.Logger) *Resolver {
	return &Resolver{docs: docs, logger: logger}
}

// Lookup fetches the document at path. On a fetch failure it attempts
// framework detection; the returned Outcome is always usable and no raw
// upstream error escapes.
func (r *Resolver) Lookup(ctx context.Context, path string) *Outcome {
	doc, err := r.docs.Symbol(ctx, path)
	if err == nil {
		return &Outcome{Kind: KindSymbol, Symbol: doc}
	}
	r.logger.Debug("symbol fetch failed, attempting framework fallback",
		"path", path,
		"error", err)

	name, ok := r.detectFramework(ctx, path)
	if !ok {
		return notFound(path)
	}

	fw, err := r.docs.Framework(ctx, name)
	if err != nil {
		// Detection succeeding does not guarantee the framework document
		// is reachable; degrade to not-found guidance.
		r.logger.Warn("detected framework but overview fetch failed",
			"framework", name,
			"error", err)
		return notFound(path)
	}

	return &Outcome{Kind: KindFramework, Framework: buildGuidance(name, fw)}
}

// detectFramework checks the failed path's first segment, and the whole
// cleaned path, against every known technology title. Titles match
// case-insensitively, with a second pass ignoring whitespace so multi-word
// names written as one path segment ("swiftcharts") still resolve.
func (r *Resolver) detectFramework(ctx context.Context, path string) (string, bool) {
	cleaned := fetcher.CleanPath(path)
	first, _, _ := strings.Cut(cleaned, "/")

	index, err := r.docs.Technologies(ctx)
	if err != nil {
		r.logger.Warn("technology index unavailable during fallback", "error", err)
		return "", false
	}

	candidates := []string{first}
	if cleaned != first {
		candidates = append(candidates, cleaned)
	}
	for _, tech := range index.Technologies() {
		for _, candidate := range candidates {
			if titleMatches(tech.Title, candidate) {
				return tech.Title, true
			}
		}
	}
	return "", false
}

func titleMatches(title, candidate string) bool {
	if title == "" || candidate == "" {
		return false
	}
	if strings.EqualFold(title, candidate) {
		return true
	}
	return strings.EqualFold(foldSpace(title), foldSpace(candidate))
}

func foldSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func notFound(path string) *Outcome {
	return &Outcome{Kind: KindNotFound, NotFound: &NotFoundGuidance{Path: path}}
}

func buildGuidance(name string, doc *types.Document) *FrameworkGuidance {
	g := &FrameworkGuidance{
		Name:        name,
		Description: types.FlattenAbstract(doc.Abstract),
		Platforms:   types.FormatPlatforms(doc.Metadata.Platforms),
	}
	for _, section := range doc.TopicSections {
		if section.Title == "" {
			continue
		}
		g.Topics = append(g.Topics, TopicSummary{
			Title: section.Title,
			Count: len(section.Identifiers),
		})
	}
	return g
}
