package search

import (
	"strings"

	"github.com/cferro/appledocs-mcp/pkg/types"
)

// Filters narrows which references a search accepts.
type Filters struct {
	// SymbolType requires an exact, case-sensitive match on the
	// reference's kind (e.g. "class", "protocol", "struct").
	SymbolType string
	// Platform requires at least one platform-availability entry whose
	// name contains this value case-insensitively. References without
	// platform data are rejected while the filter is active.
	Platform string
}

// matchReference applies the compiled pattern and the optional filters to
// one candidate reference.
func matchReference(ref types.Reference, match func(string) bool, f Filters) bool {
	if ref.Title == "" {
		return false
	}
	if !match(ref.Title) {
		return false
	}
	if f.SymbolType != "" && ref.Kind != f.SymbolType {
		return false
	}
	if f.Platform != "" {
		if !platformMatches(ref.Platforms, f.Platform) {
			return false
		}
	}
	return true
}

func platformMatches(platforms []types.Platform, want string) bool {
	needle := strings.ToLower(want)
	for _, p := range platforms {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return true
		}
	}
	return false
}
