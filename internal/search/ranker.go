package search

import "strings"

// Match quality tiers, lower is better.
const (
	scoreExact    = 0 // title equals the stripped query
	scorePrefix   = 1 // title starts with the stripped query
	scoreContains = 2 // title contains the stripped query
	scoreWildcard = 3 // accepted only via the wildcard pattern
)

// scoreTitle ranks how well a title matches the query, comparing against
// the query with wildcards stripped, case-insensitively. A pure-wildcard
// query strips to the empty string, which would trivially satisfy the
// prefix and substring tiers; such queries always score scoreWildcard so
// they keep the source order.
func scoreTitle(title, query string) int {
	stripped := strings.ToLower(StripWildcards(query))
	if stripped == "" {
		return scoreWildcard
	}

	lower := strings.ToLower(title)
	switch {
	case lower == stripped:
		return scoreExact
	case strings.HasPrefix(lower, stripped):
		return scorePrefix
	case strings.Contains(lower, stripped):
		return scoreContains
	default:
		return scoreWildcard
	}
}
