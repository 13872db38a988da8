package search

import (
	"regexp"
	"strings"
)

// CompilePattern turns a wildcard query into a case-insensitive matching
// predicate. '*' matches zero or more characters, '?' matches exactly one,
// and every other character matches literally. The pattern is unanchored,
// so a query without wildcards behaves as a substring test. Compilation
// cannot fail: all regex metacharacters in the query are quoted.
func CompilePattern(query string) func(string) bool {
	var b strings.Builder
	b.WriteString("(?is)")
	for _, r := range query {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return regexp.MustCompile(b.String()).MatchString
}

// StripWildcards removes '*' and '?' from a query, leaving the literal
// characters the ranker scores against.
func StripWildcards(query string) string {
	return strings.Map(func(r rune) rune {
		if r == '*' || r == '?' {
			return -1
		}
		return r
	}, query)
}
