package types

// SearchResult is one matched symbol projected for display. Results are
// built per search call and never persisted.
type SearchResult struct {
	Title       string // Symbol title
	Description string // Flattened abstract, "" when absent
	Path        string // Canonical documentation path
	Framework   string // Framework the search ran under
	SymbolKind  string // Optional symbol kind (class, protocol, struct, ...)
	Platforms   string // Availability display text, "All platforms" fallback
}

// Validate checks if the search result is displayable
func (sr *SearchResult) Validate() error {
	if sr.Title == "" {
		return ErrMissingTitle
	}

	if sr.Framework == "" {
		return ErrMissingFramework
	}

	return nil
}
