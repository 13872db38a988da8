// Package types defines the shared data model for the Apple Developer
// Documentation upstream and the search results derived from it.
//
// Upstream documents are loosely typed JSON: almost every field may be
// absent or shaped differently than expected. The types in this package
// decode tolerantly and expose fallback helpers (FlattenAbstract,
// FormatPlatforms) so that missing data degrades to defined display text
// instead of failing a whole response.
//
// Two documents matter:
//
//   - The technology index (documentation/technologies.json) lists every
//     technology Apple publishes. Entries with kind "symbol" and role
//     "collection" are frameworks.
//
//   - A documentation page (documentation/<path>.json) describes either a
//     framework or a single symbol. Its references map carries one entry
//     per related symbol, keyed by an opaque identifier.
//
// JSON objects in Go lose key order when decoded into a map, but search
// cutoff behavior depends on the order entries appear in the upstream
// document. ReferenceMap and TechnologyIndex therefore decode with a
// streaming token walk that records document order.
package types
