// Package search implements wildcard symbol search over Apple framework
// documentation.
//
// A query is a glob: literal characters match themselves case-insensitively,
// '*' matches any run of characters, and '?' matches exactly one. The
// compiled pattern is unanchored, so "View" matches "MyViewController".
//
// Searches come in two scopes:
//
//   - Framework search walks one framework's reference map in document
//     order, keeps entries accepted by the filter until the result cap is
//     reached, and stable-sorts the collected set by match quality.
//
//   - Global search fans the query out across the framework-level entries
//     of the technology index, sequentially, sharing the result budget
//     across roughly four frameworks' worth of contributions. One
//     framework's failure is logged and skipped; only an unreachable
//     technology index fails the whole call.
//
// Match quality is tiered: exact title equality with the wildcard-stripped
// query ranks first, then prefix matches, then substring matches, then
// everything else that only the wildcard pattern accepted. Ties keep the
// source document order.
package search
