// Package mcp implements the Model Context Protocol server exposing Apple
// Developer Documentation tools.
//
// Three tools are registered:
//   - list_technologies: list frameworks and other documentation collections
//   - get_documentation: fetch one symbol or framework page by path
//   - search_symbols: wildcard search within a framework or globally
//
// The server speaks JSON-RPC 2.0 over stdio via github.com/mark3labs/mcp-go;
// stdout carries protocol traffic, so all logging goes to stderr.
//
// Invalid parameters produce code -32602 and internal failures -32603
// carrying the tool name, with one deliberate exception: get_documentation
// never returns a protocol error for a path the upstream does not know.
// Failed lookups go through the fallback resolver, which either detects
// that the path named a framework and serves its overview, or returns
// structured not-found guidance.
package mcp
