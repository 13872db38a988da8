package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/cferro/appledocs-mcp/internal/render"
	"github.com/cferro/appledocs-mcp/internal/search"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
)

// handleListTechnologies handles the list_technologies tool invocation
func (s *Server) handleListTechnologies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := s.fetcher.Technologies(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to fetch technology index", map[string]interface{}{
			"tool":  "list_technologies",
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(render.TechnologyList(index)), nil
}

// handleGetDocumentation handles the get_documentation tool invocation.
// Unrecognized paths produce guidance text, never a protocol error.
func (s *Server) handleGetDocumentation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}

	outcome := s.resolver.Lookup(ctx, path)
	return mcp.NewToolResultText(render.Outcome(outcome)), nil
}

// handleSearchSymbols handles the search_symbols tool invocation
func (s *Server) handleSearchSymbols(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	framework := getStringDefault(args, "framework", "")
	filters := search.Filters{
		SymbolType: getStringDefault(args, "symbol_type", ""),
		Platform:   getStringDefault(args, "platform", ""),
	}

	defaultLimit := search.DefaultGlobalLimit
	if framework != "" {
		defaultLimit = search.DefaultFrameworkLimit
	}
	maxResults := getIntDefault(args, "max_results", defaultLimit)
	if maxResults < 1 || maxResults > search.MaxLimit {
		return nil, newMCPError(ErrorCodeInvalidParams, fmt.Sprintf("max_results must be between 1 and %d", search.MaxLimit), map[string]interface{}{
			"param": "max_results",
			"value": maxResults,
		})
	}

	if framework != "" {
		found, err := s.engine.Framework(ctx, framework, query, filters, maxResults)
		if err != nil {
			return nil, newMCPError(ErrorCodeInternalError, "framework search failed", map[string]interface{}{
				"tool":      "search_symbols",
				"framework": framework,
				"error":     err.Error(),
			})
		}
		scope := fmt.Sprintf("framework %q", framework)
		return mcp.NewToolResultText(render.SearchResults(scope, found)), nil
	}

	found, err := s.engine.Global(ctx, query, filters, maxResults)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "global search failed", map[string]interface{}{
			"tool":  "search_symbols",
			"error": err.Error(),
		})
	}
	return mcp.NewToolResultText(render.SearchResults("all technologies", found)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
