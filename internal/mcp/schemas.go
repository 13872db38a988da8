package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// listTechnologiesTool returns the tool definition for list_technologies
func listTechnologiesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_technologies",
		Description: "List all Apple technologies, split into frameworks and other documentation collections",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// getDocumentationTool returns the tool definition for get_documentation
func getDocumentationTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_documentation",
		Description: "Fetch Apple documentation for a symbol or framework path. Framework-level paths return an overview with topics and next steps.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Documentation path, e.g. 'swiftui' or 'uikit/uiviewcontroller'",
				},
			},
			Required: []string{"path"},
		},
	}
}

// searchSymbolsTool returns the tool definition for search_symbols
func searchSymbolsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_symbols",
		Description: "Search Apple documentation symbols with a wildcard query, within one framework or across all technologies",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Wildcard search pattern; '*' matches any run of characters, '?' matches one (e.g. '*ViewController')",
				},
				"framework": map[string]interface{}{
					"type":        "string",
					"description": "Limit the search to one framework (e.g. 'UIKit'). Omit to search across all technologies.",
				},
				"symbol_type": map[string]interface{}{
					"type":        "string",
					"description": "Filter by exact symbol kind (e.g. 'class', 'protocol', 'struct')",
				},
				"platform": map[string]interface{}{
					"type":        "string",
					"description": "Filter to symbols available on a platform (substring match, e.g. 'macos')",
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results (1-100; default 20 within a framework, 50 globally)",
					"minimum":     1,
					"maximum":     100,
				},
			},
			Required: []string{"query"},
		},
	}
}
