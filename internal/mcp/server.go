package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/cferro/appledocs-mcp/internal/cache"
	"github.com/cferro/appledocs-mcp/internal/config"
	"github.com/cferro/appledocs-mcp/internal/fetcher"
	"github.com/cferro/appledocs-mcp/internal/resolver"
	"github.com/cferro/appledocs-mcp/internal/search"
)

const (
	// ServerName is the MCP server name
	ServerName = "appledocs-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp      *server.MCPServer
	fetcher  *fetcher.Client
	engine   *search.Engine
	resolver *resolver.Resolver
	logger   *slog.Logger
}

// NewServer creates a new MCP server instance wired to the upstream
// documentation API. The document cache is constructed here, once per
// process, and shared by every fetch call site.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	docs := cache.New(cfg.CacheTTL, cfg.CacheCapacity)
	client := fetcher.New(docs, logger,
		fetcher.WithBaseURL(cfg.BaseURL),
		fetcher.WithTimeout(cfg.RequestTimeout),
	)

	s := &Server{
		mcp:      server.NewMCPServer(ServerName, ServerVersion),
		fetcher:  client,
		engine:   search.NewEngine(client, logger),
		resolver: resolver.New(client, logger),
		logger:   logger,
	}

	s.registerTools()
	return s
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(listTechnologiesTool(), s.handleListTechnologies)
	s.mcp.AddTool(getDocumentationTool(), s.handleGetDocumentation)
	s.mcp.AddTool(searchSymbolsTool(), s.handleSearchSymbols)
}
