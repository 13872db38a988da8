// Command appledocs runs the Apple Developer Documentation MCP server on
// stdio. Logs go to stderr; stdout is reserved for the protocol.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cferro/appledocs-mcp/internal/config"
	"github.com/cferro/appledocs-mcp/internal/mcp"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "appledocs",
		Short:        "MCP server for Apple Developer Documentation",
		RunE:         runServe,
		SilenceUsage: true,
	}
	rootCmd.Flags().String("config", "", "path to config file (default: appledocs.yaml in . or ~/.appledocs)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("appledocs-mcp %s (built %s)\n", version, buildTime)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	logger.Info("starting MCP server",
		"version", version,
		"base_url", cfg.BaseURL,
		"cache_ttl", cfg.CacheTTL)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := mcp.NewServer(cfg, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening on stdio")
		errCh <- server.Serve(ctx)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		return nil
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
			return err
		}
		return nil
	}
}
