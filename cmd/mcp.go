package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uiscout/uiscout/internal/server"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start an MCP server exposing uiscout tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes see, click,
type, scroll, apps, and clear_session as tools. AI agents can call them
directly without shell overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  uiscout mcp
  uiscout mcp --transport streamable-http --port 8080
  uiscout mcp --cache-ttl 0`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	mcpCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	mcpCmd.Flags().Duration("cache-ttl", 0, "Capture cache TTL (0 uses UISCOUT_CACHE_TTL)")
}

func runMCP(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTL, _ := cmd.Flags().GetDuration("cache-ttl")
	if cacheTTL == 0 {
		cacheTTL = cfg.CacheTTL
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	srvCfg := server.Config{
		Transport: transport,
		Port:      port,
		CacheTTL:  cacheTTL,
	}
	srv := server.New(eng, srvCfg, logger)

	logger.Info("mcp server starting",
		zap.String("transport", transport),
		zap.Duration("cacheTTL", cacheTTL),
	)
	return srv.Serve(srvCfg)
}
