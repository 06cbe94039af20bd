package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/uiscout/uiscout/internal/engine"
	"github.com/uiscout/uiscout/internal/version"
)

// Server exposes the capture and interaction engine over MCP. A single mutex
// serializes provider access: the accessibility layer mutates shared desktop
// state, so tool calls never overlap.
type Server struct {
	engine     *engine.Engine
	cache      *seeCache
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
	log        *zap.Logger
}

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// New creates and configures an MCP server exposing all uiscout tools.
func New(eng *engine.Engine, cfg Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		engine: eng,
		cache:  newSeeCache(cfg.CacheTTL),
		log:    log,
	}

	s.mcp = mcpserver.NewMCPServer(
		"uiscout",
		version.Version,
	)

	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	// see
	s.mcp.AddTool(
		mcp.NewTool("see",
			mcp.WithDescription("Capture an application's UI into a session. Returns a session id and the flattened element map with short ids (B1, T2, ...) usable by click/type/scroll."),
			mcp.WithString("app", mcp.Description("Application name, fragment, or bundle id (e.g. 'Safari', 'chrome')"), mcp.Required()),
			mcp.WithString("session", mcp.Description("Reuse an existing session id; a fresh id is generated when omitted")),
			mcp.WithBoolean("annotate", mcp.Description("Draw short-id labels on the captured screenshot")),
			mcp.WithBoolean("fresh", mcp.Description("Bypass the capture cache and re-walk the UI tree")),
		),
		s.handleSee,
	)

	// click
	s.mcp.AddTool(
		mcp.NewTool("click",
			mcp.WithDescription("Click a UI element captured in a session, by its short id"),
			mcp.WithString("session", mcp.Description("Session id from a previous see call"), mcp.Required()),
			mcp.WithString("id", mcp.Description("Element short id (e.g. 'B3')"), mcp.Required()),
			mcp.WithString("button", mcp.Description("Mouse button: left, right, middle (default: left)")),
			mcp.WithBoolean("double", mcp.Description("Double-click")),
		),
		s.handleClick,
	)

	// type
	s.mcp.AddTool(
		mcp.NewTool("type",
			mcp.WithDescription("Focus a UI element captured in a session and type text into it"),
			mcp.WithString("session", mcp.Description("Session id from a previous see call"), mcp.Required()),
			mcp.WithString("id", mcp.Description("Element short id (e.g. 'T1')"), mcp.Required()),
			mcp.WithString("text", mcp.Description("Text to type"), mcp.Required()),
			mcp.WithNumber("delay", mcp.Description("Delay between keystrokes in ms")),
		),
		s.handleType,
	)

	// scroll
	s.mcp.AddTool(
		mcp.NewTool("scroll",
			mcp.WithDescription("Scroll at a UI element captured in a session"),
			mcp.WithString("session", mcp.Description("Session id from a previous see call"), mcp.Required()),
			mcp.WithString("id", mcp.Description("Element short id"), mcp.Required()),
			mcp.WithNumber("dx", mcp.Description("Horizontal scroll amount")),
			mcp.WithNumber("dy", mcp.Description("Vertical scroll amount (positive scrolls down)")),
		),
		s.handleScroll,
	)

	// apps
	s.mcp.AddTool(
		mcp.NewTool("apps",
			mcp.WithDescription("List running applications that have windows"),
		),
		s.handleApps,
	)

	// clear_session
	s.mcp.AddTool(
		mcp.NewTool("clear_session",
			mcp.WithDescription("Delete a stored session and its artifacts"),
			mcp.WithString("session", mcp.Description("Session id to delete"), mcp.Required()),
		),
		s.handleClearSession,
	)
}
