package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/uiscout/uiscout/internal/engine"
	"github.com/uiscout/uiscout/internal/platform"
)

// resultToText serializes a tool result to YAML for the MCP response.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}

func (s *Server) handleSee(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	app := StringParam(params, "app", "")
	sessionID := StringParam(params, "session", "")
	annotated := BoolParam(params, "annotate", false)
	fresh := BoolParam(params, "fresh", false)

	if app == "" {
		return mcp.NewToolResultError("app is required"), nil
	}

	if !fresh && sessionID == "" && !annotated {
		if cached, ok := s.cache.get(app); ok {
			s.log.Debug("see served from cache", zap.String("app", app))
			return mcp.NewToolResultText(resultToText(cached)), nil
		}
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	result, err := s.engine.See(engine.SeeOptions{
		App:       app,
		SessionID: sessionID,
		Annotate:  annotated,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.cache.put(app, result)
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *Server) handleClick(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	sessionID := StringParam(params, "session", "")
	elementID := StringParam(params, "id", "")
	buttonName := StringParam(params, "button", "left")
	double := BoolParam(params, "double", false)

	if sessionID == "" || elementID == "" {
		return mcp.NewToolResultError("session and id are required"), nil
	}
	button, err := platform.ParseMouseButton(buttonName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	result, err := s.engine.Click(sessionID, elementID, engine.ClickOptions{
		Button: button,
		Double: double,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// A click can change any window, not only the one that owns the element.
	s.cache.invalidateAll()
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *Server) handleType(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	sessionID := StringParam(params, "session", "")
	elementID := StringParam(params, "id", "")
	text := StringParam(params, "text", "")
	delay := IntParam(params, "delay", 0)

	if sessionID == "" || elementID == "" {
		return mcp.NewToolResultError("session and id are required"), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	result, err := s.engine.Type(sessionID, elementID, engine.TypeOptions{
		Text:    text,
		DelayMs: delay,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.cache.invalidateAll()
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *Server) handleScroll(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	sessionID := StringParam(params, "session", "")
	elementID := StringParam(params, "id", "")
	dx := IntParam(params, "dx", 0)
	dy := IntParam(params, "dy", 0)

	if sessionID == "" || elementID == "" {
		return mcp.NewToolResultError("session and id are required"), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	result, err := s.engine.Scroll(sessionID, elementID, dx, dy)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.cache.invalidateAll()
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *Server) handleApps(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	list, err := s.engine.AppList()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(list)), nil
}

func (s *Server) handleClearSession(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	sessionID := StringParam(params, "session", "")
	if sessionID == "" {
		return mcp.NewToolResultError("session is required"), nil
	}

	if err := s.engine.Store.Clear(sessionID); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.cache.invalidateAll()
	return mcp.NewToolResultText(fmt.Sprintf("session %s cleared", sessionID)), nil
}
