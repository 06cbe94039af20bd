package engine

import (
	"fmt"

	"github.com/uiscout/uiscout/internal/model"
	"github.com/uiscout/uiscout/internal/platform"
	"github.com/uiscout/uiscout/internal/tree"
)

// ActResult reports an interaction performed on a rehydrated element.
type ActResult struct {
	SessionID string  `yaml:"sessionId"       json:"sessionId"`
	ElementID string  `yaml:"elementId"       json:"elementId"`
	Action    string  `yaml:"action"          json:"action"`
	Role      string  `yaml:"role,omitempty"  json:"role,omitempty"`
	Title     string  `yaml:"title,omitempty" json:"title,omitempty"`
	X         float64 `yaml:"x,omitempty"     json:"x,omitempty"`
	Y         float64 `yaml:"y,omitempty"     json:"y,omitempty"`
}

// ClickOptions configures a click interaction.
type ClickOptions struct {
	Button platform.MouseButton
	Double bool
}

// Click rehydrates the element and activates it. The accessibility action is
// preferred; when the live node does not support one, the click is
// synthesized at the element's current center.
func (e *Engine) Click(sessionID, elementID string, opts ClickOptions) (*ActResult, error) {
	sess, err := e.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	node, err := e.Rehydrator.Rehydrate(sess, elementID)
	if err != nil {
		return nil, err
	}

	result := &ActResult{SessionID: sessionID, ElementID: elementID, Action: "click"}
	fillNodeInfo(result, node)

	if act, ok := node.(tree.Activator); ok && opts.Button == platform.MouseLeft && !opts.Double {
		if err := act.Activate(); err == nil {
			return result, nil
		}
		// Fall through to a synthesized click; some nodes advertise an
		// action they cannot deliver.
	}

	if e.Provider.Inputter == nil {
		return nil, fmt.Errorf("input synthesis not available on this platform")
	}
	frame, err := node.Frame()
	if err != nil {
		return nil, fmt.Errorf("element frame unavailable: %w", err)
	}
	cx, cy := frame.Center()
	count := 1
	if opts.Double {
		count = 2
	}
	if err := e.Provider.Inputter.Click(int(cx), int(cy), opts.Button, count); err != nil {
		return nil, err
	}
	result.X, result.Y = cx, cy
	return result, nil
}

// TypeOptions configures a typing interaction.
type TypeOptions struct {
	Text    string
	DelayMs int // Per-keystroke delay
}

// Type rehydrates the element, focuses it via its activation action when
// available, then types the text.
func (e *Engine) Type(sessionID, elementID string, opts TypeOptions) (*ActResult, error) {
	if e.Provider.Inputter == nil {
		return nil, fmt.Errorf("input synthesis not available on this platform")
	}
	sess, err := e.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	node, err := e.Rehydrator.Rehydrate(sess, elementID)
	if err != nil {
		return nil, err
	}

	if act, ok := node.(tree.Activator); ok {
		// Best-effort focus; typing still goes to whatever holds focus.
		_ = act.Activate()
	}
	if err := e.Provider.Inputter.TypeText(opts.Text, opts.DelayMs); err != nil {
		return nil, err
	}

	result := &ActResult{SessionID: sessionID, ElementID: elementID, Action: "type"}
	fillNodeInfo(result, node)
	return result, nil
}

// Scroll rehydrates the element and scrolls at its current center.
func (e *Engine) Scroll(sessionID, elementID string, dx, dy int) (*ActResult, error) {
	if e.Provider.Inputter == nil {
		return nil, fmt.Errorf("input synthesis not available on this platform")
	}
	sess, err := e.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	node, err := e.Rehydrator.Rehydrate(sess, elementID)
	if err != nil {
		return nil, err
	}

	frame, err := node.Frame()
	if err != nil {
		return nil, fmt.Errorf("element frame unavailable: %w", err)
	}
	cx, cy := frame.Center()
	if err := e.Provider.Inputter.Scroll(int(cx), int(cy), dx, dy); err != nil {
		return nil, err
	}

	result := &ActResult{SessionID: sessionID, ElementID: elementID, Action: "scroll", X: cx, Y: cy}
	fillNodeInfo(result, node)
	return result, nil
}

func fillNodeInfo(result *ActResult, node tree.Node) {
	if role, err := node.Role(); err == nil {
		result.Role = role
	}
	if title, err := node.Title(); err == nil {
		result.Title = title
	}
	if result.X == 0 && result.Y == 0 {
		if frame, err := node.Frame(); err == nil && frame != (model.Rect{}) {
			result.X, result.Y = frame.Center()
		}
	}
}
