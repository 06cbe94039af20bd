package platform

import (
	"fmt"
	"image"
	"strings"

	"github.com/uiscout/uiscout/internal/apps"
	"github.com/uiscout/uiscout/internal/model"
	"github.com/uiscout/uiscout/internal/tree"
)

// Backend exposes the live accessibility tree of a process. Node handles are
// valid only within the invocation that obtained them, and all calls must
// happen from the single logical UI context of that invocation; the
// accessibility layer is not safely reentrant from arbitrary goroutines.
type Backend interface {
	// AppNodes returns the root UI nodes (typically windows) of the process.
	AppNodes(pid int) ([]tree.Node, error)
}

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// ParseMouseButton converts a string flag value to MouseButton.
func ParseMouseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "left":
		return MouseLeft, nil
	case "right":
		return MouseRight, nil
	case "middle":
		return MouseMiddle, nil
	default:
		return MouseLeft, fmt.Errorf("unknown mouse button: %q (expected left, right, or middle)", s)
	}
}

// Inputter synthesizes mouse and keyboard input.
type Inputter interface {
	Click(x, y int, button MouseButton, count int) error
	TypeText(text string, delayMs int) error
	Scroll(x, y, dx, dy int) error
}

// Screenshotter captures window pixels.
type Screenshotter interface {
	// CaptureWindow captures the frontmost window of the process and returns
	// the image along with the window's frame in screen points.
	CaptureWindow(pid int) (image.Image, model.Rect, error)
}

// Enumerator re-exports the process enumerator contract consumed by the
// application resolver.
type Enumerator = apps.Enumerator
