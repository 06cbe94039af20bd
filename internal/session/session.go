package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/uiscout/uiscout/internal/model"
)

// Session is one persisted UI capture, addressable by id across process
// invocations. A capture replaces the UIMap wholesale; sessions are never
// patched incrementally.
//
// Field names are part of the on-disk format and must not change.
type Session struct {
	ID              string                     `yaml:"sessionId"                 json:"sessionId"`
	Screenshot      string                     `yaml:"screenshot,omitempty"      json:"screenshot,omitempty"`
	UIMap           map[string]model.UIElement `yaml:"uiMap"                     json:"uiMap"`
	LastUpdateTime  time.Time                  `yaml:"lastUpdateTime"            json:"lastUpdateTime"`
	ApplicationName string                     `yaml:"applicationName,omitempty" json:"applicationName,omitempty"`
	WindowTitle     string                     `yaml:"windowTitle,omitempty"     json:"windowTitle,omitempty"`
}

// NewID returns a fresh, effectively unique session id.
func NewID() string {
	return uuid.NewString()
}
