package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the OS collaborators available to the current build.
// Fields may be nil when a capability is not implemented for the platform;
// callers check before use.
type Provider struct {
	Enumerator    Enumerator
	Backend       Backend
	Inputter      Inputter
	Screenshotter Screenshotter
}

// ErrUnsupported is returned on platforms with no registered provider.
var ErrUnsupported = fmt.Errorf("uiscout has no platform support for %s/%s", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/linuxproc for the Linux registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
