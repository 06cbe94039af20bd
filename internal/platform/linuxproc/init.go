//go:build linux

package linuxproc

import "github.com/uiscout/uiscout/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Enumerator: Enumerator{},
		}, nil
	}
}
