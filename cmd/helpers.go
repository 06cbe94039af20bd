package cmd

import (
	"github.com/uiscout/uiscout/internal/engine"
	"github.com/uiscout/uiscout/internal/platform"
	"github.com/uiscout/uiscout/internal/session"
)

// newEngine assembles the engine for one command invocation from the loaded
// configuration and the platform provider registered for this build.
func newEngine() (*engine.Engine, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	store := session.NewStore(cfg.SessionDir, logger)
	return engine.New(provider, store, logger), nil
}

// newStore builds a session store without requiring platform support, for
// commands that only touch persisted state.
func newStore() *session.Store {
	return session.NewStore(cfg.SessionDir, logger)
}
