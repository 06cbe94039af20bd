package cmd

import (
	"errors"

	"github.com/uiscout/uiscout/internal/apps"
	"github.com/uiscout/uiscout/internal/locate"
	"github.com/uiscout/uiscout/internal/platform"
	"github.com/uiscout/uiscout/internal/session"
)

// Exit codes. Scripted callers branch on these without parsing stderr.
const (
	exitGeneric         = 1
	exitAppNotFound     = 18
	exitInvalidArgument = 20
	exitIOError         = 24
	exitUnsupported     = 29
	exitSessionNotFound = 40
	exitSessionCorrupt  = 41
	exitElementNotFound = 42
	exitElementStale    = 43
	exitAmbiguousApp    = 44
)

func exitCode(err error) int {
	var (
		appNotFound  *apps.NotFoundError
		ambiguous    *apps.AmbiguousError
		storage      *session.StorageError
		corrupt      *session.CorruptError
		sessNotFound *session.NotFoundError
		elNotFound   *locate.ElementNotFoundError
		stale        *locate.StaleElementError
	)
	switch {
	case errors.As(err, &appNotFound):
		return exitAppNotFound
	case errors.As(err, &ambiguous):
		return exitAmbiguousApp
	case errors.As(err, &sessNotFound):
		return exitSessionNotFound
	case errors.As(err, &corrupt):
		return exitSessionCorrupt
	case errors.As(err, &elNotFound):
		return exitElementNotFound
	case errors.As(err, &stale):
		return exitElementStale
	case errors.As(err, &storage):
		return exitIOError
	case errors.Is(err, platform.ErrUnsupported):
		return exitUnsupported
	default:
		return exitGeneric
	}
}
