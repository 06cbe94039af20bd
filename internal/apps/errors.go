package apps

import (
	"fmt"
	"strings"
)

// NotFoundError reports that no running process matched the identifier.
// Recoverable: the caller can retry with a more specific identifier.
type NotFoundError struct {
	Identifier  string
	Suggestions []string // Up to three near-miss application names
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("application %q not found or not running", e.Identifier)
	}
	return fmt.Sprintf("application %q not found or not running (did you mean: %s?)",
		e.Identifier, strings.Join(e.Suggestions, ", "))
}

// AmbiguousError reports that several processes matched the identifier with
// scores too close to pick a single winner.
type AmbiguousError struct {
	Identifier string
	Matches    []Match // The tied top matches, highest score first
}

func (e *AmbiguousError) Error() string {
	descs := make([]string, len(e.Matches))
	for i, m := range e.Matches {
		descs[i] = fmt.Sprintf("%s (PID %d)", m.Candidate.Name, m.Candidate.PID)
	}
	return fmt.Sprintf("multiple applications match %q, be more specific: %s",
		e.Identifier, strings.Join(descs, ", "))
}
