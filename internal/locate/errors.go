package locate

import "fmt"

// ElementNotFoundError reports a short id that was never part of the
// session's UI map. Remediation: re-check the id against the capture output.
type ElementNotFoundError struct {
	SessionID string
	ElementID string
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("element %s does not exist in session %s", e.ElementID, e.SessionID)
}

// StaleElementError reports an element that existed at capture time but
// could not be confidently re-matched against the live tree. Remediation:
// run a fresh capture.
type StaleElementError struct {
	SessionID string
	ElementID string
	Reason    string
}

func (e *StaleElementError) Error() string {
	return fmt.Sprintf("element %s from session %s is stale: %s", e.ElementID, e.SessionID, e.Reason)
}
