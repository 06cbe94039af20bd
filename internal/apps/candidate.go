package apps

// ProcessCandidate describes one running application-level process as
// reported by the process enumerator. Owned by the OS process table;
// read-only to this package.
type ProcessCandidate struct {
	Name        string `yaml:"name"               json:"name"`
	BundleID    string `yaml:"bundleId,omitempty" json:"bundleId,omitempty"` // Stable bundle/package identifier; may be empty
	PID         int    `yaml:"pid"                json:"pid"`
	Active      bool   `yaml:"active,omitempty"   json:"active,omitempty"` // Frontmost / has focus
	WindowCount int    `yaml:"windows"            json:"windows"`
}

// Enumerator lists the currently running application processes. It must be
// callable repeatedly and reflect live OS state on each call.
type Enumerator interface {
	Candidates() ([]ProcessCandidate, error)
}
