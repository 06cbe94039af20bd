//go:build linux

package linuxproc

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/uiscout/uiscout/internal/apps"
)

// Enumerator lists application-level processes by scanning /proc. It is
// stateless; every call reflects the live process table.
type Enumerator struct{}

// systemPrefixes mark kernel and desktop-infrastructure processes that are
// never interaction targets.
var systemPrefixes = []string{
	"kernel", "kthreadd", "ksoftirqd", "migration", "rcu_", "watchdog",
	"systemd", "kworker", "dbus", "NetworkManager", "pulseaudio", "pipewire",
	"gdm", "gnome-session", "gnome-shell", "Xorg", "wayland",
}

// Candidates returns one ProcessCandidate per distinct display name.
func (Enumerator) Candidates() ([]apps.ProcessCandidate, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var candidates []apps.ProcessCandidate
	for _, entry := range entries {
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || !entry.IsDir() {
			continue
		}

		comm, err := os.ReadFile(filepath.Join("/proc", entry.Name(), "comm"))
		if err != nil {
			continue
		}
		name := strings.TrimSpace(string(comm))
		if name == "" || isSystemProcess(name) {
			continue
		}

		// Kernel threads have an empty cmdline.
		cmdline, err := os.ReadFile(filepath.Join("/proc", entry.Name(), "cmdline"))
		if err != nil || len(cmdline) == 0 {
			continue
		}

		display := displayName(name)
		if seen[display] {
			continue
		}
		seen[display] = true

		candidates = append(candidates, apps.ProcessCandidate{
			Name:        display,
			PID:         pid,
			WindowCount: 1,
		})
	}
	return candidates, nil
}

func isSystemProcess(name string) bool {
	for _, prefix := range systemPrefixes {
		if strings.Contains(name, prefix) {
			return true
		}
	}
	return false
}

// displayName cleans a raw process name into something a user would type:
// strip packaging suffixes, capitalize the first letter.
func displayName(name string) string {
	name = strings.TrimSuffix(name, ".exe")
	name = strings.TrimSuffix(name, "-bin")
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
