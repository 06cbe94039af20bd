package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Store persists sessions as one JSON file per id in a single directory.
// Writes go through a temp file plus atomic rename, so a concurrent reader
// never observes a partially written record; racing writers to the same id
// are last-writer-wins. No other locking is used or needed.
type Store struct {
	dir string
	log *zap.Logger
}

// NewStore creates a store rooted at dir.
func NewStore(dir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{dir: dir, log: log}
}

// Dir returns the directory session records live in.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Save durably writes the session, replacing any previous record for its id.
func (s *Store) Save(sess *Session) error {
	if sess.ID == "" {
		return &StorageError{Op: "save", Err: errors.New("empty session id")}
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &StorageError{ID: sess.ID, Op: "save", Err: err}
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return &StorageError{ID: sess.ID, Op: "save", Err: err}
	}

	tmp, err := os.CreateTemp(s.dir, "."+sess.ID+"-*.tmp")
	if err != nil {
		return &StorageError{ID: sess.ID, Op: "save", Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &StorageError{ID: sess.ID, Op: "save", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{ID: sess.ID, Op: "save", Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path(sess.ID)); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{ID: sess.ID, Op: "save", Err: err}
	}

	s.log.Debug("saved session",
		zap.String("id", sess.ID), zap.Int("elements", len(sess.UIMap)))
	return nil
}

// Load reads the session for id. A missing record returns (nil, nil); a
// record that exists but cannot be decoded returns *CorruptError.
func (s *Store) Load(id string) (*Session, error) {
	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{ID: id, Op: "load", Err: err}
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, &CorruptError{ID: id, Err: err}
	}
	return &sess, nil
}

// Clear removes the record for id. Clearing a missing session is a no-op.
func (s *Store) Clear(id string) error {
	err := os.Remove(s.path(id))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &StorageError{ID: id, Op: "clear", Err: err}
	}
	return nil
}

// List returns the ids of all stored sessions, sorted by file name.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

// Clean removes session records older than maxAge, returning how many were
// deleted. Errors on individual files are skipped; housekeeping is
// best-effort.
func (s *Store) Clean(maxAge time.Duration) int {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if os.Remove(filepath.Join(s.dir, name)) == nil {
				removed++
			}
		}
	}
	if removed > 0 {
		s.log.Debug("cleaned old sessions", zap.Int("removed", removed))
	}
	return removed
}
