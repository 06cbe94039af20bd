package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uiscout/uiscout/internal/model"
)

func testSession(id string) *Session {
	return &Session{
		ID: id,
		UIMap: map[string]model.UIElement{
			"B1": {
				ID:         "B1",
				ElementID:  0,
				Role:       "AXButton",
				Title:      "OK",
				Frame:      model.Rect{X: 10, Y: 20, Width: 80, Height: 24},
				Actionable: true,
			},
			"T1": {
				ID:        "T1",
				ElementID: 1,
				Role:      "AXTextField",
				Value:     "draft",
				ParentID:  "B1",
			},
		},
		LastUpdateTime:  time.Now().UTC().Truncate(time.Second),
		ApplicationName: "Notes",
		WindowTitle:     "Untitled",
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir(), nil)
	sess := testSession("abc-123")

	require.NoError(t, store.Save(sess))

	loaded, err := store.Load("abc-123")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, sess.ID, loaded.ID)
	assert.Equal(t, sess.ApplicationName, loaded.ApplicationName)
	assert.Equal(t, sess.WindowTitle, loaded.WindowTitle)
	assert.True(t, sess.LastUpdateTime.Equal(loaded.LastUpdateTime))
	assert.Equal(t, sess.UIMap, loaded.UIMap)
}

func TestStoreSaveReplacesWholesale(t *testing.T) {
	store := NewStore(t.TempDir(), nil)
	require.NoError(t, store.Save(testSession("abc")))

	smaller := &Session{
		ID:              "abc",
		UIMap:           map[string]model.UIElement{"G1": {ID: "G1", Role: "AXWindow"}},
		LastUpdateTime:  time.Now(),
		ApplicationName: "Notes",
	}
	require.NoError(t, store.Save(smaller))

	loaded, err := store.Load("abc")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Len(t, loaded.UIMap, 1)
	assert.Contains(t, loaded.UIMap, "G1")
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(t.TempDir(), nil)

	loaded, err := store.Load("never-saved")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStoreLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{truncated"), 0o644))

	loaded, err := store.Load("bad")
	assert.Nil(t, loaded)
	var corrupt *CorruptError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, "bad", corrupt.ID)
}

func TestStoreSaveRejectsEmptyID(t *testing.T) {
	store := NewStore(t.TempDir(), nil)
	var storage *StorageError
	require.ErrorAs(t, store.Save(&Session{}), &storage)
}

func TestStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil)
	require.NoError(t, store.Save(testSession("abc")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasSuffix(entry.Name(), ".tmp"), "leftover temp file %s", entry.Name())
	}
}

func TestStoreClear(t *testing.T) {
	store := NewStore(t.TempDir(), nil)
	require.NoError(t, store.Save(testSession("abc")))

	require.NoError(t, store.Clear("abc"))
	loaded, err := store.Load("abc")
	assert.NoError(t, err)
	assert.Nil(t, loaded)

	// Clearing again is a no-op.
	assert.NoError(t, store.Clear("abc"))
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil)
	require.NoError(t, store.Save(testSession("aaa")))
	require.NoError(t, store.Save(testSession("bbb")))

	// Dotfiles and foreign files are not sessions.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shot.png"), []byte("png"), 0o644))

	ids, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"aaa", "bbb"}, ids)
}

func TestStoreListMissingDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope"), nil)
	ids, err := store.List()
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStoreClean(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil)
	require.NoError(t, store.Save(testSession("old")))
	require.NoError(t, store.Save(testSession("new")))

	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "old.json"), stale, stale))

	removed := store.Clean(24 * time.Hour)
	assert.Equal(t, 1, removed)

	ids, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, ids)
}

func TestNewIDUnique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}
