package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uiscout/uiscout/internal/apps"
	"github.com/uiscout/uiscout/internal/locate"
	"github.com/uiscout/uiscout/internal/model"
	"github.com/uiscout/uiscout/internal/platform"
	"github.com/uiscout/uiscout/internal/session"
	"github.com/uiscout/uiscout/internal/tree"
)

type stubNode struct {
	role     string
	title    string
	frame    model.Rect
	children []*stubNode

	activated   bool
	activateErr error
}

func (s *stubNode) Role() (string, error)      { return s.role, nil }
func (s *stubNode) Title() (string, error)     { return s.title, nil }
func (s *stubNode) Value() (string, error)     { return "", nil }
func (s *stubNode) Frame() (model.Rect, error) { return s.frame, nil }

func (s *stubNode) Children() ([]tree.Node, error) {
	nodes := make([]tree.Node, len(s.children))
	for i, c := range s.children {
		nodes[i] = c
	}
	return nodes, nil
}

func (s *stubNode) Activate() error {
	if s.activateErr != nil {
		return s.activateErr
	}
	s.activated = true
	return nil
}

type stubEnum struct {
	candidates []apps.ProcessCandidate
}

func (s stubEnum) Candidates() ([]apps.ProcessCandidate, error) { return s.candidates, nil }

type stubBackend struct {
	roots []tree.Node
}

func (s stubBackend) AppNodes(pid int) ([]tree.Node, error) { return s.roots, nil }

type recordingInputter struct {
	clickX, clickY int
	clickCount     int
	typed          string
	scrollDX       int
	scrollDY       int
}

func (r *recordingInputter) Click(x, y int, button platform.MouseButton, count int) error {
	r.clickX, r.clickY, r.clickCount = x, y, count
	return nil
}

func (r *recordingInputter) TypeText(text string, delayMs int) error {
	r.typed = text
	return nil
}

func (r *recordingInputter) Scroll(x, y, dx, dy int) error {
	r.scrollDX, r.scrollDY = dx, dy
	return nil
}

// newTestEngine builds an engine over a one-app desktop whose window holds an
// OK button and a text field.
func newTestEngine(t *testing.T) (*Engine, *stubNode, *recordingInputter) {
	t.Helper()
	button := &stubNode{role: "AXButton", title: "OK", frame: model.Rect{X: 100, Y: 100, Width: 80, Height: 24}}
	field := &stubNode{role: "AXTextField", title: "Name", frame: model.Rect{X: 100, Y: 140, Width: 200, Height: 24}}
	root := &stubNode{role: "AXWindow", title: "Untitled", children: []*stubNode{button, field}}
	inputter := &recordingInputter{}

	provider := &platform.Provider{
		Enumerator: stubEnum{candidates: []apps.ProcessCandidate{{Name: "Notes", PID: 1, WindowCount: 1}}},
		Backend:    stubBackend{roots: []tree.Node{root}},
		Inputter:   inputter,
	}
	store := session.NewStore(t.TempDir(), nil)
	return New(provider, store, nil), button, inputter
}

func TestSeePersistsSession(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	result, err := eng.See(SeeOptions{App: "Notes"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, "Notes", result.App)
	assert.Equal(t, 1, result.PID)
	assert.Equal(t, "Untitled", result.WindowTitle)
	require.Len(t, result.Elements, 3)
	// Traversal order: window, button, field.
	assert.Equal(t, "G1", result.Elements[0].ID)
	assert.Equal(t, "B1", result.Elements[1].ID)
	assert.Equal(t, "T1", result.Elements[2].ID)

	stored, err := eng.Store.Load(result.SessionID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Notes", stored.ApplicationName)
	assert.Len(t, stored.UIMap, 3)
	assert.False(t, stored.LastUpdateTime.IsZero())
}

func TestSeeReusesSessionID(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	result, err := eng.See(SeeOptions{App: "Notes", SessionID: "fixed-id"})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", result.SessionID)
}

func TestSeeUnknownApp(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	_, err := eng.See(SeeOptions{App: "zzz"})
	var notFound *apps.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestClickPrefersAccessibilityAction(t *testing.T) {
	eng, button, inputter := newTestEngine(t)
	seen, err := eng.See(SeeOptions{App: "Notes"})
	require.NoError(t, err)

	result, err := eng.Click(seen.SessionID, "B1", ClickOptions{})
	require.NoError(t, err)
	assert.True(t, button.activated)
	assert.Zero(t, inputter.clickCount, "no synthesized click expected")
	assert.Equal(t, "click", result.Action)
	assert.Equal(t, "OK", result.Title)
}

func TestClickFallsBackToSynthesis(t *testing.T) {
	eng, button, inputter := newTestEngine(t)
	button.activateErr = assert.AnError
	seen, err := eng.See(SeeOptions{App: "Notes"})
	require.NoError(t, err)

	result, err := eng.Click(seen.SessionID, "B1", ClickOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, inputter.clickCount)
	assert.Equal(t, 140, inputter.clickX) // 100 + 80/2
	assert.Equal(t, 112, inputter.clickY) // 100 + 24/2
	assert.Equal(t, 140.0, result.X)
}

func TestClickSynthesizesNonLeftButtons(t *testing.T) {
	eng, button, inputter := newTestEngine(t)
	seen, err := eng.See(SeeOptions{App: "Notes"})
	require.NoError(t, err)

	_, err = eng.Click(seen.SessionID, "B1", ClickOptions{Button: platform.MouseRight})
	require.NoError(t, err)
	assert.False(t, button.activated)
	assert.Equal(t, 1, inputter.clickCount)
}

func TestClickUnknownSession(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	_, err := eng.Click("no-such-session", "B1", ClickOptions{})
	var notFound *session.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestClickUnknownElement(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	seen, err := eng.See(SeeOptions{App: "Notes"})
	require.NoError(t, err)

	_, err = eng.Click(seen.SessionID, "B99", ClickOptions{})
	var notFound *locate.ElementNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestTypeSendsText(t *testing.T) {
	eng, _, inputter := newTestEngine(t)
	seen, err := eng.See(SeeOptions{App: "Notes"})
	require.NoError(t, err)

	result, err := eng.Type(seen.SessionID, "T1", TypeOptions{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", inputter.typed)
	assert.Equal(t, "type", result.Action)
}

func TestScrollAtElementCenter(t *testing.T) {
	eng, _, inputter := newTestEngine(t)
	seen, err := eng.See(SeeOptions{App: "Notes"})
	require.NoError(t, err)

	_, err = eng.Scroll(seen.SessionID, "T1", 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, inputter.scrollDX)
	assert.Equal(t, 5, inputter.scrollDY)
}

func TestAppListFiltersWindowless(t *testing.T) {
	provider := &platform.Provider{
		Enumerator: stubEnum{candidates: []apps.ProcessCandidate{
			{Name: "Zebra", PID: 3, WindowCount: 1},
			{Name: "daemon", PID: 4, WindowCount: 0},
			{Name: "Alpha", PID: 5, WindowCount: 2},
		}},
	}
	eng := New(provider, session.NewStore(t.TempDir(), nil), nil)

	list, err := eng.AppList()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alpha", list[0].Name)
	assert.Equal(t, "Zebra", list[1].Name)
}
