package engine

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/uiscout/uiscout/internal/annotate"
	"github.com/uiscout/uiscout/internal/apps"
	"github.com/uiscout/uiscout/internal/locate"
	"github.com/uiscout/uiscout/internal/model"
	"github.com/uiscout/uiscout/internal/platform"
	"github.com/uiscout/uiscout/internal/session"
	"github.com/uiscout/uiscout/internal/tree"
)

// Engine wires the capture and interaction flows shared by the CLI commands
// and the MCP server. Each invocation builds one Engine; all state that must
// outlive the invocation flows through the session store.
type Engine struct {
	Provider   *platform.Provider
	Store      *session.Store
	Resolver   *apps.Resolver
	Walker     *tree.Walker
	Rehydrator *locate.Rehydrator
	log        *zap.Logger
}

// New assembles an engine from a platform provider and a session store.
func New(provider *platform.Provider, store *session.Store, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	resolver := apps.NewResolver(log)
	walker := tree.NewWalker(log)
	return &Engine{
		Provider:   provider,
		Store:      store,
		Resolver:   resolver,
		Walker:     walker,
		Rehydrator: locate.NewRehydrator(provider.Enumerator, resolver, provider.Backend, walker, log),
		log:        log,
	}
}

// SeeOptions configures a capture.
type SeeOptions struct {
	App       string // Application identifier (name, fragment, or bundle id)
	SessionID string // Reuse an existing id; fresh id when empty
	Annotate  bool   // Draw short-id labels on the captured screenshot
}

// SeeResult is the output of a capture.
type SeeResult struct {
	SessionID   string              `yaml:"sessionId"            json:"sessionId"`
	App         string              `yaml:"app"                  json:"app"`
	PID         int                 `yaml:"pid"                  json:"pid"`
	WindowTitle string              `yaml:"window,omitempty"     json:"window,omitempty"`
	Screenshot  string              `yaml:"screenshot,omitempty" json:"screenshot,omitempty"`
	Elements    []model.UIElement   `yaml:"elements"             json:"elements"`
}

// See captures the application's current UI into a session: resolve the
// identifier to one process, flatten its accessibility tree, and durably
// replace the session's UI map. The returned element list is sorted in
// traversal order.
func (e *Engine) See(opts SeeOptions) (*SeeResult, error) {
	if e.Provider.Backend == nil {
		return nil, fmt.Errorf("accessibility backend not available on this platform")
	}

	candidates, err := e.Provider.Enumerator.Candidates()
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %w", err)
	}
	candidate, err := e.Resolver.Resolve(opts.App, candidates)
	if err != nil {
		return nil, err
	}

	roots, err := e.Provider.Backend.AppNodes(candidate.PID)
	if err != nil {
		return nil, fmt.Errorf("read UI tree of %q (pid %d): %w", candidate.Name, candidate.PID, err)
	}
	result := e.Walker.Walk(roots)

	id := opts.SessionID
	if id == "" {
		id = session.NewID()
	}

	sess := &session.Session{
		ID:              id,
		UIMap:           result.Elements,
		LastUpdateTime:  time.Now(),
		ApplicationName: candidate.Name,
		WindowTitle:     windowTitle(result.Elements),
	}

	if e.Provider.Screenshotter != nil {
		if path, err := e.captureScreenshot(candidate.PID, sess, opts.Annotate); err != nil {
			e.log.Warn("screenshot capture failed", zap.Error(err))
		} else {
			sess.Screenshot = path
		}
	}

	if err := e.Store.Save(sess); err != nil {
		return nil, err
	}

	return &SeeResult{
		SessionID:   sess.ID,
		App:         candidate.Name,
		PID:         candidate.PID,
		WindowTitle: sess.WindowTitle,
		Screenshot:  sess.Screenshot,
		Elements:    sortedElements(result.Elements),
	}, nil
}

func (e *Engine) captureScreenshot(pid int, sess *session.Session, annotated bool) (string, error) {
	img, frame, err := e.Provider.Screenshotter.CaptureWindow(pid)
	if err != nil {
		return "", err
	}
	if annotated {
		img = annotate.Annotate(img, sess.UIMap, frame)
	}

	path := filepath.Join(e.Store.Dir(), sess.ID+".png")
	if err := os.MkdirAll(e.Store.Dir(), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", err
	}
	return path, nil
}

// windowTitle picks the title of the first root element, in traversal order.
func windowTitle(elements map[string]model.UIElement) string {
	best := ""
	bestSeq := -1
	for _, el := range elements {
		if el.ParentID != "" || el.Title == "" {
			continue
		}
		if bestSeq == -1 || el.ElementID < bestSeq {
			bestSeq = el.ElementID
			best = el.Title
		}
	}
	return best
}

func sortedElements(elements map[string]model.UIElement) []model.UIElement {
	list := make([]model.UIElement, 0, len(elements))
	for _, el := range elements {
		list = append(list, el)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ElementID < list[j].ElementID })
	return list
}

// AppList returns the running applications that have windows, sorted by name.
func (e *Engine) AppList() ([]apps.ProcessCandidate, error) {
	candidates, err := e.Provider.Enumerator.Candidates()
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %w", err)
	}
	var withWindows []apps.ProcessCandidate
	for _, c := range candidates {
		if c.WindowCount > 0 {
			withWindows = append(withWindows, c)
		}
	}
	sort.Slice(withWindows, func(i, j int) bool { return withWindows[i].Name < withWindows[j].Name })
	return withWindows, nil
}

// loadSession loads a session, mapping a missing record to NotFoundError.
func (e *Engine) loadSession(id string) (*session.Session, error) {
	sess, err := e.Store.Load(id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, &session.NotFoundError{ID: id}
	}
	return sess, nil
}
