package tree

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/uiscout/uiscout/internal/model"
)

// MaxDepth is the hard traversal ceiling. Malformed accessibility trees can
// contain cycles through parent back-references; bounding depth is the cycle
// safety mechanism.
const MaxDepth = 10

// SkipFunc decides whether a node is excluded from the resulting map.
// Children of skipped nodes are still walked and attach to the skipped
// node's parent, so callers can thin structural noise (separators, disabled
// rows) without losing subtrees.
type SkipFunc func(role, title string) bool

// Result pairs a flattened UI map with the live handle behind each short id.
// Only the Elements map is persistable; handles die with the invocation.
type Result struct {
	Elements map[string]model.UIElement
	handles  map[string]Node
}

// Handle returns the live node recorded for a short id during the walk.
func (r *Result) Handle(id string) (Node, bool) {
	n, ok := r.handles[id]
	return n, ok
}

// Walker flattens live accessibility subtrees into session UI maps.
type Walker struct {
	Skip SkipFunc
	log  *zap.Logger
}

// NewWalker creates a walker reporting diagnostics to log.
func NewWalker(log *zap.Logger) *Walker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Walker{log: log}
}

// Walk flattens the given root nodes into a map keyed by short id. Short ids
// are the role's category prefix plus a per-prefix counter in traversal
// order: the first button seen is "B1", the second "B2", regardless of depth.
//
// Walk never fails: unreadable node attributes degrade to defaults, and
// unavailable roots simply contribute nothing.
func (w *Walker) Walk(roots []Node) *Result {
	st := &walkState{
		elements: make(map[string]model.UIElement),
		handles:  make(map[string]Node),
		counters: make(map[string]int),
	}
	for _, root := range roots {
		w.walk(st, root, "", 0)
	}
	w.log.Debug("walked accessibility tree",
		zap.Int("roots", len(roots)), zap.Int("elements", len(st.elements)))
	return &Result{Elements: st.elements, handles: st.handles}
}

type walkState struct {
	elements map[string]model.UIElement
	handles  map[string]Node
	counters map[string]int
}

// walk visits one node and returns the short ids it contributed to the
// parent's child list (one for an inserted node, its descendants' ids when
// the node itself was skipped).
func (w *Walker) walk(st *walkState, n Node, parentID string, depth int) []string {
	if depth >= MaxDepth {
		return nil
	}

	role, err := n.Role()
	if err != nil {
		role = ""
	}
	title, err := n.Title()
	if err != nil {
		title = ""
	}

	if w.Skip != nil && w.Skip(role, title) {
		var promoted []string
		for _, child := range childNodes(n) {
			promoted = append(promoted, w.walk(st, child, parentID, depth+1)...)
		}
		return promoted
	}

	value, err := n.Value()
	if err != nil {
		value = ""
	}
	frame, err := n.Frame()
	if err != nil {
		frame = model.Rect{}
	}
	var label string
	if l, ok := n.(Labeler); ok {
		if s, err := l.Label(); err == nil {
			label = s
		}
	}

	prefix := model.RolePrefix(role)
	st.counters[prefix]++
	id := prefix + strconv.Itoa(st.counters[prefix])

	st.elements[id] = model.UIElement{
		ID:         id,
		ElementID:  len(st.elements),
		Role:       role,
		Title:      title,
		Label:      label,
		Value:      value,
		Frame:      frame,
		Actionable: model.IsActionable(role),
		ParentID:   parentID,
	}
	st.handles[id] = n

	var childIDs []string
	for _, child := range childNodes(n) {
		childIDs = append(childIDs, w.walk(st, child, id, depth+1)...)
	}
	el := st.elements[id]
	el.Children = childIDs
	st.elements[id] = el

	return []string{id}
}

func childNodes(n Node) []Node {
	children, err := n.Children()
	if err != nil {
		return nil
	}
	return children
}
