package tree

import (
	"errors"
	"testing"

	"github.com/uiscout/uiscout/internal/model"
)

// fakeNode is an in-memory accessibility node for walker tests.
type fakeNode struct {
	role     string
	title    string
	value    string
	frame    model.Rect
	children []*fakeNode

	roleErr  error
	frameErr error
}

func (f *fakeNode) Role() (string, error) {
	if f.roleErr != nil {
		return "", f.roleErr
	}
	return f.role, nil
}

func (f *fakeNode) Title() (string, error) { return f.title, nil }
func (f *fakeNode) Value() (string, error) { return f.value, nil }

func (f *fakeNode) Frame() (model.Rect, error) {
	if f.frameErr != nil {
		return model.Rect{}, f.frameErr
	}
	return f.frame, nil
}

func (f *fakeNode) Children() ([]Node, error) {
	nodes := make([]Node, len(f.children))
	for i, c := range f.children {
		nodes[i] = c
	}
	return nodes, nil
}

func TestWalkAssignsShortIDs(t *testing.T) {
	root := &fakeNode{
		role:  "AXWindow",
		title: "Untitled",
		children: []*fakeNode{
			{role: "AXButton", title: "OK", frame: model.Rect{X: 10, Y: 10, Width: 80, Height: 20}},
			{role: "AXTextField", title: "Name"},
			{role: "AXButton", title: "Cancel"},
		},
	}

	result := NewWalker(nil).Walk([]Node{root})

	if len(result.Elements) != 4 {
		t.Fatalf("elements = %d, want 4", len(result.Elements))
	}

	window, ok := result.Elements["G1"]
	if !ok {
		t.Fatal("window element G1 missing")
	}
	if window.ParentID != "" {
		t.Errorf("root parentId = %q, want empty", window.ParentID)
	}
	if window.ElementID != 0 {
		t.Errorf("root elementId = %d, want 0", window.ElementID)
	}
	wantChildren := []string{"B1", "T1", "B2"}
	if len(window.Children) != len(wantChildren) {
		t.Fatalf("root children = %v, want %v", window.Children, wantChildren)
	}
	for i, id := range wantChildren {
		if window.Children[i] != id {
			t.Errorf("root children[%d] = %q, want %q", i, window.Children[i], id)
		}
	}

	ok1 := result.Elements["B1"]
	if ok1.Title != "OK" || !ok1.Actionable || ok1.ParentID != "G1" {
		t.Errorf("B1 = %+v, want OK button under G1", ok1)
	}
	cancel := result.Elements["B2"]
	if cancel.Title != "Cancel" {
		t.Errorf("B2 title = %q, want Cancel", cancel.Title)
	}
	field := result.Elements["T1"]
	if field.Role != "AXTextField" || !field.Actionable {
		t.Errorf("T1 = %+v, want actionable text field", field)
	}
}

func TestWalkSequenceIDsFollowTraversalOrder(t *testing.T) {
	root := &fakeNode{
		role: "AXWindow",
		children: []*fakeNode{
			{role: "AXButton", children: []*fakeNode{
				{role: "AXStaticText"},
			}},
			{role: "AXButton"},
		},
	}

	result := NewWalker(nil).Walk([]Node{root})

	// Pre-order: window, first button, its text, second button.
	wantSeq := map[string]int{"G1": 0, "B1": 1, "G2": 2, "B2": 3}
	for id, want := range wantSeq {
		el, ok := result.Elements[id]
		if !ok {
			t.Fatalf("element %s missing", id)
		}
		if el.ElementID != want {
			t.Errorf("%s elementId = %d, want %d", id, el.ElementID, want)
		}
	}
}

func TestWalkBoundsDepth(t *testing.T) {
	// A chain 50 nodes deep; only the first MaxDepth levels are recorded.
	leaf := &fakeNode{role: "AXGroup"}
	node := leaf
	for i := 0; i < 49; i++ {
		node = &fakeNode{role: "AXGroup", children: []*fakeNode{node}}
	}

	result := NewWalker(nil).Walk([]Node{node})
	if len(result.Elements) != MaxDepth {
		t.Errorf("elements = %d, want %d", len(result.Elements), MaxDepth)
	}
}

func TestWalkTerminatesOnCycle(t *testing.T) {
	node := &fakeNode{role: "AXGroup"}
	node.children = []*fakeNode{node} // node is its own child

	result := NewWalker(nil).Walk([]Node{node})
	if len(result.Elements) != MaxDepth {
		t.Errorf("elements = %d, want %d", len(result.Elements), MaxDepth)
	}
}

func TestWalkSkipPromotesChildren(t *testing.T) {
	root := &fakeNode{
		role: "AXWindow",
		children: []*fakeNode{
			{role: "AXGroup", children: []*fakeNode{
				{role: "AXButton", title: "Inside"},
			}},
			{role: "AXButton", title: "Outside"},
		},
	}

	w := NewWalker(nil)
	w.Skip = func(role, title string) bool { return role == "AXGroup" }
	result := w.Walk([]Node{root})

	if len(result.Elements) != 3 {
		t.Fatalf("elements = %d, want 3", len(result.Elements))
	}
	inside := result.Elements["B1"]
	if inside.Title != "Inside" || inside.ParentID != "G1" {
		t.Errorf("B1 = %+v, want Inside promoted under G1", inside)
	}
	window := result.Elements["G1"]
	if len(window.Children) != 2 || window.Children[0] != "B1" || window.Children[1] != "B2" {
		t.Errorf("root children = %v, want [B1 B2]", window.Children)
	}
}

func TestWalkDegradesUnreadableAttributes(t *testing.T) {
	root := &fakeNode{
		role: "AXWindow",
		children: []*fakeNode{
			{roleErr: errors.New("attribute unavailable"), title: "Mystery"},
			{role: "AXButton", frameErr: errors.New("attribute unavailable")},
		},
	}

	result := NewWalker(nil).Walk([]Node{root})

	// Unreadable role degrades to the generic prefix.
	mystery := result.Elements["G2"]
	if mystery.Role != "" || mystery.Title != "Mystery" {
		t.Errorf("G2 = %+v, want empty role with title Mystery", mystery)
	}
	button := result.Elements["B1"]
	if !button.Frame.IsZero() {
		t.Errorf("B1 frame = %+v, want zero", button.Frame)
	}
}

func TestResultHandle(t *testing.T) {
	button := &fakeNode{role: "AXButton", title: "OK"}
	root := &fakeNode{role: "AXWindow", children: []*fakeNode{button}}

	result := NewWalker(nil).Walk([]Node{root})

	n, ok := result.Handle("B1")
	if !ok {
		t.Fatal("Handle(B1) not found")
	}
	if n != Node(button) {
		t.Error("Handle(B1) is not the walked node")
	}
	if _, ok := result.Handle("B9"); ok {
		t.Error("Handle(B9) should not exist")
	}
}
