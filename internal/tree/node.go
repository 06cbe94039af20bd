package tree

import "github.com/uiscout/uiscout/internal/model"

// Node is a live handle into the accessibility tree of one process. A handle
// is only valid within the invocation that obtained it and must never be
// persisted; sessions store identifying attributes instead.
//
// Attribute getters may fail on individual nodes (the tree is externally
// owned and mutates underneath us); the walker degrades such fields to
// defaults rather than aborting the traversal.
type Node interface {
	Role() (string, error)
	Title() (string, error)
	Value() (string, error)
	Frame() (model.Rect, error)
	Children() ([]Node, error)
}

// Labeler is implemented by backends that expose a separate accessibility
// label (description) in addition to the title.
type Labeler interface {
	Label() (string, error)
}

// Activator is implemented by nodes that support a primitive activation
// action (press / click-equivalent).
type Activator interface {
	Activate() error
}
