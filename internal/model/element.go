package model

import "math"

// Rect is an axis-aligned screen rectangle in points.
type Rect struct {
	X      float64 `yaml:"x"      json:"x"`
	Y      float64 `yaml:"y"      json:"y"`
	Width  float64 `yaml:"width"  json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// OriginDistance returns the Euclidean distance between the origins of r and o.
func (r Rect) OriginDistance(o Rect) float64 {
	dx := r.X - o.X
	dy := r.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Center returns the rectangle's center point.
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// IsZero reports whether the rectangle has no position and no size.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// UIElement is one flattened accessibility node within a session's UI map.
// Live accessibility handles are never persisted; an element is described by
// its identifying attributes and re-matched against the live tree on use.
//
// Field names are part of the on-disk session format and must not change.
type UIElement struct {
	ID         string   `yaml:"id"                 json:"id"`        // Role-prefixed short id, e.g. "B1"
	ElementID  int      `yaml:"elementId"          json:"elementId"` // Sequence id in traversal order
	Role       string   `yaml:"role"               json:"role"`
	Title      string   `yaml:"title,omitempty"    json:"title,omitempty"`
	Label      string   `yaml:"label,omitempty"    json:"label,omitempty"`
	Value      string   `yaml:"value,omitempty"    json:"value,omitempty"`
	Frame      Rect     `yaml:"frame"              json:"frame"`
	Actionable bool     `yaml:"isActionable"       json:"isActionable"`
	ParentID   string   `yaml:"parentId,omitempty" json:"parentId,omitempty"` // Empty for roots
	Children   []string `yaml:"children,omitempty" json:"children,omitempty"` // Short ids of direct children
}
