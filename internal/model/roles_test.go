package model

import "testing"

func TestRolePrefix(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{"AXButton", "B"},
		{"AXTextField", "T"},
		{"AXTextArea", "T"},
		{"AXLink", "L"},
		{"AXMenu", "M"},
		{"AXMenuBar", "M"},
		{"AXMenuItem", "M"},
		{"AXMenuBarItem", "M"},
		{"AXCheckBox", "C"},
		{"AXRadioButton", "R"},
		{"AXSlider", "S"},
		{"AXGroup", "G"},
		{"AXWindow", "G"},
		{"", "G"},
		{"SomethingUnknown", "G"},
	}
	for _, tt := range tests {
		if got := RolePrefix(tt.role); got != tt.want {
			t.Errorf("RolePrefix(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestIsActionable(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{"AXButton", true},
		{"AXTextField", true},
		{"AXTextArea", true},
		{"AXCheckBox", true},
		{"AXRadioButton", true},
		{"AXPopUpButton", true},
		{"AXLink", true},
		{"AXMenuItem", true},
		{"AXSlider", true},
		{"AXComboBox", true},
		{"AXSegmentedControl", true},
		{"AXGroup", false},
		{"AXWindow", false},
		{"AXStaticText", false},
		{"AXMenu", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsActionable(tt.role); got != tt.want {
			t.Errorf("IsActionable(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestRectOriginDistance(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 50}
	b := Rect{X: 3, Y: 4, Width: 999, Height: 999}
	if got := a.OriginDistance(b); got != 5 {
		t.Errorf("OriginDistance = %v, want 5", got)
	}
	// Size plays no part in the distance.
	c := Rect{X: 0, Y: 0, Width: 1, Height: 1}
	if got := a.OriginDistance(c); got != 0 {
		t.Errorf("OriginDistance of same origin = %v, want 0", got)
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 40}
	x, y := r.Center()
	if x != 60 || y != 40 {
		t.Errorf("Center = (%v, %v), want (60, 40)", x, y)
	}
}
