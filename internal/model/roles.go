package model

// rolePrefixes maps accessibility roles to short-id category prefixes.
var rolePrefixes = map[string]string{
	"AXButton":      "B",
	"AXTextField":   "T",
	"AXTextArea":    "T",
	"AXLink":        "L",
	"AXMenu":        "M",
	"AXMenuBar":     "M",
	"AXMenuItem":    "M",
	"AXMenuBarItem": "M",
	"AXCheckBox":    "C",
	"AXRadioButton": "R",
	"AXSlider":      "S",
}

// GenericPrefix is the short-id prefix shared by all uncategorized roles.
const GenericPrefix = "G"

// RolePrefix returns the one-letter short-id prefix for an accessibility role.
func RolePrefix(role string) string {
	if p, ok := rolePrefixes[role]; ok {
		return p
	}
	return GenericPrefix
}

// actionableRoles is the fixed allow-list of roles considered interactive.
var actionableRoles = map[string]bool{
	"AXButton":           true,
	"AXTextField":        true,
	"AXTextArea":         true,
	"AXCheckBox":         true,
	"AXRadioButton":      true,
	"AXPopUpButton":      true,
	"AXLink":             true,
	"AXMenuItem":         true,
	"AXSlider":           true,
	"AXComboBox":         true,
	"AXSegmentedControl": true,
}

// IsActionable reports whether a role accepts user interaction.
func IsActionable(role string) bool {
	return actionableRoles[role]
}
