package estimate

import (
	"strings"

	"github.com/pkg/errors"
)

// WindowMaterial is the frame material chosen for a room's window.
type WindowMaterial string

const (
	Wood      WindowMaterial = "Wood"
	Aluminium WindowMaterial = "Aluminium"
)

// WindowMaterials lists the supported materials in display order.
func WindowMaterials() []WindowMaterial {
	return []WindowMaterial{Wood, Aluminium}
}

// Valid reports whether m is one of the supported materials.
func (m WindowMaterial) Valid() bool {
	switch m {
	case Wood, Aluminium:
		return true
	}
	return false
}

func (m WindowMaterial) String() string {
	return string(m)
}

// ParseWindowMaterial maps user input onto a WindowMaterial. Matching ignores
// case and surrounding spaces; "aluminum" is accepted as a spelling of Aluminium.
func ParseWindowMaterial(s string) (WindowMaterial, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wood":
		return Wood, nil
	case "aluminium", "aluminum":
		return Aluminium, nil
	}
	return WindowMaterial(s), errors.Wrapf(ErrInvalidMaterialSelection, "window material %q", s)
}
