// Package feedback turns the hover/selection state into the tint painted on
// the body. Policy (TintFor) is a pure function; Controller is the apply step
// that broadcasts the result to every surface of the model.
package feedback

import "github.com/philipparndt/gobody/pkg/selection"

// Tint is one of the three fixed looks of the model
type Tint int

const (
	Base Tint = iota
	Hover
	Selected
)

func (t Tint) String() string {
	switch t {
	case Hover:
		return "hover"
	case Selected:
		return "selected"
	default:
		return "base"
	}
}

// TintFor resolves the state by precedence: selected > hovered > base.
// A selection wins even when a different region is hovered.
func TintFor(s selection.State) Tint {
	switch {
	case s.Selected.Valid():
		return Selected
	case s.Hovered.Valid():
		return Hover
	default:
		return Base
	}
}
