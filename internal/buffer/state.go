package buffer

import "termfolio/internal/domain"

// DefaultDimensions is the guess used before the first real measurement.
// The first frame may be drawn against it; the first resize corrects it.
var DefaultDimensions = domain.Dimensions{Rows: 60, Cols: 150}

// State is the per-page buffer state
type State struct {
	Dim domain.Dimensions
}

// Action is a transition of the buffer state
type Action interface {
	isAction()
}

// SetDimensions replaces the current grid size
type SetDimensions struct {
	Dim domain.Dimensions
}

func (SetDimensions) isAction() {}

// Initial returns the state a page starts from
func Initial(dim domain.Dimensions) State {
	return State{Dim: dim}
}

// Reduce applies an action and returns the resulting state
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetDimensions:
		s.Dim = a.Dim
	}
	return s
}
