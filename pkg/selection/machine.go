// Package selection tracks which body region is hovered and which is selected
// and tells listeners when either changes.
//
// A Machine is not safe for concurrent use. The host must drive it from a
// single event goroutine.
package selection

import "github.com/philipparndt/gobody/pkg/anatomy"

// State is the pair of hovered and selected regions. Either may be
// anatomy.None, and the same region may be both hovered and selected.
type State struct {
	Hovered  anatomy.Region
	Selected anatomy.Region
}

// Listener receives transitions. Either callback may be nil.
type Listener struct {
	OnHover  func(anatomy.Region)
	OnSelect func(anatomy.Region)
}

// Option configures a Machine
type Option func(*Machine)

// WithInitialSelection pre-selects r without emitting an event
func WithInitialSelection(r anatomy.Region) Option {
	return func(m *Machine) {
		m.state.Selected = normalize(r)
	}
}

// WithListener registers l
func WithListener(l Listener) Option {
	return func(m *Machine) {
		m.listeners = append(m.listeners, l)
	}
}

// Machine is the hover/selection state machine
type Machine struct {
	state     State
	listeners []Listener
}

// New creates a machine with nothing hovered and nothing selected unless an
// initial selection is given.
func New(opts ...Option) *Machine {
	m := &Machine{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe adds a listener after construction
func (m *Machine) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

// State returns a copy of the current state
func (m *Machine) State() State {
	return m.state
}

// Hovered returns the hovered region
func (m *Machine) Hovered() anatomy.Region {
	return m.state.Hovered
}

// Selected returns the selected region
func (m *Machine) Selected() anatomy.Region {
	return m.state.Selected
}

// Hover moves the hover to r. Repeating the current hover is a no-op, so
// OnHover never fires twice in a row for the same region.
func (m *Machine) Hover(r anatomy.Region) {
	r = normalize(r)
	if r == m.state.Hovered {
		return
	}
	m.state.Hovered = r
	m.emitHover(r)
}

// ClearHover drops the hover. It emits OnHover(None) only if something was hovered.
func (m *Machine) ClearHover() {
	m.Hover(anatomy.None)
}

// Select selects r. It always emits, even when r is already selected, so the
// host can re-focus its panel.
func (m *Machine) Select(r anatomy.Region) {
	r = normalize(r)
	m.state.Selected = r
	m.emitSelect(r)
}

// Deselect clears the selection and emits OnSelect(None)
func (m *Machine) Deselect() {
	m.Select(anatomy.None)
}

func (m *Machine) emitHover(r anatomy.Region) {
	for _, l := range m.listeners {
		if l.OnHover != nil {
			l.OnHover(r)
		}
	}
}

func (m *Machine) emitSelect(r anatomy.Region) {
	for _, l := range m.listeners {
		if l.OnSelect != nil {
			l.OnSelect(r)
		}
	}
}

// normalize maps out-of-range values to None so the state only ever holds
// members of the region set.
func normalize(r anatomy.Region) anatomy.Region {
	if !r.Valid() {
		return anatomy.None
	}
	return r
}
