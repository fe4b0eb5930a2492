// Package interaction converts pointer events on the model into region hover
// and selection transitions.
package interaction

import (
	"github.com/philipparndt/gobody/pkg/anatomy"
	"github.com/philipparndt/gobody/pkg/geometry"
	"github.com/philipparndt/gobody/pkg/selection"
	"go.uber.org/zap"
)

// TransformSource supplies the model's current world transform. It reports
// false while the model is not ready.
type TransformSource interface {
	WorldTransform() (geometry.Transform, bool)
}

// TransformFunc adapts a function to TransformSource
type TransformFunc func() (geometry.Transform, bool)

// WorldTransform calls f
func (f TransformFunc) WorldTransform() (geometry.Transform, bool) {
	return f()
}

// StaticTransform is a TransformSource that is always ready
type StaticTransform geometry.Transform

// WorldTransform returns the transform
func (s StaticTransform) WorldTransform() (geometry.Transform, bool) {
	return geometry.Transform(s), true
}

// Classifier maps a model-local point to a region
type Classifier func(geometry.Vector3) anatomy.Region

// Option configures an Adapter
type Option func(*Adapter)

// WithLogger sets the logger used for dropped events
func WithLogger(l *zap.Logger) Option {
	return func(a *Adapter) {
		a.logger = l
	}
}

// WithClassifier replaces anatomy.Classify
func WithClassifier(c Classifier) Option {
	return func(a *Adapter) {
		a.classify = c
	}
}

// WithBreath replaces the default breathing animation
func WithBreath(b *Breath) Option {
	return func(a *Adapter) {
		a.breath = b
	}
}

// Adapter feeds world-space pointer events into a selection machine
type Adapter struct {
	source   TransformSource
	machine  *selection.Machine
	classify Classifier
	breath   *Breath
	logger   *zap.Logger
}

// NewAdapter wires source and machine together
func NewAdapter(source TransformSource, machine *selection.Machine, opts ...Option) *Adapter {
	a := &Adapter{
		source:   source,
		machine:  machine,
		classify: anatomy.Classify,
		breath:   NewBreath(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Machine returns the driven state machine
func (a *Adapter) Machine() *selection.Machine {
	return a.machine
}

// Locate converts a world-space point into the model's local frame and
// classifies it. It reports false when no transform is available.
func (a *Adapter) Locate(world geometry.Vector3) (geometry.Vector3, anatomy.Region, bool) {
	if a.source == nil {
		return geometry.Vector3{}, anatomy.None, false
	}
	t, ok := a.source.WorldTransform()
	if !ok {
		return geometry.Vector3{}, anatomy.None, false
	}
	local, ok := t.WorldToLocal(world)
	if !ok {
		return geometry.Vector3{}, anatomy.None, false
	}
	return local, a.classify(local), true
}

// PointerDown selects the region under world. Events arriving before the
// model is ready are dropped.
func (a *Adapter) PointerDown(world geometry.Vector3) {
	local, region, ok := a.Locate(world)
	if !ok {
		a.logger.Debug("Dropped pointer down, model not ready")
		return
	}
	a.logger.Debug("Pointer down",
		zap.Float64("x", local.X), zap.Float64("y", local.Y), zap.Float64("z", local.Z),
		zap.Stringer("region", region))
	a.machine.Select(region)
}

// PointerMove hovers the region under world
func (a *Adapter) PointerMove(world geometry.Vector3) {
	_, region, ok := a.Locate(world)
	if !ok {
		a.logger.Debug("Dropped pointer move, model not ready")
		return
	}
	a.machine.Hover(region)
}

// PointerLeave clears the hover once the cursor is off the model
func (a *Adapter) PointerLeave() {
	a.machine.ClearHover()
}

// Deselect clears the selection
func (a *Adapter) Deselect() {
	a.machine.Deselect()
}

// Tick advances the breathing animation one frame from the current hover
// state and returns the scale to render with.
func (a *Adapter) Tick() float64 {
	return a.breath.Tick(a.machine.Hovered().Valid())
}

// Scale returns the current breathing scale without advancing it
func (a *Adapter) Scale() float64 {
	return a.breath.Current
}
