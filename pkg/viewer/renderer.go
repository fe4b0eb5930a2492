package viewer

import (
	"image/color"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gobody/pkg/anatomy"
	"github.com/philipparndt/gobody/pkg/feedback"
	"github.com/philipparndt/gobody/pkg/geometry"
	"github.com/philipparndt/gobody/pkg/interaction"
	"github.com/philipparndt/gobody/pkg/selection"
	"go.uber.org/zap"
)

// Option configures a BodyView
type Option func(*BodyView)

// WithLogger sets the logger shared with the interaction adapter
func WithLogger(l *zap.Logger) Option {
	return func(v *BodyView) {
		v.logger = l
	}
}

// WithBreath replaces the default breathing animation
func WithBreath(b *interaction.Breath) Option {
	return func(v *BodyView) {
		v.breath = b
	}
}

// WithPalette sets the tint palette
func WithPalette(p feedback.Palette) Option {
	return func(v *BodyView) {
		v.tint.SetPalette(p)
	}
}

// BodyView is a fyne widget that draws the body as a wireframe, orbits on
// drag, zooms on scroll and turns taps and mouse movement into region
// selection and hover.
type BodyView struct {
	widget.BaseWidget
	mesh      *geometry.Mesh
	world     geometry.Transform
	camera    *Camera
	adapter   *interaction.Adapter
	tint      *feedback.Controller
	breath    *interaction.Breath
	logger    *zap.Logger
	lines     []*canvas.Line
	lineColor color.Color
	glow      color.Color
	glowLevel float64
	dragStart *fyne.Position
	dragging  bool
	width     float64
	height    float64
	animation *fyne.Animation
}

var (
	_ fyne.Tappable               = (*BodyView)(nil)
	_ fyne.Draggable              = (*BodyView)(nil)
	_ fyne.Scrollable             = (*BodyView)(nil)
	_ desktop.Hoverable           = (*BodyView)(nil)
	_ feedback.Surface            = (*BodyView)(nil)
	_ interaction.TransformSource = (*BodyView)(nil)
)

// NewBodyView creates the widget for mesh placed in the world by world,
// driving machine
func NewBodyView(mesh *geometry.Mesh, world geometry.Transform, machine *selection.Machine, opts ...Option) *BodyView {
	v := &BodyView{
		mesh:   mesh,
		world:  world,
		tint:   feedback.NewController(feedback.DefaultPalette()),
		breath: interaction.NewBreath(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if mesh != nil {
		v.camera = NewCamera(mesh.BoundingBox().Transformed(world))
	}
	v.adapter = interaction.NewAdapter(v, machine,
		interaction.WithBreath(v.breath),
		interaction.WithLogger(v.logger))

	changed := func(anatomy.Region) { v.applyTint() }
	machine.Subscribe(selection.Listener{OnHover: changed, OnSelect: changed})
	v.tint.Update(machine.State(), v)

	v.ExtendBaseWidget(v)
	return v
}

// Adapter returns the interaction adapter fed by this view
func (v *BodyView) Adapter() *interaction.Adapter {
	return v.adapter
}

// Camera returns the orbit camera
func (v *BodyView) Camera() *Camera {
	return v.camera
}

// Tint returns the tint currently painted
func (v *BodyView) Tint() feedback.Tint {
	return v.tint.Current()
}

// SetPalette swaps the palette and repaints
func (v *BodyView) SetPalette(p feedback.Palette) {
	v.tint.SetPalette(p)
	v.applyTint()
}

// WorldTransform returns the transform the body is drawn with, including the
// breathing scale. The view is not ready before its first layout.
func (v *BodyView) WorldTransform() (geometry.Transform, bool) {
	if v.mesh == nil || v.width <= 0 || v.height <= 0 {
		return geometry.Transform{}, false
	}
	return v.world.Scaled(v.adapter.Scale()), true
}

// SetColor implements feedback.Surface
func (v *BodyView) SetColor(c color.Color) {
	v.lineColor = c
}

// SetEmissive implements feedback.Surface
func (v *BodyView) SetEmissive(c color.Color, intensity float64) {
	v.glow = c
	v.glowLevel = intensity
}

func (v *BodyView) applyTint() {
	if v.tint.Update(v.adapter.Machine().State(), v) && v.width > 0 {
		v.Render(v.width, v.height)
	}
}

// CreateRenderer creates the renderer for the widget
func (v *BodyView) CreateRenderer() fyne.WidgetRenderer {
	return &bodyViewRenderer{view: v}
}

// Render rebuilds the wireframe for the given size
func (v *BodyView) Render(width, height float64) {
	v.width = width
	v.height = height
	v.lines = v.lines[:0]

	world, ok := v.WorldTransform()
	if !ok {
		v.Refresh()
		return
	}

	for _, local := range v.mesh.Triangles {
		tri := local.Map(world.LocalToWorld)
		vertices := [3]geometry.Vector3{tri.V1, tri.V2, tri.V3}

		for i := 0; i < 3; i++ {
			x1, y1, z1 := v.camera.Project(vertices[i], width, height)
			x2, y2, z2 := v.camera.Project(vertices[(i+1)%3], width, height)

			// Nearer edges are drawn brighter
			depth := (z1 + z2) / 2 / v.camera.Distance
			light := math.Max(ambient, math.Min(1, 1.6-depth))

			line := canvas.NewLine(shade(v.lineColor, v.glow, v.glowLevel, light))
			line.StrokeWidth = 1
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))
			v.lines = append(v.lines, line)
		}
	}

	v.Refresh()
}

// pick casts a ray through a screen position and returns the world hit
func (v *BodyView) pick(pos fyne.Position) (geometry.Vector3, bool) {
	world, ok := v.WorldTransform()
	if !ok {
		return geometry.Vector3{}, false
	}
	ray := v.camera.Unproject(float64(pos.X), float64(pos.Y), v.width, v.height)
	return v.mesh.Raycast(ray, world)
}

// Tapped selects the region under the pointer
func (v *BodyView) Tapped(event *fyne.PointEvent) {
	if v.dragging {
		return
	}
	if hit, ok := v.pick(event.Position); ok {
		v.adapter.PointerDown(hit)
	}
}

// MouseIn implements desktop.Hoverable
func (v *BodyView) MouseIn(event *desktop.MouseEvent) {
	v.MouseMoved(event)
}

// MouseMoved hovers the region under the pointer, or clears the hover when
// the pointer is off the body
func (v *BodyView) MouseMoved(event *desktop.MouseEvent) {
	if v.dragging {
		return
	}
	if hit, ok := v.pick(event.Position); ok {
		v.adapter.PointerMove(hit)
		return
	}
	v.adapter.PointerLeave()
}

// MouseOut clears the hover
func (v *BodyView) MouseOut() {
	v.adapter.PointerLeave()
}

// Dragged handles mouse drag events for rotation
func (v *BodyView) Dragged(event *fyne.DragEvent) {
	if v.camera == nil {
		return
	}
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y

		v.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		v.Render(v.width, v.height)
	}
	pos := event.Position
	v.dragStart = &pos
	v.dragging = true
}

// DragEnd handles the end of a drag event
func (v *BodyView) DragEnd() {
	v.dragStart = nil
	v.dragging = false
}

// Scrolled handles scroll events for zooming
func (v *BodyView) Scrolled(event *fyne.ScrollEvent) {
	if v.camera == nil {
		return
	}
	v.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	v.Render(v.width, v.height)
}

// ResetView restores the initial orbit
func (v *BodyView) ResetView() {
	if v.camera == nil {
		return
	}
	v.camera.Reset()
	v.Render(v.width, v.height)
}

// StartBreathing runs the hover scale animation on the render loop
func (v *BodyView) StartBreathing() {
	if v.animation != nil {
		return
	}
	v.animation = &fyne.Animation{
		Duration:    time.Second,
		RepeatCount: fyne.AnimationRepeatForever,
		Curve:       fyne.AnimationLinear,
		Tick: func(float32) {
			v.tick()
		},
	}
	v.animation.Start()
}

// StopBreathing stops the animation started by StartBreathing
func (v *BodyView) StopBreathing() {
	if v.animation != nil {
		v.animation.Stop()
		v.animation = nil
	}
}

// tick advances the breathing by one frame and redraws when the scale moved
func (v *BodyView) tick() {
	before := v.adapter.Scale()
	if after := v.adapter.Tick(); math.Abs(after-before) > 1e-5 && v.width > 0 {
		v.Render(v.width, v.height)
	}
}

// bodyViewRenderer implements fyne.WidgetRenderer
type bodyViewRenderer struct {
	view    *BodyView
	objects []fyne.CanvasObject
}

func (r *bodyViewRenderer) Layout(size fyne.Size) {
	r.view.Render(float64(size.Width), float64(size.Height))
}

func (r *bodyViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *bodyViewRenderer) Refresh() {
	r.objects = r.objects[:0]
	for _, line := range r.view.lines {
		r.objects = append(r.objects, line)
	}
	canvas.Refresh(r.view)
}

func (r *bodyViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *bodyViewRenderer) Destroy() {
	r.view.StopBreathing()
}
