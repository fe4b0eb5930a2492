package viewer

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/gobody/pkg/anatomy"
	"github.com/philipparndt/gobody/pkg/feedback"
	"github.com/philipparndt/gobody/pkg/geometry"
	"github.com/philipparndt/gobody/pkg/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const viewSize = 400

func newTestView(t *testing.T, world geometry.Transform) (*BodyView, *selection.Machine) {
	t.Helper()
	test.NewTempApp(t)

	m := selection.New()
	v := NewBodyView(Mannequin(), world, m)
	v.Render(viewSize, viewSize)
	return v, m
}

// screenOf returns where a model-local point lands on screen
func screenOf(v *BodyView, world geometry.Transform, local geometry.Vector3) fyne.Position {
	x, y, _ := v.Camera().Project(world.LocalToWorld(local), viewSize, viewSize)
	return fyne.NewPos(float32(x), float32(y))
}

func TestTapSelectsRegion(t *testing.T) {
	world := geometry.IdentityTransform()
	v, m := newTestView(t, world)

	v.Tapped(&fyne.PointEvent{Position: screenOf(v, world, geometry.NewVector3(0.06, 0.41, 0))})
	assert.Equal(t, anatomy.Head, m.Selected())
	assert.Equal(t, feedback.Selected, v.Tint())

	v.Tapped(&fyne.PointEvent{Position: screenOf(v, world, geometry.NewVector3(0.055, 0.04, 0))})
	assert.Equal(t, anatomy.Abdomen, m.Selected())

	// Taps beside the body leave the selection alone
	v.Tapped(&fyne.PointEvent{Position: fyne.NewPos(2, 2)})
	assert.Equal(t, anatomy.Abdomen, m.Selected())
}

func TestTapOnMovedModel(t *testing.T) {
	world := geometry.NewTransform(geometry.NewVector3(0, 1, 0), geometry.NewVector3(3, 3, 3), geometry.NewVector3(0, 0, 0))
	v, m := newTestView(t, world)

	v.Tapped(&fyne.PointEvent{Position: screenOf(v, world, geometry.NewVector3(0.04, -0.30, -0.045))})
	assert.Equal(t, anatomy.LeftLeg, m.Selected())
}

func TestMouseMoveHoversAndLeaves(t *testing.T) {
	world := geometry.IdentityTransform()
	v, m := newTestView(t, world)

	var hovers []anatomy.Region
	m.Subscribe(selection.Listener{OnHover: func(r anatomy.Region) { hovers = append(hovers, r) }})

	at := func(p fyne.Position) *desktop.MouseEvent {
		return &desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: p}}
	}

	v.MouseIn(at(screenOf(v, world, geometry.NewVector3(0.04, -0.44, 0.045))))
	assert.Equal(t, anatomy.RightFoot, m.Hovered())
	assert.Equal(t, feedback.Hover, v.Tint())

	v.MouseMoved(at(screenOf(v, world, geometry.NewVector3(0.04, -0.44, 0.05))))
	v.MouseMoved(at(fyne.NewPos(1, 1)))
	assert.Equal(t, anatomy.None, m.Hovered())
	assert.Equal(t, feedback.Base, v.Tint())

	v.MouseOut()
	assert.Equal(t, []anatomy.Region{anatomy.RightFoot, anatomy.None}, hovers)
}

func TestEventsBeforeLayoutAreDropped(t *testing.T) {
	test.NewTempApp(t)
	m := selection.New()
	v := NewBodyView(Mannequin(), geometry.IdentityTransform(), m)

	_, ready := v.WorldTransform()
	assert.False(t, ready)

	v.Adapter().PointerDown(geometry.NewVector3(0, 0.4, 0))
	assert.Equal(t, selection.State{}, m.State())
}

func TestInitialSelectionPaintsSelectedTint(t *testing.T) {
	test.NewTempApp(t)
	m := selection.New(selection.WithInitialSelection(anatomy.Heart))
	v := NewBodyView(Mannequin(), geometry.IdentityTransform(), m)

	assert.Equal(t, feedback.Selected, v.Tint())
	assert.Equal(t, feedback.DefaultPalette().Selected.Color, v.lineColor)
}

func TestBreathingScalesDrawnModel(t *testing.T) {
	world := geometry.IdentityTransform()
	v, _ := newTestView(t, world)

	v.Adapter().PointerMove(geometry.NewVector3(0.06, 0.41, 0))
	for i := 0; i < 5; i++ {
		v.tick()
	}

	drawn, ok := v.WorldTransform()
	require.True(t, ok)
	assert.Greater(t, drawn.Scale.X, 1.0)
	assert.Less(t, drawn.Scale.X, 1.02)
	assert.NotEmpty(t, v.lines)
}

func TestDragRotatesCamera(t *testing.T) {
	v, _ := newTestView(t, geometry.IdentityTransform())
	before := v.Camera().RotationY

	v.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 100)}})
	v.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(150, 100)}})
	v.DragEnd()

	assert.InDelta(t, before+0.5, v.Camera().RotationY, 1e-6)

	v.ResetView()
	assert.Equal(t, before, v.Camera().RotationY)
}
