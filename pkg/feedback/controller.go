package feedback

import (
	"image/color"

	"github.com/philipparndt/gobody/pkg/selection"
)

// Surface is anything drawable the renderer can paint
type Surface interface {
	SetColor(c color.Color)
	SetEmissive(c color.Color, intensity float64)
}

// Controller applies the palette to surfaces whenever the resolved tint changes
type Controller struct {
	palette Palette
	applied Tint
	primed  bool
}

// NewController creates a controller that has not painted anything yet
func NewController(p Palette) *Controller {
	return &Controller{palette: p}
}

// Palette returns the active palette
func (c *Controller) Palette() Palette {
	return c.palette
}

// SetPalette swaps the palette. The next Update repaints unconditionally.
func (c *Controller) SetPalette(p Palette) {
	c.palette = p
	c.primed = false
}

// Current returns the tint painted by the last Update
func (c *Controller) Current() Tint {
	return c.applied
}

// Update resolves the tint for s and paints every surface if it differs from
// what was painted last. It reports whether anything was painted.
func (c *Controller) Update(s selection.State, surfaces ...Surface) bool {
	tint := TintFor(s)
	if c.primed && tint == c.applied {
		return false
	}
	Broadcast(c.palette.Shade(tint), surfaces...)
	c.applied = tint
	c.primed = true
	return true
}

// Broadcast paints shade on every surface
func Broadcast(shade Shade, surfaces ...Surface) {
	for _, s := range surfaces {
		s.SetColor(shade.Color)
		s.SetEmissive(shade.Emissive, shade.EmissiveIntensity)
	}
}
