package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/gobody/pkg/geometry"
)

// ambient is the light every face receives regardless of orientation
const ambient = 0.3

// Background fills the parts of a snapshot the body does not cover
var Background = color.RGBA{R: 30, G: 30, B: 36, A: 255}

// Snapshot is an offscreen flat-shaded rendering target. It is a
// feedback.Surface, so the tint controller paints it like any other surface.
type Snapshot struct {
	Color     color.Color
	Emissive  color.Color
	Intensity float64
	Wireframe bool
}

// SetColor sets the diffuse color
func (s *Snapshot) SetColor(c color.Color) {
	s.Color = c
}

// SetEmissive sets the glow added on top of the shaded color
func (s *Snapshot) SetEmissive(c color.Color, intensity float64) {
	s.Emissive = c
	s.Intensity = intensity
}

// Render draws mesh, placed in the world by world, as seen from camera
func (s *Snapshot) Render(mesh *geometry.Mesh, camera *Camera, world geometry.Transform, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = Background.R, Background.G, Background.B, Background.A
	}
	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	w, h := float64(width), float64(height)
	project := func(v geometry.Vector3) screenVertex {
		x, y, z := camera.Project(v, w, h)
		return screenVertex{X: x, Y: y, Z: z}
	}

	edgeColor := shade(s.Color, s.Emissive, s.Intensity, 0.5*ambient)
	for _, local := range mesh.Triangles {
		tri := local.Map(world.LocalToWorld)
		toCamera := camera.Position.Sub(tri.Center()).Normalize()
		light := ambient + (1-ambient)*math.Abs(tri.Normal().Dot(toCamera))

		v1, v2, v3 := project(tri.V1), project(tri.V2), project(tri.V3)
		if !v1.finite() || !v2.finite() || !v3.finite() {
			continue
		}
		fillTriangleWithDepth(img, zbuffer, v1, v2, v3, shade(s.Color, s.Emissive, s.Intensity, light))

		if s.Wireframe {
			for _, e := range [3][2]screenVertex{{v1, v2}, {v2, v3}, {v3, v1}} {
				drawLine(img, int(e[0].X), int(e[0].Y), int(e[1].X), int(e[1].Y), edgeColor)
			}
		}
	}
	return img
}

// shade lights base by light and adds the emissive glow
func shade(base, emissive color.Color, intensity, light float64) color.RGBA {
	if base == nil {
		base = color.White
	}
	if emissive == nil {
		emissive = color.Black
	}
	br, bg, bb, _ := base.RGBA()
	er, eg, eb, _ := emissive.RGBA()
	channel := func(b, e uint32) uint8 {
		v := float64(b>>8)*light + float64(e>>8)*intensity
		return uint8(math.Min(255, math.Round(v)))
	}
	return color.RGBA{R: channel(br, er), G: channel(bg, eg), B: channel(bb, eb), A: 255}
}
