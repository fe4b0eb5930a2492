package viewer

import "github.com/philipparndt/gobody/pkg/geometry"

// Part is one box of the mannequin
type Part struct {
	Name     string
	Min, Max geometry.Vector3
}

// mannequinParts are laid out in model-local space to match the classifier
// bands: +X is the front of the body, -Z its left side and Y points up.
var mannequinParts = []Part{
	{"head", geometry.NewVector3(-0.05, 0.365, -0.05), geometry.NewVector3(0.06, 0.46, 0.05)},
	{"neck", geometry.NewVector3(-0.025, 0.30, -0.025), geometry.NewVector3(0.025, 0.365, 0.025)},
	{"thorax", geometry.NewVector3(-0.06, 0.12, -0.095), geometry.NewVector3(0.06, 0.30, 0.095)},
	{"left shoulder", geometry.NewVector3(-0.045, 0.18, -0.15), geometry.NewVector3(0.045, 0.28, -0.095)},
	{"right shoulder", geometry.NewVector3(-0.045, 0.18, 0.095), geometry.NewVector3(0.045, 0.28, 0.15)},
	{"left arm", geometry.NewVector3(-0.035, -0.03, -0.15), geometry.NewVector3(0.035, 0.18, -0.105)},
	{"right arm", geometry.NewVector3(-0.035, -0.03, 0.105), geometry.NewVector3(0.035, 0.18, 0.15)},
	{"abdomen", geometry.NewVector3(-0.055, -0.04, -0.09), geometry.NewVector3(0.055, 0.12, 0.09)},
	{"pelvis", geometry.NewVector3(-0.055, -0.18, -0.09), geometry.NewVector3(0.055, -0.04, 0.09)},
	{"left leg", geometry.NewVector3(-0.04, -0.42, -0.08), geometry.NewVector3(0.04, -0.18, -0.01)},
	{"right leg", geometry.NewVector3(-0.04, -0.42, 0.01), geometry.NewVector3(0.04, -0.18, 0.08)},
	{"left foot", geometry.NewVector3(-0.04, -0.46, -0.075), geometry.NewVector3(0.10, -0.42, -0.015)},
	{"right foot", geometry.NewVector3(-0.04, -0.46, 0.015), geometry.NewVector3(0.10, -0.42, 0.075)},
}

// MannequinParts returns the boxes the mannequin is built from
func MannequinParts() []Part {
	return append([]Part(nil), mannequinParts...)
}

// Mannequin builds the procedural body mesh the region thresholds are tuned to
func Mannequin() *geometry.Mesh {
	mesh := geometry.NewMesh("mannequin")
	for _, p := range mannequinParts {
		mesh.AddBox(p.Min, p.Max)
	}
	return mesh
}
