package viewer

import (
	"testing"

	"github.com/philipparndt/gobody/pkg/anatomy"
	"github.com/stretchr/testify/assert"
)

func TestMannequinPartsMatchClassifierBands(t *testing.T) {
	want := map[string]anatomy.Region{
		"head":           anatomy.Head,
		"neck":           anatomy.Neck,
		"thorax":         anatomy.Chest,
		"left shoulder":  anatomy.LeftShoulder,
		"right shoulder": anatomy.RightShoulder,
		"left arm":       anatomy.LeftArm,
		"right arm":      anatomy.RightArm,
		"abdomen":        anatomy.Abdomen,
		"pelvis":         anatomy.Hip,
		"left leg":       anatomy.LeftLeg,
		"right leg":      anatomy.RightLeg,
		"left foot":      anatomy.LeftFoot,
		"right foot":     anatomy.RightFoot,
	}

	parts := MannequinParts()
	assert.Len(t, parts, len(want))
	for _, p := range parts {
		center := p.Min.Add(p.Max).Mul(0.5)
		assert.Equal(t, want[p.Name], anatomy.Classify(center), "center of %s", p.Name)
	}
}

func TestMannequinMesh(t *testing.T) {
	mesh := Mannequin()
	assert.Equal(t, 12*len(MannequinParts()), mesh.TriangleCount())

	bbox := mesh.BoundingBox()
	assert.InDelta(t, 0.46, bbox.Max.Y, 1e-12)
	assert.InDelta(t, -0.46, bbox.Min.Y, 1e-12)
	assert.InDelta(t, -bbox.Min.Z, bbox.Max.Z, 1e-12, "mannequin is symmetric left to right")
}
