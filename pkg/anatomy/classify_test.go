package anatomy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/philipparndt/gobody/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestClassifyBands(t *testing.T) {
	tests := []struct {
		name string
		p    geometry.Vector3
		want Region
	}{
		{"head", geometry.NewVector3(0, 0.37, 0), Head},
		{"neck just below head", geometry.NewVector3(0, 0.35, 0), Neck},
		{"head floor is neck", geometry.NewVector3(0, 0.36, 0), Neck},
		{"neck floor is upper band", geometry.NewVector3(0, 0.30, 0), Heart},

		{"upper left shoulder", geometry.NewVector3(0, 0.25, -0.09), LeftShoulder},
		{"upper right shoulder", geometry.NewVector3(0, 0.25, 0.09), RightShoulder},
		{"upper spine", geometry.NewVector3(-0.05, 0.25, 0), Spine},
		{"upper left lung", geometry.NewVector3(0, 0.25, -0.05), LeftLung},
		{"upper right lung", geometry.NewVector3(0, 0.25, 0.05), RightLung},
		{"heart", geometry.NewVector3(0.02, 0.25, 0.01), Heart},
		{"upper side reach is exclusive", geometry.NewVector3(0, 0.25, 0.08), RightLung},

		{"chest", geometry.NewVector3(0, 0.15, 0), Chest},
		{"chest spine", geometry.NewVector3(-0.04, 0.15, 0.02), Spine},
		{"chest left lung", geometry.NewVector3(0, 0.15, -0.04), LeftLung},
		{"chest right lung", geometry.NewVector3(0, 0.15, 0.04), RightLung},
		{"chest side above cap", geometry.NewVector3(0, 0.20, -0.12), LeftShoulder},
		{"chest side below cap", geometry.NewVector3(0, 0.14, -0.12), LeftArm},
		{"chest right arm", geometry.NewVector3(0, 0.14, 0.12), RightArm},
		{"chest side reach is exclusive", geometry.NewVector3(0, 0.15, -0.10), LeftLung},

		{"abdomen", geometry.NewVector3(0, 0, 0), Abdomen},
		{"liver", geometry.NewVector3(0.10, 0.0, 0.03), Liver},
		{"abdomen left of liver", geometry.NewVector3(0.10, 0.0, -0.03), Abdomen},
		{"left kidney", geometry.NewVector3(-0.05, 0.0, -0.03), LeftKidney},
		{"right kidney", geometry.NewVector3(-0.05, 0.0, 0.03), RightKidney},
		{"lower back", geometry.NewVector3(-0.05, 0.0, 0.01), LowerBack},
		{"posterior x is exclusive", geometry.NewVector3(-0.03, 0.0, 0.01), Abdomen},
		{"abdomen left arm", geometry.NewVector3(0, 0.0, -0.2), LeftArm},
		{"abdomen right arm", geometry.NewVector3(0, 0.0, 0.2), RightArm},

		{"hip", geometry.NewVector3(0.10, -0.10, 0.05), Hip},
		{"hip ignores lateral offset", geometry.NewVector3(0, -0.10, -0.3), Hip},
		{"left leg", geometry.NewVector3(0, -0.30, -0.05), LeftLeg},
		{"right leg", geometry.NewVector3(0, -0.30, 0.05), RightLeg},
		{"leg midline is right", geometry.NewVector3(0, -0.30, 0), RightLeg},
		{"left foot", geometry.NewVector3(0, -0.50, -0.05), LeftFoot},
		{"right foot", geometry.NewVector3(0, -0.50, 0.05), RightFoot},
		{"leg floor is foot", geometry.NewVector3(0, -0.42, -0.01), LeftFoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.p))
		})
	}
}

func TestClassifySidedness(t *testing.T) {
	pairs := []struct {
		y           float64
		left, right Region
	}{
		{0.25, LeftShoulder, RightShoulder},
		{0.14, LeftArm, RightArm},
		{0.0, LeftArm, RightArm},
		{-0.30, LeftLeg, RightLeg},
		{-0.60, LeftFoot, RightFoot},
	}

	for _, pair := range pairs {
		assert.Equal(t, pair.left, Classify(geometry.NewVector3(0, pair.y, -0.2)), "y=%v z<0", pair.y)
		assert.Equal(t, pair.right, Classify(geometry.NewVector3(0, pair.y, 0.2)), "y=%v z>0", pair.y)
	}
}

func TestClassifyTotalAndDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	edges := []float64{
		HeadFloor, NeckFloor, UpperFloor, ChestFloor, AbdomenFloor, HipFloor, LegFloor,
		UpperSideReach, SideReach, ShoulderCap, PosteriorX, LungOffset, OrganOffset,
	}

	sample := func() float64 {
		switch rng.Intn(4) {
		case 0:
			e := edges[rng.Intn(len(edges))]
			return math.Nextafter(e, e+float64(rng.Intn(3)-1))
		case 1:
			return -edges[rng.Intn(len(edges))]
		case 2:
			return (rng.Float64() - 0.5) * 2
		default:
			return (rng.Float64() - 0.5) * 1e6
		}
	}

	for i := 0; i < 20000; i++ {
		p := geometry.NewVector3(sample(), sample(), sample())
		got := Classify(p)
		if !got.Valid() {
			t.Fatalf("Classify(%v) returned invalid region %d", p, got)
		}
		if again := Classify(p); again != got {
			t.Fatalf("Classify(%v) not deterministic: %v then %v", p, got, again)
		}
	}
}

func TestClassifyNonFinite(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	assert.Equal(t, RightFoot, Classify(geometry.NewVector3(nan, nan, nan)))
	assert.Equal(t, Head, Classify(geometry.NewVector3(0, inf, 0)))
	assert.Equal(t, LeftFoot, Classify(geometry.NewVector3(0, -inf, -inf)))
	assert.True(t, Classify(geometry.NewVector3(inf, 0, nan)).Valid())
}
