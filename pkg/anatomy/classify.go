package anatomy

import (
	"math"

	"github.com/philipparndt/gobody/pkg/geometry"
)

// Band floors along the vertical axis. A point belongs to the first band whose
// floor it lies strictly above. The values are tuned to the proportions of the
// reference mannequin; Classify is not scale-invariant.
const (
	HeadFloor    = 0.36
	NeckFloor    = 0.30
	UpperFloor   = 0.22
	ChestFloor   = 0.12
	AbdomenFloor = -0.04
	HipFloor     = -0.18
	LegFloor     = -0.42
)

// Lateral and depth thresholds used inside the torso bands.
const (
	UpperSideReach = 0.08  // |z| beyond this in the upper band is a shoulder
	SideReach      = 0.10  // |z| beyond this in the chest and abdomen bands is an arm or shoulder
	ShoulderCap    = 0.17  // side points of the chest band above this are shoulders, below are arms
	PosteriorX     = -0.03 // x below this is the back of the body
	LungOffset     = 0.03  // |z| beyond this in the chest bands is a lung
	OrganOffset    = 0.02  // |z| beyond this in the abdomen band selects kidney or liver
)

// Classify maps a point in model-local space to a region. It is total: every
// input, including NaN, resolves to exactly one of the 21 regions. Negative z
// is the model's left side.
func Classify(p geometry.Vector3) Region {
	x, y, z := p.X, p.Y, p.Z
	side := math.Abs(z)

	switch {
	case y > HeadFloor:
		return Head
	case y > NeckFloor:
		return Neck
	case y > UpperFloor:
		if side > UpperSideReach {
			return lateral(z, LeftShoulder, RightShoulder)
		}
		return chestOrgan(x, z, Heart)
	case y > ChestFloor:
		if side > SideReach {
			if y > ShoulderCap {
				return lateral(z, LeftShoulder, RightShoulder)
			}
			return lateral(z, LeftArm, RightArm)
		}
		return chestOrgan(x, z, Chest)
	case y > AbdomenFloor:
		if side > SideReach {
			return lateral(z, LeftArm, RightArm)
		}
		if x < PosteriorX {
			switch {
			case z < -OrganOffset:
				return LeftKidney
			case z > OrganOffset:
				return RightKidney
			default:
				return LowerBack
			}
		}
		if z > OrganOffset {
			return Liver
		}
		return Abdomen
	case y > HipFloor:
		return Hip
	case y > LegFloor:
		return lateral(z, LeftLeg, RightLeg)
	default:
		// Catch-all: anything below the legs, and NaN, is a foot.
		return lateral(z, LeftFoot, RightFoot)
	}
}

// chestOrgan resolves the two chest bands once lateral limbs are ruled out
func chestOrgan(x, z float64, center Region) Region {
	switch {
	case x < PosteriorX:
		return Spine
	case z < -LungOffset:
		return LeftLung
	case z > LungOffset:
		return RightLung
	default:
		return center
	}
}

func lateral(z float64, left, right Region) Region {
	if z < 0 {
		return left
	}
	return right
}
