package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform places a model in the world. Position and Scale belong to the outer
// group and Rotation to the inner group, so the cumulative world matrix is
// T(Position) * S(Scale) * R(Rotation).
type Transform struct {
	Position Vector3
	Scale    Vector3
	Rotation mgl64.Quat
}

// IdentityTransform returns a transform that leaves points unchanged
func IdentityTransform() Transform {
	return Transform{
		Scale:    NewVector3(1, 1, 1),
		Rotation: mgl64.QuatIdent(),
	}
}

// NewTransform builds a transform from a position, per-axis scale and
// Euler rotation in degrees applied in X, Y, Z order.
func NewTransform(position, scale, rotationDeg Vector3) Transform {
	rotation := mgl64.AnglesToQuat(
		mgl64.DegToRad(rotationDeg.X),
		mgl64.DegToRad(rotationDeg.Y),
		mgl64.DegToRad(rotationDeg.Z),
		mgl64.XYZ,
	)
	return Transform{Position: position, Scale: scale, Rotation: rotation}
}

// Scaled returns a copy with every scale component multiplied by factor
func (t Transform) Scaled(factor float64) Transform {
	t.Scale = t.Scale.Mul(factor)
	return t
}

// rotation returns the unit rotation, treating the zero quaternion as identity
func (t Transform) rotation() mgl64.Quat {
	if t.Rotation == (mgl64.Quat{}) {
		return mgl64.QuatIdent()
	}
	return t.Rotation.Normalize()
}

// Matrix returns the world matrix
func (t Transform) Matrix() mgl64.Mat4 {
	translate := mgl64.Translate3D(t.Position.X, t.Position.Y, t.Position.Z)
	scale := mgl64.Scale3D(t.Scale.X, t.Scale.Y, t.Scale.Z)
	return translate.Mul4(scale).Mul4(t.rotation().Mat4())
}

// Invertible reports whether every component is finite and no scale
// component is zero
func (t Transform) Invertible() bool {
	values := []float64{
		t.Position.X, t.Position.Y, t.Position.Z,
		t.Scale.X, t.Scale.Y, t.Scale.Z,
		t.Rotation.W, t.Rotation.V[0], t.Rotation.V[1], t.Rotation.V[2],
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return t.Scale.X != 0 && t.Scale.Y != 0 && t.Scale.Z != 0
}

// InverseMatrix returns R^-1 * S^-1 * T^-1
func (t Transform) InverseMatrix() (mgl64.Mat4, bool) {
	if !t.Invertible() {
		return mgl64.Mat4{}, false
	}
	translate := mgl64.Translate3D(-t.Position.X, -t.Position.Y, -t.Position.Z)
	scale := mgl64.Scale3D(1/t.Scale.X, 1/t.Scale.Y, 1/t.Scale.Z)
	return t.rotation().Conjugate().Mat4().Mul4(scale).Mul4(translate), true
}

// LocalToWorld maps a model-local point into world space
func (t Transform) LocalToWorld(p Vector3) Vector3 {
	return FromVec3(mgl64.TransformCoordinate(p.Vec3(), t.Matrix()))
}

// WorldToLocal applies the inverse world matrix to p. It reports false when the
// transform has no inverse (a zero scale component or a non-finite value), in
// which case no local point exists.
func (t Transform) WorldToLocal(p Vector3) (Vector3, bool) {
	inv, ok := t.InverseMatrix()
	if !ok {
		return Vector3{}, false
	}
	return FromVec3(mgl64.TransformCoordinate(p.Vec3(), inv)), true
}
