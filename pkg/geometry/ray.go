package geometry

import "math"

// parallelEpsilon is the sine of the smallest angle between a ray and a
// triangle plane that still counts as a crossing
const parallelEpsilon = 1e-9

// Ray is a half-line from Origin along Direction
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray with a normalized direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectTriangle returns the ray parameter of the hit with tri using the
// Möller–Trumbore test. Both faces count as hits.
func (r Ray) IntersectTriangle(tri Triangle) (float64, bool) {
	edge1 := tri.V2.Sub(tri.V1)
	edge2 := tri.V3.Sub(tri.V1)

	p := r.Direction.Cross(edge2)
	det := edge1.Dot(p)
	if math.Abs(det) <= parallelEpsilon*edge1.Length()*edge2.Length() {
		return 0, false
	}
	invDet := 1.0 / det

	s := r.Origin.Sub(tri.V1)
	u := s.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := r.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := edge2.Dot(q) * invDet
	if t <= 0 {
		return 0, false
	}
	return t, true
}
