package geometry

// Triangle is a single facet with counter-clockwise winding
type Triangle struct {
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(v1, v2, v3 Vector3) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3}
}

// Normal computes the unit face normal from the winding order
func (t Triangle) Normal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return t.V1.Add(t.V2).Add(t.V3).Mul(1.0 / 3.0)
}

// Map returns the triangle with fn applied to every vertex
func (t Triangle) Map(fn func(Vector3) Vector3) Triangle {
	return Triangle{V1: fn(t.V1), V2: fn(t.V2), V3: fn(t.V3)}
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Length() / 2
}

// Barycentric returns u*V1 + v*V2 + (1-u-v)*V3
func (t Triangle) Barycentric(u, v float64) Vector3 {
	return t.V1.Mul(u).Add(t.V2.Mul(v)).Add(t.V3.Mul(1 - u - v))
}
