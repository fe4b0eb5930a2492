package geometry

import "math"

// Mesh is a triangle soup in model-local space
type Mesh struct {
	Name      string
	Triangles []Triangle
}

// NewMesh creates an empty mesh
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Triangles: make([]Triangle, 0),
	}
}

// AddTriangle appends a facet
func (m *Mesh) AddTriangle(t Triangle) {
	m.Triangles = append(m.Triangles, t)
}

// AddBox appends the twelve outward-facing triangles of an axis-aligned box
func (m *Mesh) AddBox(min, max Vector3) {
	c := [8]Vector3{
		{min.X, min.Y, min.Z}, {max.X, min.Y, min.Z},
		{max.X, max.Y, min.Z}, {min.X, max.Y, min.Z},
		{min.X, min.Y, max.Z}, {max.X, min.Y, max.Z},
		{max.X, max.Y, max.Z}, {min.X, max.Y, max.Z},
	}
	faces := [6][4]int{
		{0, 3, 2, 1}, // -z
		{4, 5, 6, 7}, // +z
		{0, 4, 7, 3}, // -x
		{1, 2, 6, 5}, // +x
		{0, 1, 5, 4}, // -y
		{3, 7, 6, 2}, // +y
	}
	for _, f := range faces {
		m.AddTriangle(NewTriangle(c[f[0]], c[f[1]], c[f[2]]))
		m.AddTriangle(NewTriangle(c[f[0]], c[f[2]], c[f[3]]))
	}
}

// TriangleCount returns the number of facets
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox returns the local-space bounds of the mesh
func (m *Mesh) BoundingBox() BoundingBox {
	bbox := NewBoundingBox()
	for _, t := range m.Triangles {
		bbox.Extend(t.V1)
		bbox.Extend(t.V2)
		bbox.Extend(t.V3)
	}
	return bbox
}

// Raycast intersects a world-space ray with the mesh placed by world and
// returns the nearest world-space hit.
func (m *Mesh) Raycast(ray Ray, world Transform) (Vector3, bool) {
	nearest := math.Inf(1)
	for _, t := range m.Triangles {
		if d, ok := ray.IntersectTriangle(t.Map(world.LocalToWorld)); ok && d < nearest {
			nearest = d
		}
	}
	if math.IsInf(nearest, 1) {
		return Vector3{}, false
	}
	return ray.At(nearest), true
}
