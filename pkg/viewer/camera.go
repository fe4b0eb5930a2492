package viewer

import (
	"math"

	"github.com/philipparndt/gobody/pkg/geometry"
)

// Orbit limits
const (
	maxPitch    = math.Pi/2 - 0.1
	minDistance = 0.1
)

// Camera is an orbit camera circling a target point
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // Pitch
	RotationY float64 // Yaw, zero looks along -Z

	home orbit
}

// orbit is the view a camera returns to on Reset
type orbit struct {
	Target    geometry.Vector3
	Distance  float64
	RotationX float64
	RotationY float64
}

// NewCamera frames bbox, looking at the front of the body (+X)
func NewCamera(bbox geometry.BoundingBox) *Camera {
	c := &Camera{
		Up:   geometry.NewVector3(0, 1, 0),
		FOV:  math.Pi / 4, // 45 degrees
		home: orbit{
			Target:    bbox.Center(),
			Distance:  bbox.MaxDimension() * 2.0,
			RotationY: math.Pi / 2,
		},
	}
	c.Reset()
	return c
}

// Reset restores the initial orbit
func (c *Camera) Reset() {
	c.Target = c.home.Target
	c.Distance = c.home.Distance
	c.RotationX = c.home.RotationX
	c.RotationY = c.home.RotationY
	c.UpdatePosition()
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX = math.Max(-maxPitch, math.Min(maxPitch, c.RotationX+deltaX))
	c.RotationY += deltaY
	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance = math.Max(minDistance, c.Distance*(1.0+delta))
	c.UpdatePosition()
}

// basis returns the camera's forward, right and up vectors
func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// Project projects a world point to screen coordinates and its view depth
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward, right, up := c.basis()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	if z <= 0.01 {
		z = 0.01 // Prevent division by zero
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// Unproject converts screen coordinates into a world-space picking ray
func (c *Camera) Unproject(screenX, screenY, width, height float64) geometry.Ray {
	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	forward, right, up := c.basis()
	direction := forward.Add(right.Mul(ndcX * fovScale * aspect)).Add(up.Mul(ndcY * fovScale))

	return geometry.NewRay(c.Position, direction)
}
