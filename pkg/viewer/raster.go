package viewer

import (
	"image"
	"image/color"
	"math"
)

// screenVertex is a projected vertex: pixel position plus view depth
type screenVertex struct {
	X, Y, Z float64
}

// finite reports whether the vertex can be rasterized
func (v screenVertex) finite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// edge is the signed area test of p against the edge a->b
func edge(a, b screenVertex, px, py float64) float64 {
	return (px-a.X)*(b.Y-a.Y) - (py-a.Y)*(b.X-a.X)
}

// fillTriangleWithDepth rasterizes a projected triangle over its bounding
// box, keeping the nearest fragment per pixel
func fillTriangleWithDepth(img *image.RGBA, zbuffer []float64, v1, v2, v3 screenVertex, col color.RGBA) {
	if !v1.finite() || !v2.finite() || !v3.finite() {
		return
	}
	area := edge(v1, v2, v3.X, v3.Y)
	if area == 0 {
		return
	}

	bounds := img.Bounds()
	minX := int(math.Max(float64(bounds.Min.X), math.Floor(math.Min(v1.X, math.Min(v2.X, v3.X)))))
	maxX := int(math.Min(float64(bounds.Max.X-1), math.Ceil(math.Max(v1.X, math.Max(v2.X, v3.X)))))
	minY := int(math.Max(float64(bounds.Min.Y), math.Floor(math.Min(v1.Y, math.Min(v2.Y, v3.Y)))))
	maxY := int(math.Min(float64(bounds.Max.Y-1), math.Ceil(math.Max(v1.Y, math.Max(v2.Y, v3.Y)))))
	width := bounds.Dx()

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w1 := edge(v2, v3, px, py) / area
			w2 := edge(v3, v1, px, py) / area
			w3 := edge(v1, v2, px, py) / area
			if w1 < 0 || w2 < 0 || w3 < 0 {
				continue
			}

			z := w1*v1.Z + w2*v2.Z + w3*v3.Z
			idx := (y-bounds.Min.Y)*width + (x - bounds.Min.X)
			if z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		if (image.Point{X: x1, Y: y1}).In(bounds) {
			img.SetRGBA(x1, y1, col)
		}
		if x1 == x2 && y1 == y2 {
			return
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
