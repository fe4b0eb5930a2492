// Package analysis measures how a mesh surface is partitioned by the region
// classifier. The thresholds are tuned to one set of proportions, so a
// coverage report is the quickest way to see whether a mesh fits them.
package analysis

import (
	"fmt"
	"sort"

	"github.com/philipparndt/gobody/pkg/anatomy"
	"github.com/philipparndt/gobody/pkg/geometry"
)

// RegionCoverage is the share of the surface classified as one region
type RegionCoverage struct {
	Region  anatomy.Region
	Area    float64
	Share   float64
	Samples int
}

// CoverageResult contains the region partition of a mesh
type CoverageResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	TriangleCount int
	SampleCount   int
	Regions       []RegionCoverage // in anatomy.All order, including empty regions
}

// AnalyzeRegions samples every triangle of mesh on an n×n barycentric grid,
// classifies each sample in model-local space and accumulates the area it
// stands for.
func AnalyzeRegions(mesh *geometry.Mesh, n int) *CoverageResult {
	if n < 1 {
		n = 1
	}

	result := &CoverageResult{
		BoundingBox:   mesh.BoundingBox(),
		TriangleCount: mesh.TriangleCount(),
	}
	result.Dimensions = result.BoundingBox.Size()

	byRegion := make(map[anatomy.Region]*RegionCoverage)
	for _, r := range anatomy.All() {
		result.Regions = append(result.Regions, RegionCoverage{Region: r})
	}
	for i := range result.Regions {
		byRegion[result.Regions[i].Region] = &result.Regions[i]
	}

	for _, tri := range mesh.Triangles {
		area := tri.Area()
		result.SurfaceArea += area
		cell := area / float64(n*n)

		for _, p := range samplePoints(tri, n) {
			c := byRegion[anatomy.Classify(p)]
			c.Area += cell
			c.Samples++
			result.SampleCount++
		}
	}

	if result.SurfaceArea > 0 {
		for i := range result.Regions {
			result.Regions[i].Share = result.Regions[i].Area / result.SurfaceArea
		}
	}
	return result
}

// samplePoints returns the centroids of the n² sub-triangles of tri
func samplePoints(tri geometry.Triangle, n int) []geometry.Vector3 {
	points := make([]geometry.Vector3, 0, n*n)
	fn := float64(n)
	for i := 0; i < n; i++ {
		for j := 0; i+j < n; j++ {
			points = append(points, tri.Barycentric((float64(i)+1.0/3)/fn, (float64(j)+1.0/3)/fn))
			if i+j < n-1 {
				points = append(points, tri.Barycentric((float64(i)+2.0/3)/fn, (float64(j)+2.0/3)/fn))
			}
		}
	}
	return points
}

// Missing returns the regions no sample landed in
func Missing(result *CoverageResult) []anatomy.Region {
	var missing []anatomy.Region
	for _, c := range result.Regions {
		if c.Samples == 0 {
			missing = append(missing, c.Region)
		}
	}
	return missing
}

// FindLargestRegions returns the count regions with the most surface
func FindLargestRegions(result *CoverageResult, count int) []RegionCoverage {
	regions := make([]RegionCoverage, len(result.Regions))
	copy(regions, result.Regions)

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Area > regions[j].Area
	})

	if count > len(regions) {
		count = len(regions)
	}

	return regions[:count]
}

// FormatShare formats a share as a percentage
func FormatShare(share float64) string {
	return fmt.Sprintf("%5.1f%%", share*100)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
