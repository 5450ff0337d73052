package analysis

import (
	"github.com/printwise/meshcost/pkg/geometry"
	"github.com/printwise/meshcost/pkg/stl"
)

const (
	mm3PerCm3 = 1000.0
	mm2PerCm2 = 100.0
	mmPerCm   = 10.0
)

// Dimensions holds bounding extents in centimeters. Width maps to X,
// depth to Y and height to Z of the source mesh.
type Dimensions struct {
	Width  float64
	Depth  float64
	Height float64
}

// MeshGeometry summarizes one pass over a triangle stream. Volume,
// area and dimensions are in display units (cm); the bounding box
// keeps the source units (mm).
//
// A TriangleCount of zero is the empty sentinel: no other field is
// meaningful and callers must treat it as a failed analysis rather
// than an empty model.
type MeshGeometry struct {
	VolumeCm3      float64
	SurfaceAreaCm2 float64
	DimensionsCm   Dimensions
	BoundingBoxMm  geometry.BoundingBox
	TriangleCount  int
}

// Summarize consumes the triangle source in a single forward pass,
// accumulating bounding extrema, surface area (Heron, clamped for
// degenerate facets) and volume (unsigned tetrahedron summation from
// the origin).
//
// When the source was capped, area and volume are extrapolated
// linearly by declared/parsed. That assumes the unseen triangles
// resemble the seen ones; the bias is accepted for quoting purposes.
// The bounding box stays as measured.
func Summarize(src *stl.TriangleSource) MeshGeometry {
	bbox := geometry.NewBoundingBox()
	var volumeMm3, areaMm2 float64

	for {
		tri, ok := src.Next()
		if !ok {
			break
		}
		bbox.ExtendTriangle(tri)
		areaMm2 += tri.Area()
		volumeMm3 += tri.UnsignedTetrahedronVolume()
	}

	count := src.ParsedCount()
	if count == 0 {
		return MeshGeometry{}
	}

	if src.Capped() {
		ratio := float64(src.DeclaredCount()) / float64(count)
		volumeMm3 *= ratio
		areaMm2 *= ratio
	}

	size := bbox.Size()
	return MeshGeometry{
		VolumeCm3:      volumeMm3 / mm3PerCm3,
		SurfaceAreaCm2: areaMm2 / mm2PerCm2,
		DimensionsCm: Dimensions{
			Width:  size.X / mmPerCm,
			Depth:  size.Y / mmPerCm,
			Height: size.Z / mmPerCm,
		},
		BoundingBoxMm: bbox,
		TriangleCount: count,
	}
}
