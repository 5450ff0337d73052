package analysis

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/printwise/meshcost/pkg/geometry"
	"github.com/printwise/meshcost/pkg/stl"
)

// cuboidTriangles builds the 12 facets of an axis-aligned cuboid with
// its minimum corner at the origin. Keeping the corner at the origin
// matters: the unsigned tetrahedron summation is exact only when the
// origin is not outside the solid.
func cuboidTriangles(w, d, h float64) []geometry.Triangle {
	p := func(x, y, z float64) geometry.Vector3 { return geometry.NewVector3(x, y, z) }
	quad := func(a, b, c, e geometry.Vector3) []geometry.Triangle {
		return []geometry.Triangle{
			geometry.NewTriangle(a, b, c),
			geometry.NewTriangle(a, c, e),
		}
	}

	var tris []geometry.Triangle
	tris = append(tris, quad(p(0, 0, 0), p(w, 0, 0), p(w, d, 0), p(0, d, 0))...)
	tris = append(tris, quad(p(0, 0, h), p(w, 0, h), p(w, d, h), p(0, d, h))...)
	tris = append(tris, quad(p(0, 0, 0), p(w, 0, 0), p(w, 0, h), p(0, 0, h))...)
	tris = append(tris, quad(p(0, d, 0), p(w, d, 0), p(w, d, h), p(0, d, h))...)
	tris = append(tris, quad(p(0, 0, 0), p(0, d, 0), p(0, d, h), p(0, 0, h))...)
	tris = append(tris, quad(p(w, 0, 0), p(w, d, 0), p(w, d, h), p(w, 0, h))...)
	return tris
}

func encodeBuffer(t *testing.T, tris []geometry.Triangle) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := stl.Encode(&buf, "fixture", tris); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return buf.Bytes()
}

func mustSource(t *testing.T, buf []byte, opts ...stl.ReaderOptions) *stl.TriangleSource {
	t.Helper()
	src, err := stl.ReadTriangles(buf, opts...)
	if err != nil {
		t.Fatalf("ReadTriangles failed: %v", err)
	}
	return src
}

func TestSummarizeUnitCube(t *testing.T) {
	// 10 mm cube: 1 cm3 volume, 6 cm2 surface
	geo := Summarize(mustSource(t, encodeBuffer(t, cuboidTriangles(10, 10, 10))))

	if geo.TriangleCount != 12 {
		t.Fatalf("TriangleCount: expected 12, got %d", geo.TriangleCount)
	}
	if math.Abs(geo.VolumeCm3-1.0) > 0.01 {
		t.Errorf("Volume: expected ~1.0 cm3, got %v", geo.VolumeCm3)
	}
	if math.Abs(geo.SurfaceAreaCm2-6.0) > 0.01 {
		t.Errorf("SurfaceArea: expected ~6.0 cm2, got %v", geo.SurfaceAreaCm2)
	}

	dims := geo.DimensionsCm
	if math.Abs(dims.Width-1.0) > 1e-6 || math.Abs(dims.Depth-1.0) > 1e-6 || math.Abs(dims.Height-1.0) > 1e-6 {
		t.Errorf("Dimensions: expected 1x1x1 cm, got %+v", dims)
	}
}

func TestSummarizeCuboidDimensions(t *testing.T) {
	geo := Summarize(mustSource(t, encodeBuffer(t, cuboidTriangles(20, 30, 40))))

	dims := geo.DimensionsCm
	if math.Abs(dims.Width-2.0) > 1e-6 {
		t.Errorf("Width: expected 2.0 cm, got %v", dims.Width)
	}
	if math.Abs(dims.Depth-3.0) > 1e-6 {
		t.Errorf("Depth: expected 3.0 cm, got %v", dims.Depth)
	}
	if math.Abs(dims.Height-4.0) > 1e-6 {
		t.Errorf("Height: expected 4.0 cm, got %v", dims.Height)
	}

	bboxSize := geo.BoundingBoxMm.Size()
	if bboxSize != geometry.NewVector3(20, 30, 40) {
		t.Errorf("bounding box stays in mm: got %+v", bboxSize)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	geo := Summarize(mustSource(t, make([]byte, 84)))

	if geo.TriangleCount != 0 {
		t.Fatalf("expected empty sentinel, got %d triangles", geo.TriangleCount)
	}
	if geo.VolumeCm3 != 0 || geo.SurfaceAreaCm2 != 0 {
		t.Errorf("empty sentinel must be all zero, got %+v", geo)
	}
}

func TestSummarizeDegenerateTriangle(t *testing.T) {
	p := geometry.NewVector3(5, 5, 5)
	buf := encodeBuffer(t, []geometry.Triangle{geometry.NewTriangle(p, p, p)})

	geo := Summarize(mustSource(t, buf))

	if geo.TriangleCount != 1 {
		t.Fatalf("TriangleCount: expected 1, got %d", geo.TriangleCount)
	}
	if math.IsNaN(geo.VolumeCm3) || math.IsNaN(geo.SurfaceAreaCm2) {
		t.Fatal("degenerate triangle produced NaN")
	}
	if geo.VolumeCm3 != 0 || geo.SurfaceAreaCm2 != 0 {
		t.Errorf("degenerate triangle must contribute nothing, got %+v", geo)
	}
}

func TestSummarizeExtrapolatesCappedDecode(t *testing.T) {
	// Declare twice the triangles the buffer holds: totals double,
	// the bounding box does not.
	buf := encodeBuffer(t, cuboidTriangles(10, 10, 10))
	binary.LittleEndian.PutUint32(buf[80:], 24)

	geo := Summarize(mustSource(t, buf))

	if geo.TriangleCount != 12 {
		t.Fatalf("TriangleCount: expected 12, got %d", geo.TriangleCount)
	}
	if math.Abs(geo.VolumeCm3-2.0) > 0.02 {
		t.Errorf("extrapolated volume: expected ~2.0 cm3, got %v", geo.VolumeCm3)
	}
	if math.Abs(geo.SurfaceAreaCm2-12.0) > 0.02 {
		t.Errorf("extrapolated area: expected ~12.0 cm2, got %v", geo.SurfaceAreaCm2)
	}
	if math.Abs(geo.DimensionsCm.Width-1.0) > 1e-6 {
		t.Errorf("dimensions must not be extrapolated, got %+v", geo.DimensionsCm)
	}
}

func TestSummarizeWithTriangleLimit(t *testing.T) {
	buf := encodeBuffer(t, cuboidTriangles(10, 10, 10))
	geo := Summarize(mustSource(t, buf, stl.ReaderOptions{TriangleLimit: 6}))

	if geo.TriangleCount != 6 {
		t.Fatalf("TriangleCount: expected 6, got %d", geo.TriangleCount)
	}
	if geo.VolumeCm3 <= 0 {
		t.Errorf("capped summary should still estimate volume, got %v", geo.VolumeCm3)
	}
}
