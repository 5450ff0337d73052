package geometry

import "math"

// Triangle is a single mesh facet. The stored STL normal is discarded
// during decoding; only the three vertices matter for measurement.
type Triangle struct {
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(v1, v2, v3 Vector3) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3}
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Area returns the surface area of the triangle using Heron's formula.
// The radicand is clamped at zero: for near-degenerate triangles,
// rounding can push it slightly negative, and a NaN here would poison
// every downstream total.
func (t Triangle) Area() float64 {
	e := t.EdgeLengths()
	s := (e[0] + e[1] + e[2]) / 2.0
	radicand := s * (s - e[0]) * (s - e[1]) * (s - e[2])
	return math.Sqrt(math.Max(0, radicand))
}

// Normal computes the unit facet normal. Returns the zero vector for
// degenerate triangles.
func (t Triangle) Normal() Vector3 {
	n := t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1))
	length := n.Length()
	if length == 0 {
		return Vector3{}
	}
	return n.Scale(1.0 / length)
}

// UnsignedTetrahedronVolume returns the absolute volume of the
// tetrahedron spanned by the origin and the three vertices, via the
// scalar triple product.
//
// Summing this per facet reproduces the solid volume only for
// reasonably closed, convex-ish meshes with the origin on or inside
// the solid; a properly signed divergence integral would be exact.
// Callers rely on this exact approximation, so any replacement must
// swap the whole function, not adjust it.
func (t Triangle) UnsignedTetrahedronVolume() float64 {
	return math.Abs(t.V1.Dot(t.V2.Cross(t.V3))) / 6.0
}
