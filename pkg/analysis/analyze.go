package analysis

import (
	"errors"
	"fmt"

	"github.com/printwise/meshcost/pkg/estimate"
	"github.com/printwise/meshcost/pkg/geometry"
	"github.com/printwise/meshcost/pkg/stl"
)

// ErrEmptyMesh reports a buffer from which no triangle could be
// decoded. It is always fatal; a zero-triangle model never becomes a
// zero-cost quote.
var ErrEmptyMesh = errors.New("analysis: mesh contains no parsable triangles")

// STLAnalysis is the complete result for one uploaded model: measured
// geometry plus the derived print estimate. It is assembled once per
// Analyze call and never mutated afterwards.
type STLAnalysis struct {
	VolumeCm3      float64
	SurfaceAreaCm2 float64
	DimensionsCm   Dimensions
	BoundingBoxMm  geometry.BoundingBox
	TriangleCount  int

	MaterialUsageGrams      float64
	EstimatedPrintTimeHours float64
	SupportRequired         bool
	PrintabilityScore       int
}

// Analyzer runs the reader → accumulator → estimator pipeline against
// a fixed printer profile. It holds no per-call state, so one
// Analyzer may serve concurrent callers.
type Analyzer struct {
	Profile       estimate.Profile
	ReaderOptions stl.ReaderOptions
}

// NewAnalyzer creates an analyzer for the given printer profile.
func NewAnalyzer(profile estimate.Profile) *Analyzer {
	return &Analyzer{Profile: profile}
}

// Analyze decodes buf as binary STL, summarizes its geometry and
// derives the print estimate. The computation is synchronous and
// deterministic: identical input yields an identical result.
func (a *Analyzer) Analyze(buf []byte, settings estimate.PrintSettings) (*STLAnalysis, error) {
	src, err := stl.ReadTriangles(buf, a.ReaderOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to read mesh: %w", err)
	}

	geo := Summarize(src)
	if geo.TriangleCount == 0 {
		return nil, ErrEmptyMesh
	}

	result := estimate.Estimate(estimate.Geometry{
		VolumeCm3: geo.VolumeCm3,
		WidthCm:   geo.DimensionsCm.Width,
		DepthCm:   geo.DimensionsCm.Depth,
		HeightCm:  geo.DimensionsCm.Height,
	}, settings, a.Profile)

	return &STLAnalysis{
		VolumeCm3:               geo.VolumeCm3,
		SurfaceAreaCm2:          geo.SurfaceAreaCm2,
		DimensionsCm:            geo.DimensionsCm,
		BoundingBoxMm:           geo.BoundingBoxMm,
		TriangleCount:           geo.TriangleCount,
		MaterialUsageGrams:      result.MaterialUsageGrams,
		EstimatedPrintTimeHours: result.PrintTimeHours,
		SupportRequired:         result.SupportRequired,
		PrintabilityScore:       result.PrintabilityScore,
	}, nil
}

// Analyze runs the full pipeline with the default printer profile.
func Analyze(buf []byte, settings estimate.PrintSettings) (*STLAnalysis, error) {
	return NewAnalyzer(estimate.DefaultProfile()).Analyze(buf, settings)
}
