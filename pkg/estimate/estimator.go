package estimate

import "math"

const mmPerCm = 10.0

const (
	brimWidthMm         = 5.0
	brimPasses          = 5
	layerChangeSec      = 0.2
	accelOverhead       = 1.10
	infillSpeedFactor   = 1.2
	supportSpeedFactor  = 1.5
	supportHeightFactor = 0.3

	maxOverhangAngleDeg = 45.0
	// Calibration factor on the 45 degree bridge rule. Without it the
	// span check would flag every part wider than two layer heights.
	overhangSpanFactor = 100.0

	oversizePenalty    = 50
	thinFeaturePenalty = 20
	tallAspectPenalty  = 15
	tallAspectRatio    = 3.0
	supportAspectRatio = 2.0
)

var qualityFactors = map[Quality]float64{
	QualityDraft:  1.5,
	QualityNormal: 1.0,
	QualityHigh:   0.7,
}

// Geometry is the slice of the mesh summary the estimator consumes:
// total volume and bounding extents, in centimeters.
type Geometry struct {
	VolumeCm3 float64
	WidthCm   float64
	DepthCm   float64
	HeightCm  float64
}

// Result is the derived print estimate for one job.
type Result struct {
	MaterialUsageGrams float64
	PrintTimeHours     float64
	PrintabilityScore  int
	SupportRequired    bool
}

// Estimate derives material usage, print time, printability and
// support need from aggregate geometry. It is a pure function: no
// I/O, no state, and it never returns NaN or Inf for finite input.
func Estimate(geo Geometry, settings PrintSettings, profile Profile) Result {
	support := supportRequired(geo, settings)
	return Result{
		MaterialUsageGrams: materialUsage(geo, settings, profile, support),
		PrintTimeHours:     printTime(geo, settings, profile, support),
		PrintabilityScore:  printabilityScore(geo, profile),
		SupportRequired:    support,
	}
}

// materialUsage estimates filament consumption in grams. The model is
// a shell-and-infill decomposition of the bounding geometry: walls
// along the perimeter, infill in the remaining interior volume, plus
// support and brim allowances.
func materialUsage(geo Geometry, s PrintSettings, p Profile, support bool) float64 {
	perimeterCm := 2 * (geo.WidthCm + geo.DepthCm)

	wallVolume := perimeterCm * geo.HeightCm * (s.WallThicknessMm / mmPerCm)
	internalVolume := math.Max(0, geo.VolumeCm3-wallVolume)
	infillVolume := internalVolume * float64(s.InfillPercent) / 100.0

	var supportVolume float64
	if support {
		baseAreaCm2 := geo.WidthCm * geo.DepthCm
		supportVolume = baseAreaCm2 * supportHeightFactor * geo.HeightCm * float64(s.SupportDensity) / 100.0
	}

	brimVolume := perimeterCm * (brimWidthMm / mmPerCm) * (s.LayerHeightMm / mmPerCm)

	totalVolume := wallVolume + infillVolume + supportVolume + brimVolume
	return totalVolume * p.density(s.Material)
}

// printTime estimates wall-clock duration in hours. Feature times are
// computed per layer in millimeter/second units, then a fixed
// overhead covers acceleration and travel moves.
func printTime(geo Geometry, s PrintSettings, p Profile, support bool) float64 {
	if s.LayerHeightMm <= 0 {
		return 0
	}

	widthMm := geo.WidthCm * mmPerCm
	depthMm := geo.DepthCm * mmPerCm
	heightMm := geo.HeightCm * mmPerCm

	layerCount := math.Ceil(heightMm / s.LayerHeightMm)

	perimeterSpeed := p.BaseSpeedMmSec * qualityFactor(s.Quality) * p.speedFactor(s.Material)
	if perimeterSpeed <= 0 {
		return 0
	}
	infillSpeed := perimeterSpeed * infillSpeedFactor
	supportSpeed := perimeterSpeed * supportSpeedFactor

	perimeterLenMm := 2 * (widthMm + depthMm)
	infillAreaMm2 := widthMm * depthMm

	perimeterTime := perimeterLenMm * layerCount / perimeterSpeed
	infillTime := infillAreaMm2 * layerCount * float64(s.InfillPercent) / 100.0 / infillSpeed

	var supportTime float64
	if support {
		supportTime = infillAreaMm2 * layerCount * supportHeightFactor / supportSpeed
	}

	brimTime := perimeterLenMm * brimPasses / perimeterSpeed
	layerChangeTime := layerCount * layerChangeSec

	totalSec := (perimeterTime + infillTime + supportTime + brimTime + layerChangeTime) * accelOverhead
	return totalSec / 3600.0
}

// printabilityScore rates shape risk on a 0-100 scale. It depends on
// geometry and the printer envelope alone; material and quality do
// not move it.
func printabilityScore(geo Geometry, p Profile) int {
	widthMm := geo.WidthCm * mmPerCm
	depthMm := geo.DepthCm * mmPerCm
	heightMm := geo.HeightCm * mmPerCm

	score := 100
	if widthMm > p.BuildVolume.WidthMm || depthMm > p.BuildVolume.DepthMm || heightMm > p.BuildVolume.HeightMm {
		score -= oversizePenalty
	}
	if math.Min(widthMm, math.Min(depthMm, heightMm)) < p.MinFeatureMm {
		score -= thinFeaturePenalty
	}
	if aspectRatio(widthMm, depthMm, heightMm) > tallAspectRatio {
		score -= tallAspectPenalty
	}
	if score < 0 {
		score = 0
	}
	return score
}

// supportRequired is a coarse shape heuristic: tall narrow parts, or
// parts whose footprint exceeds the calibrated 45 degree bridge span
// for the chosen layer height. There is no per-facet overhang
// analysis here.
func supportRequired(geo Geometry, s PrintSettings) bool {
	widthMm := geo.WidthCm * mmPerCm
	depthMm := geo.DepthCm * mmPerCm
	heightMm := geo.HeightCm * mmPerCm

	if aspectRatio(widthMm, depthMm, heightMm) > supportAspectRatio {
		return true
	}

	maxSpanMm := s.LayerHeightMm / math.Tan(maxOverhangAngleDeg*math.Pi/180) * 2 * overhangSpanFactor
	return widthMm > maxSpanMm
}

// aspectRatio returns height over the larger horizontal extent, or 0
// for a degenerate footprint.
func aspectRatio(widthMm, depthMm, heightMm float64) float64 {
	base := math.Max(widthMm, depthMm)
	if base <= 0 {
		return 0
	}
	return heightMm / base
}

func qualityFactor(q Quality) float64 {
	if f, ok := qualityFactors[q]; ok {
		return f
	}
	return 1.0
}
