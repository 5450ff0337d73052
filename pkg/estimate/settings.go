package estimate

import "fmt"

// Material identifies the filament type a job prints with.
type Material string

const (
	MaterialPLA  Material = "PLA"
	MaterialPETG Material = "PETG"
	MaterialABS  Material = "ABS"
	MaterialTPU  Material = "TPU"
	MaterialASA  Material = "ASA"
)

// Quality selects the speed/resolution trade-off of a print.
type Quality string

const (
	QualityDraft  Quality = "draft"
	QualityNormal Quality = "normal"
	QualityHigh   Quality = "high"
)

// PrintSettings carries the per-job knobs chosen by the customer. The
// estimator trusts these values; callers validate at the edge with
// Validate.
type PrintSettings struct {
	LayerHeightMm   float64
	InfillPercent   int
	WallThicknessMm float64
	SupportDensity  int
	Material        Material
	Quality         Quality
}

// Validate checks the settings against the ranges the printer fleet
// supports.
func (s PrintSettings) Validate() error {
	if s.LayerHeightMm < 0.05 || s.LayerHeightMm > 0.3 {
		return fmt.Errorf("layer height %.3g mm outside supported range 0.05-0.3", s.LayerHeightMm)
	}
	if s.InfillPercent < 0 || s.InfillPercent > 100 {
		return fmt.Errorf("infill percentage %d outside range 0-100", s.InfillPercent)
	}
	if s.WallThicknessMm <= 0 {
		return fmt.Errorf("wall thickness %.3g mm must be positive", s.WallThicknessMm)
	}
	if s.SupportDensity < 0 || s.SupportDensity > 100 {
		return fmt.Errorf("support density %d outside range 0-100", s.SupportDensity)
	}
	switch s.Material {
	case MaterialPLA, MaterialPETG, MaterialABS, MaterialTPU, MaterialASA:
	default:
		return fmt.Errorf("unknown material %q", s.Material)
	}
	switch s.Quality {
	case QualityDraft, QualityNormal, QualityHigh:
	default:
		return fmt.Errorf("unknown print quality %q", s.Quality)
	}
	return nil
}
