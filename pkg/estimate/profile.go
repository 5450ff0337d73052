package estimate

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// BuildVolume is the printable envelope of the printer fleet, in
// millimeters.
type BuildVolume struct {
	WidthMm  float64 `toml:"width_mm"`
	DepthMm  float64 `toml:"depth_mm"`
	HeightMm float64 `toml:"height_mm"`
}

// Profile is the process-wide printer configuration the estimator
// runs against: build envelope, base speed and material tables. Build
// it once at startup (DefaultProfile or LoadProfile) and treat it as
// immutable afterwards.
type Profile struct {
	BuildVolume    BuildVolume        `toml:"build_volume"`
	BaseSpeedMmSec float64            `toml:"base_speed_mm_per_sec"`
	MinFeatureMm   float64            `toml:"min_feature_mm"`
	Densities      map[string]float64 `toml:"densities_g_per_cm3"`
	SpeedFactors   map[string]float64 `toml:"material_speed_factors"`
}

// DefaultProfile returns the stock fleet profile: a 256 mm cube
// envelope and the standard filament tables.
func DefaultProfile() Profile {
	return Profile{
		BuildVolume:    BuildVolume{WidthMm: 256, DepthMm: 256, HeightMm: 256},
		BaseSpeedMmSec: 60,
		MinFeatureMm:   5,
		Densities: map[string]float64{
			string(MaterialPLA):  1.24,
			string(MaterialPETG): 1.27,
			string(MaterialABS):  1.04,
			string(MaterialTPU):  1.20,
			string(MaterialASA):  1.05,
		},
		SpeedFactors: map[string]float64{
			string(MaterialPLA):  1.0,
			string(MaterialPETG): 0.8,
			string(MaterialABS):  0.6,
			string(MaterialTPU):  0.3,
		},
	}
}

// LoadProfile reads a TOML printer profile. Keys absent from the file
// keep their DefaultProfile values.
func LoadProfile(path string) (Profile, error) {
	profile := DefaultProfile()
	if _, err := toml.DecodeFile(path, &profile); err != nil {
		return Profile{}, fmt.Errorf("failed to load printer profile: %w", err)
	}
	return profile, nil
}

// density returns the filament density in g/cm³. Materials missing
// from the table price as PLA.
func (p Profile) density(m Material) float64 {
	if d, ok := p.Densities[string(m)]; ok {
		return d
	}
	return 1.24
}

// speedFactor returns the per-material speed multiplier, defaulting
// to 1.0 for materials without an entry.
func (p Profile) speedFactor(m Material) float64 {
	if f, ok := p.SpeedFactors[string(m)]; ok {
		return f
	}
	return 1.0
}
