package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/printwise/meshcost/pkg/analysis"
	"github.com/printwise/meshcost/pkg/estimate"
)

var (
	flagLayerHeight    float64
	flagInfill         int
	flagWallThickness  float64
	flagSupportDensity int
	flagMaterial       string
	flagQuality        string
	flagProfile        string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Estimate material, time and printability for an STL file",
	Long: `Analyze decodes a binary STL file and reports the full print estimate:
measured geometry plus material usage, print time, support need and a
printability score for the chosen settings.`,
	Args: cobra.ExactArgs(1),
	Run:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addSettingsFlags(analyzeCmd)
}

func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&flagLayerHeight, "layer-height", 0.2, "layer height in mm (0.05-0.3)")
	cmd.Flags().IntVar(&flagInfill, "infill", 20, "infill percentage (0-100)")
	cmd.Flags().Float64Var(&flagWallThickness, "wall-thickness", 0.8, "wall thickness in mm")
	cmd.Flags().IntVar(&flagSupportDensity, "support-density", 20, "support density percentage (0-100)")
	cmd.Flags().StringVar(&flagMaterial, "material", "PLA", "material type (PLA, PETG, ABS, TPU, ASA)")
	cmd.Flags().StringVar(&flagQuality, "quality", "normal", "print quality (draft, normal, high)")
	cmd.Flags().StringVar(&flagProfile, "profile", "", "printer profile TOML file")
}

func settingsFromFlags() (estimate.PrintSettings, error) {
	settings := estimate.PrintSettings{
		LayerHeightMm:   flagLayerHeight,
		InfillPercent:   flagInfill,
		WallThicknessMm: flagWallThickness,
		SupportDensity:  flagSupportDensity,
		Material:        estimate.Material(flagMaterial),
		Quality:         estimate.Quality(flagQuality),
	}
	if err := settings.Validate(); err != nil {
		return estimate.PrintSettings{}, err
	}
	return settings, nil
}

func profileFromFlags() (estimate.Profile, error) {
	if flagProfile == "" {
		return estimate.DefaultProfile(), nil
	}
	return estimate.LoadProfile(flagProfile)
}

func runAnalyze(cmd *cobra.Command, args []string) {
	filename := args[0]

	settings, err := settingsFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	profile, err := profileFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	result, err := analysis.NewAnalyzer(profile).Analyze(data, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing %s: %v\n", filename, err)
		os.Exit(1)
	}

	printAnalysis(filename, settings, result)
}

func printAnalysis(filename string, settings estimate.PrintSettings, result *analysis.STLAnalysis) {
	fmt.Println("Print Cost Analysis")
	fmt.Println("===================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Geometry:")
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Volume: %.2f cm3\n", result.VolumeCm3)
	fmt.Printf("  Surface Area: %.2f cm2\n", result.SurfaceAreaCm2)
	fmt.Printf("  Dimensions: %.2f x %.2f x %.2f cm\n\n",
		result.DimensionsCm.Width, result.DimensionsCm.Depth, result.DimensionsCm.Height)

	fmt.Println("Estimate:")
	fmt.Printf("  Material (%s): %.1f g\n", settings.Material, result.MaterialUsageGrams)
	fmt.Printf("  Print Time: %.2f h\n", result.EstimatedPrintTimeHours)
	fmt.Printf("  Support Required: %v\n", result.SupportRequired)
	fmt.Printf("  Printability: %d/100\n", result.PrintabilityScore)
}
