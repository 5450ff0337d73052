package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/printwise/meshcost/pkg/analysis"
	"github.com/printwise/meshcost/pkg/geometry"
	"github.com/printwise/meshcost/pkg/stl"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display measured geometry of an STL file",
	Long:  "Show triangle count, surface area, volume, bounding box and dimensions without running the print estimator.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	src, err := stl.ReadTriangles(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	geo := analysis.Summarize(src)
	if geo.TriangleCount == 0 {
		fmt.Fprintf(os.Stderr, "Error: %s contains no parsable triangles\n", filename)
		os.Exit(1)
	}

	fmt.Println("STL File Information")
	fmt.Println("====================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d (declared %d)\n", geo.TriangleCount, src.DeclaredCount())
	if src.Capped() {
		fmt.Println("  Note: decode capped; totals are extrapolated")
	}
	fmt.Printf("  Surface Area: %.4f cm2\n", geo.SurfaceAreaCm2)
	fmt.Printf("  Volume: %.4f cm3\n\n", geo.VolumeCm3)

	bbox := geo.BoundingBoxMm
	fmt.Println("Bounding Box (mm):")
	fmt.Printf("  Min: %s\n", formatVector(bbox.Min))
	fmt.Printf("  Max: %s\n", formatVector(bbox.Max))
	fmt.Printf("  Center: %s\n\n", formatVector(bbox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.4f cm\n", geo.DimensionsCm.Width)
	fmt.Printf("  Depth (Y): %.4f cm\n", geo.DimensionsCm.Depth)
	fmt.Printf("  Height (Z): %.4f cm\n", geo.DimensionsCm.Height)
	fmt.Printf("  Diagonal: %.4f mm\n", bbox.Diagonal())
}

func formatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}
