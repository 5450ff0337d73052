package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/printwise/meshcost/version"
)

var rootCmd = &cobra.Command{
	Use:   "meshcost",
	Short: "Print-cost analysis for 3D model files",
	Long: `meshcost runs the quoting pipeline of the print service against local
files: it decodes binary STL, measures volume, surface area and bounding
geometry, then derives material usage, print time and printability.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
