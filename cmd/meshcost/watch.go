package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/printwise/meshcost/pkg/analysis"
	"github.com/printwise/meshcost/pkg/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a drop directory and analyze incoming STL files",
	Long: `Watch monitors a directory for new or updated .stl files and runs the
full analysis on each one as it lands, mirroring the upload pipeline of
the print service.`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addSettingsFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	dir := args[0]

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

	analyzer := analysis.NewAnalyzer(profile)

	dw, err := watcher.NewDirWatcher(500*time.Millisecond, []string{".stl"}, func(path string) {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			return
		}
		result, err := analyzer.Analyze(data, settings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error analyzing %s: %v\n", path, err)
			return
		}
		printAnalysis(path, settings, result)
		fmt.Println()
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer dw.Close()

	if err := dw.Watch(dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dw.Start()
	fmt.Printf("Watching %s for STL files...\n", dir)
	select {}
}
