// =============================================================================
// EventAlytics - Report Command
// =============================================================================
//
// This file defines the 'report' command, the main command of the tool. It
// discovers order exports, runs the analysis pipeline on each, and prints a
// processing summary.
//
// COMMAND USAGE:
//   eventalytics report [flags]
//
// FLAGS:
//   --file        : Analyze a single export instead of scanning the input directory
//   --sample      : Analyze the bundled demo data
//   --format      : Report formats to generate (text, json, xlsx; repeatable)
//   --top-cities  : Number of cities in the city breakdown
//   --dry-run     : Run the pipeline without writing reports or archiving
//
// PROCESSING PIPELINE (per export):
//   1. Parse the export into records
//   2. Map records to orders (best-effort field extraction)
//   3. Aggregate dashboard metrics and breakdowns
//   4. Write the configured report formats
//   5. Archive the processed export
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/eventalytics/eventalytics/internal/analyzer"
	"github.com/eventalytics/eventalytics/internal/logger"
	"github.com/eventalytics/eventalytics/internal/orders"
	"github.com/eventalytics/eventalytics/internal/sampledata"
	"github.com/eventalytics/eventalytics/pkg/utils"
)

// Command flags.
var (
	reportFile   string
	reportSample bool
	reportFormat []string
	topCities    int
	dryRun       bool
)

// reportCmd represents the 'report' command.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Analyze order exports and generate dashboard reports",
	Long: `The report command scans the input directory for order exports (.csv and
.xlsx), runs each through the analysis pipeline, and generates the configured
report formats.

Exports are processed independently; a malformed file yields an empty "no
data" report and never stops the processing of other files. Successfully
processed exports are moved to the archive directory.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport()
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(
		&reportFile,
		"file",
		"",
		"Analyze a single export file instead of scanning the input directory",
	)

	reportCmd.Flags().BoolVar(
		&reportSample,
		"sample",
		false,
		"Analyze the bundled demo data",
	)

	reportCmd.Flags().StringSliceVar(
		&reportFormat,
		"format",
		nil,
		"Report formats to generate: text, json, xlsx, all (default from config)",
	)

	reportCmd.Flags().IntVar(
		&topCities,
		"top-cities",
		0,
		"Number of cities in the city breakdown (default from config)",
	)

	reportCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run the pipeline without writing reports or archiving inputs",
	)
}

// runReport orchestrates the report pipeline.
func runReport() error {
	startTime := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if topCities > 0 {
		cfg.TopCities = topCities
	}
	formats := expandFormats(reportFormat)

	log := logger.New(verbose)

	// The sample short-circuits discovery: one in-memory document.
	if reportSample {
		a := analyzer.NewFromText(sampledata.SourceName, sampledata.CSV(), cfg, log)
		a.SetDryRun(dryRun)
		a.SetFormats(formats)
		result := a.Run()
		if !result.Success {
			return result.Error
		}
		return nil
	}

	// Discover the exports to analyze.
	fm := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.ArchiveDir)
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	var inputFiles []string
	if reportFile != "" {
		if !utils.FileExists(reportFile) {
			return fmt.Errorf("export not found: %s", reportFile)
		}
		inputFiles = []string{reportFile}
	} else {
		inputFiles, err = fm.DiscoverInputFiles()
		if err != nil {
			return err
		}
	}

	if len(inputFiles) == 0 {
		fmt.Println("No exports found in the input directory.")
		fmt.Println("Tip: run 'eventalytics report --sample' to try the bundled demo data.")
		return nil
	}

	log.Info("Found %d export(s) to analyze", len(inputFiles))

	// Analyze every export concurrently. Each analyzer publishes into the
	// shared current-document store; tickets are taken in discovery order
	// so the newest export wins regardless of completion order.
	store := orders.NewStore()
	var wg sync.WaitGroup
	results := make(chan analyzer.Result, len(inputFiles))

	for _, file := range inputFiles {
		a := analyzer.New(file, cfg, log)
		a.SetDryRun(dryRun)
		a.SetFormats(formats)
		a.PublishTo(store, store.Ticket())

		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- a.Run()
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect results and print the summary.
	var successCount, errorCount int
	for result := range results {
		if result.Success {
			successCount++
			for _, out := range result.OutputFiles {
				fmt.Printf("  ✓ %s -> %s\n", result.Source, filepath.Base(out))
			}
			if len(result.OutputFiles) == 0 {
				fmt.Printf("  ✓ %s (%d pedidos)\n", result.Source, result.Stats.OrdersMapped)
			}
		} else {
			errorCount++
			fmt.Printf("  ✗ %s: %v\n", result.Source, result.Error)
		}
	}

	fmt.Println("\n=== Analysis Complete ===")
	fmt.Printf("Exports analyzed: %d\n", len(inputFiles))
	fmt.Printf("Successful:       %d\n", successCount)
	fmt.Printf("Errors:           %d\n", errorCount)
	fmt.Printf("Current orders:   %d\n", len(store.Current()))
	fmt.Printf("Time elapsed:     %s\n", time.Since(startTime))

	if errorCount > 0 {
		return fmt.Errorf("%d export(s) failed", errorCount)
	}
	return nil
}

// expandFormats resolves the "all" shorthand to every supported format.
func expandFormats(formats []string) []string {
	for _, f := range formats {
		if f == "all" {
			return []string{"text", "json", "xlsx"}
		}
	}
	return formats
}
