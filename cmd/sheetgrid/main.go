// Package main provides the CLI entry point for sheetgrid-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/osada9/sheetgrid-go/pkg/sheetgrid"
	"github.com/osada9/sheetgrid-go/pkg/sheetgrid/models"
	"github.com/osada9/sheetgrid-go/pkg/sheetgrid/output"
)

var (
	outputPath     string
	outputDir      string
	format         string
	pretty         bool
	concatRichText bool
)

var log = logrus.New()

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetgrid [input.xlsx...]",
		Short: "Extract the first worksheet of xlsx files as a plain grid",
		Long: `sheetgrid reads the first worksheet of each given xlsx file and outputs
its cells as a dense rectangular grid, as JSON or CSV.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path for a single input (default: stdout)")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for per-file output (required for multiple inputs)")
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format: json, csv")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&concatRichText, "concat-rich-text", false, "Concatenate rich-text runs in shared strings")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if format != "json" && format != "csv" {
		return fmt.Errorf("invalid format: %s (must be json or csv)", format)
	}
	if len(args) > 1 && outputDir == "" {
		return fmt.Errorf("--output-dir is required with multiple inputs")
	}
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}

	opts := sheetgrid.Options{ConcatRichText: concatRichText}

	// One bad file never halts the batch: log the cause, move on.
	succeeded := 0
	for _, inputPath := range args {
		grid, err := sheetgrid.Extract(inputPath, opts)
		if err != nil {
			log.WithError(err).WithField("file", inputPath).Error("skipping file")
			continue
		}
		if err := writeGrid(grid, inputPath); err != nil {
			return err
		}
		succeeded++
	}

	if succeeded == 0 {
		return fmt.Errorf("no input file yielded data")
	}
	return nil
}

func writeGrid(grid *models.GridData, inputPath string) error {
	data, err := renderGrid(grid)
	if err != nil {
		return fmt.Errorf("serialization failed for %s: %w", inputPath, err)
	}

	switch {
	case outputDir != "":
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		dest := filepath.Join(outputDir, base+"."+format)
		if err := os.WriteFile(dest, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	case outputPath != "":
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	default:
		fmt.Println(string(data))
	}
	return nil
}

func renderGrid(grid *models.GridData) ([]byte, error) {
	if format == "csv" {
		var sb strings.Builder
		if err := output.WriteCSV(&sb, grid); err != nil {
			return nil, err
		}
		return []byte(sb.String()), nil
	}
	return output.ToJSON(grid, pretty)
}
