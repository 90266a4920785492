package main

import (
	"fmt"
	"os"
	"path/filepath"

	"datasetFmt/internal/dataset"
	"datasetFmt/internal/logger"
	"datasetFmt/internal/report"
	"datasetFmt/internal/template"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type buildFlags struct {
	template    string
	data        []string
	dataDir     string
	out         string
	metricsFile string
	indexColumn string
}

func newBuildCmd() *cobra.Command {
	var f buildFlags

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble the dataset workbook",
		Long: `Reads the template (.xlsx or .yaml) and the data tables (CSV), then writes
the dataset workbook. Tables are matched to template metadata in order: files
given with --data first, otherwise every CSV in the data directory sorted by name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(f)
		},
	}

	cmd.Flags().StringVarP(&f.template, "template", "t", "", "Template file (default from config)")
	cmd.Flags().StringArrayVarP(&f.data, "data", "d", nil, "Data table CSV file, repeatable and ordered")
	cmd.Flags().StringVar(&f.dataDir, "data-dir", "", "Directory of data table CSV files (default from config)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Output workbook path (default from config)")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "Write run counters in Prometheus text format to this file")
	cmd.Flags().StringVar(&f.indexColumn, "index-column", "", "Name of the row index column (default: first column)")
	return cmd
}

func runBuild(f buildFlags) error {
	templatePath := firstNonEmpty(f.template, cfg.Build.TemplateFile)
	dataDir := firstNonEmpty(f.dataDir, cfg.Build.DataDirectory)
	out := firstNonEmpty(f.out, cfg.Build.OutputFile)
	metricsFile := firstNonEmpty(f.metricsFile, cfg.Build.MetricsFile)

	logger.Info("Starting build", "template", templatePath, "output", out)

	tmpl, err := template.Load(templatePath)
	if err != nil {
		return err
	}

	paths := f.data
	if len(paths) == 0 {
		if paths, err = dataset.DiscoverCSVFiles(dataDir); err != nil {
			return err
		}
	}
	tables, err := dataset.LoadCSVFiles(paths, f.indexColumn)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d data tables for %d template entries\n", len(tables), len(tmpl.Metadata()))

	if dir := filepath.Dir(out); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	registry := prometheus.NewRegistry()
	opts := report.Options{
		Font:         cfg.Style.Font,
		DataAlign:    cfg.Style.DataAlign,
		DataFontSize: cfg.Style.DataFontSize,
		Metrics:      report.NewMetrics(registry),
	}

	if err := report.Produce(out, tmpl, tables, opts); err != nil {
		return err
	}

	if metricsFile != "" {
		if err := prometheus.WriteToTextfile(metricsFile, registry); err != nil {
			logger.Warn("Failed to write metrics file", "path", metricsFile, "error", err)
		}
	}

	fmt.Printf("✓ Dataset written to: %s\n", out)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
