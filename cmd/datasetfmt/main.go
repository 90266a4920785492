package main

import (
	"errors"
	"fmt"
	"os"

	"datasetFmt/internal/config"
	"datasetFmt/internal/logger"
	"datasetFmt/internal/report"

	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "datasetfmt",
		Short: "Build accessible spreadsheet datasets",
		Long: `datasetfmt assembles a dataset workbook from a layout template and
data tables: cover sheet, table of contents, guidance, index and notes sheets,
then one formatted worksheet per table.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger.Configure(cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs/config.toml", "Path to the TOML configuration file")

	rootCmd.AddCommand(newBuildCmd(), newPreviewCmd(), newSunspotCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command failed", "error", err)

		var outErr *report.OutputError
		if errors.As(err, &outErr) {
			fmt.Println(outErr.Error())
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		os.Exit(1)
	}
}
