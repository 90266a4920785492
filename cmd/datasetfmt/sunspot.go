package main

import (
	"fmt"
	"strings"

	"datasetFmt/internal/logger"
	"datasetFmt/internal/sunspot"

	"github.com/spf13/cobra"
)

func newSunspotCmd() *cobra.Command {
	var (
		in      string
		out     string
		groupBy string
		name    string
	)

	cmd := &cobra.Command{
		Use:   "sunspot",
		Short: "Clean a SILSO daily sunspot file and optionally aggregate it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := sunspot.ReadFile(in)
			if err != nil {
				return err
			}
			df, err := sunspot.Clean(raw, sunspot.DefaultCleanOptions())
			if err != nil {
				return fmt.Errorf("failed to clean %s: %w", in, err)
			}
			logger.Info("Cleaned sunspot data", "input", in, "rows", df.Nrow())

			if groupBy != "" {
				keys := strings.Split(groupBy, ",")
				for i := range keys {
					keys[i] = strings.TrimSpace(keys[i])
				}
				if df, err = sunspot.AggregatedAverage(df, keys, name); err != nil {
					return err
				}
				logger.Info("Aggregated sunspot data", "group_by", keys, "rows", df.Nrow())
			}

			if err := sunspot.WriteFile(out, df); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote %d rows to: %s\n", df.Nrow(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "SILSO daily total file (semicolon separated)")
	cmd.Flags().StringVarP(&out, "out", "o", "data/output/sunspots.csv", "Output CSV path")
	cmd.Flags().StringVar(&groupBy, "group-by", "", "Comma separated group columns, e.g. year,month")
	cmd.Flags().StringVar(&name, "name", "mean_ssn", "Name of the averaged column")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
