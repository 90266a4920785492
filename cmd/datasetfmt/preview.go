package main

import (
	"fmt"

	"datasetFmt/internal/preview"
	"datasetFmt/internal/report"
	"datasetFmt/internal/template"

	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	var (
		templatePath string
		plain        bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse the planned table of contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := template.Load(firstNonEmpty(templatePath, cfg.Build.TemplateFile))
			if err != nil {
				return err
			}
			rows, err := report.PreviewContents(tmpl)
			if err != nil {
				return err
			}

			if plain {
				for _, r := range rows {
					fmt.Printf("A%-4d %-8s %s\n", r.Row+1, r.Kind, r.Label)
				}
				return nil
			}
			return preview.Run(tmpl.Cover.Title, rows, preview.UIConfig{RowsPerPage: cfg.UI.RowsPerPage})
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template file (default from config)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print the rows instead of opening the browser")
	return cmd
}
