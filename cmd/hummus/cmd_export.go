package main

import (
	"github.com/spf13/cobra"

	"hummus/internal/config"
	"hummus/internal/export"
	"hummus/internal/symbols"
)

func (a *app) newExportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole table as one JSON or YAML document keyed by enumeration name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fallback := a.cfg.Format
			if fallback == config.FormatTable {
				fallback = config.FormatJSON
			}
			f, err := resolveFormat(format, fallback, []config.Format{config.FormatJSON, config.FormatYAML})
			if err != nil {
				return err
			}
			return export.WriteDocument(cmd.OutOrStdout(), f, symbols.Enumerations())
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "json or yaml (default from config, json when config says table)")
	return cmd
}
