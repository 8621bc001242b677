package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hummus/internal/config"
	"hummus/internal/export"
	"hummus/internal/symbols"
)

func (a *app) newListCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list [ENUM]",
		Short: "Print every enumeration, or only ENUM",
		Example: `  hummus list
  hummus list IconKinds --format json`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: symbols.EnumerationNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(format, a.cfg.Format, config.Formats())
			if err != nil {
				return err
			}
			enums := symbols.Enumerations()
			if len(args) == 1 {
				e, err := symbols.Lookup(args[0])
				if err != nil {
					return err
				}
				enums = []symbols.Enumeration{e}
			}
			a.logger.Debug("listing", zap.Int("enumerations", len(enums)), zap.String("format", string(f)))
			return export.WriteList(cmd.OutOrStdout(), f, enums)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "output format: table, json or yaml (default from config)")
	return cmd
}
