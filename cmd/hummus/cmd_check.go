package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hummus/internal/symbols"
)

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check ENUM VALUE",
		Short: "Exit 0 if VALUE is a declared member of ENUM",
		Long: `check reports whether VALUE is one of ENUM's declared members.
Matching is exact and case-sensitive. An undeclared value is an error and exits 1.`,
		Example: `  hummus check PageNames CHATS_OPEN
  hummus check NewChatModalSteps GROUP`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enum, value := args[0], args[1]
			if err := symbols.Check(enum, value); err != nil {
				a.logger.Debug("check failed", zap.String("enum", enum), zap.String("value", value), zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is a member of %s\n", value, enum)
			return nil
		},
	}
}
