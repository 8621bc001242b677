package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hummus/internal/config"
	"hummus/internal/logging"
)

// app carries state shared by every subcommand once PersistentPreRunE has run.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "hummus",
		Short: "Inspect the chat and alerts UI symbol table",
		Long: `hummus prints and checks the fixed vocabulary used by the chat and alerts UI:
page names, icon kinds, modal identifiers and new chat modal steps.

Every member's value is its own name, e.g. PageNames.CHATS is "CHATS".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file (default $"+config.EnvPath+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level: debug, info, warn or error")

	root.AddCommand(
		a.newListCmd(),
		a.newCheckCmd(),
		a.newExportCmd(),
		a.newBrowseCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	path := config.ResolvePath(a.configPath)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("config resolved",
		zap.String("path", path),
		zap.String("log_level", cfg.LogLevel),
		zap.String("format", string(cfg.Format)),
		zap.String("default_enum", cfg.DefaultEnum),
	)
	return nil
}

// resolveFormat returns flag if set, else fallback, rejecting anything outside allowed.
func resolveFormat(flag string, fallback config.Format, allowed []config.Format) (config.Format, error) {
	f := fallback
	if flag != "" {
		f = config.Format(flag)
	}
	if !slices.Contains(allowed, f) {
		return "", fmt.Errorf("--format: must be one of %v, got %q", allowed, f)
	}
	return f, nil
}
