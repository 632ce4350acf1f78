package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"blueprint/internal/config"
	"blueprint/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// cfg is loaded in the persistent pre-run and read by every subcommand.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "blueprint",
	Short: "Evidence-driven test-case synthesis from user stories",
	Long: "Blueprint turns acceptance-criteria bullets and QA prep notes into\n" +
		"structured test-case drafts, then checks them against the team's\n" +
		"traceability and wording policies.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", config.DefaultPath, "Config file path")
	pf.StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "", "Log format: text or json (default from config)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(rootFlags.configPath)
	if err != nil {
		return err
	}
	if rootFlags.logLevel != "" {
		cfg.Log.Level = rootFlags.logLevel
	}
	if rootFlags.logFormat != "" {
		cfg.Log.Format = rootFlags.logFormat
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logging.Init(level, cfg.Log.Format)
	return nil
}
