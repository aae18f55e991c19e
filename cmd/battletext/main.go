// Command battletext renders battle protocol logs as narrative text.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"battletext/internal/config"
	"battletext/internal/logging"
)

var (
	// Global flags
	verbose       bool
	configPath    string
	templatesPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "battletext",
	Short: "battletext - render battle logs as narrative text",
	Long: `battletext reads a line-oriented battle protocol log and narrates it
from one player's point of view.

Templates come from an embedded English store, optionally overlaid with a YAML
file of your own. Settings are read from .battletext/config.yaml when present.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		if err := logging.Initialize(cfg.Logging.Dir, cfg.Logging.ToSettings()); err != nil {
			logger.Warn("file logging disabled", zap.Error(err))
		} else if logging.IsDebugMode() {
			logger.Debug("file logging enabled", zap.String("dir", cfg.Logging.Dir), zap.String("level", cfg.Logging.Level))
		}
		logger.Debug("configuration loaded",
			zap.String("path", configPath),
			zap.String("perspective", cfg.Perspective),
			zap.String("format", cfg.Format))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Config file path")
	rootCmd.PersistentFlags().StringVar(&templatesPath, "templates", "", "YAML template overlay merged over the embedded store")

	addRenderFlags()

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(batteryCmd)
	rootCmd.AddCommand(configCmd)
}

// applyFlagOverrides copies explicitly set command flags over the loaded config.
// Flags beat env, env beats file.
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Lookup("perspective") != nil && flags.Changed("perspective") {
		c.Perspective = renderFlags.perspective
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		c.Format = renderFlags.format
	}
	if flags.Lookup("generation") != nil && flags.Changed("generation") {
		c.Generation = renderFlags.generation
	}
	if flags.Changed("templates") {
		c.Templates = templatesPath
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
