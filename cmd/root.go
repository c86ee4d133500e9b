// Package cmd provides the stixkit command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"stixkit/config"
)

// CLI output formatters
var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
)

// Global flags
var (
	outputJSON bool
	noColor    bool
	quiet      bool
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "stixkit",
	Short: "Inspect STIX 2.1 bundles and validate indicator patterns",
	Long: `stixkit works with STIX 2.1 threat intelligence content:
decode bundles into typed objects, derive deterministic observable
identifiers, and validate indicator patterns.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		if noColor || !cfg.Output.Color {
			color.NoColor = true
		}
		if outputJSON {
			cfg.Output.JSON = true
		}
		if quiet {
			cfg.Output.Quiet = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output machine-readable JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")
}

// Execute runs the root command. Errors are printed to stderr and reflected
// in the exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the CLI logger from configuration. Quiet mode silences
// everything.
func newLogger() *zap.SugaredLogger {
	if cfg != nil && cfg.Output.Quiet {
		return zap.NewNop().Sugar()
	}

	level := zapcore.WarnLevel
	if cfg != nil {
		if parsed, err := zapcore.ParseLevel(cfg.Logging.Level); err == nil {
			level = parsed
		}
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.Encoding = "console"
	logger, err := zapCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
