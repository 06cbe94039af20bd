package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uiscout/uiscout/internal/config"
	"github.com/uiscout/uiscout/internal/logging"
	"github.com/uiscout/uiscout/internal/output"
	"github.com/uiscout/uiscout/internal/version"
)

var (
	cfg    config.Config
	logger = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "uiscout",
	Short: "Capture and interact with desktop UI elements across processes",
	Long: `uiscout resolves a running application by name, flattens its accessibility
tree into a map of short element ids (B1, T2, ...), persists the map as a
session, and lets later invocations act on those ids.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command, printing errors to stderr and exiting with
// the code mapped to the failure kind.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		level := cfg.LogLevel
		switch verbosity, _ := rootCmd.PersistentFlags().GetCount("verbose"); {
		case verbosity == 1:
			level = "info"
		case verbosity >= 2:
			level = "debug"
		}
		logger, err = logging.New(level)
		if err != nil {
			return err
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty

		logger.Debug("configured",
			zap.String("sessionDir", cfg.SessionDir),
			zap.String("format", format),
		)
		return nil
	}
}
