// Package cli provides the Cobra command structure for goxmldom.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/yaklabco/goxmldom/internal/logging"
	"github.com/yaklabco/goxmldom/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root goxmldom command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "goxmldom",
		Short: "A fast well-formedness checker and tree tool for simple XML",
		Long: `goxmldom parses a pragmatic subset of XML into an entity tree.

It checks documents for well-formedness, prints their structure as a tree,
and reformats them with consistent indentation. The grammar covers tags,
attributes, text, comments, and the <?xml?> prolog; doctypes, CDATA, and
entity references are out of scope.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger := logging.NewInteractive()
			if color == "never" {
				logger.SetColorProfile(termenv.Ascii)
			}
			logging.SetDefault(logger)
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Unknown flags are usage errors, not internal ones.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newTreeCommand())
	rootCmd.AddCommand(newFormatCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// loadConfig resolves the effective configuration for a command, honoring
// the root --config flag and upward discovery from the working directory.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cmd.Context(), configPath, workDir)
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	return cfg, nil
}

func colorMode(cmd *cobra.Command) string {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return "auto"
	}
	return mode
}
