// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Bryyzxm/auto-short/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagLanguages []string
	flagCookies   string
	flagSave      bool
	flagOutput    string
	flagJSON      bool
	flagDebug     bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "auto-short [video-url...]",
	Short: "Extract spoken-word transcripts from video pages",
	Long: `auto-short fetches a video watch page, locates the embedded player
configuration, picks a caption track by language preference, and prints the
normalized transcript text.`,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: loadConfig,
	RunE:              fetchRun,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringArrayVarP(&flagLanguages, "language", "l", nil, "Preferred caption language, repeatable (default: en, en-US, en-GB)")
	rootCmd.PersistentFlags().StringVar(&flagCookies, "cookies", "", "Path to a Netscape cookie file for authenticated fetches")
	rootCmd.PersistentFlags().BoolVarP(&flagSave, "save", "s", false, "Save transcripts to the configured output directory instead of stdout")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Write transcripts to this directory instead of stdout (overrides output_dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output the full transcript record as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if len(flagLanguages) > 0 {
		cfg.Languages = flagLanguages
	}
	if flagCookies != "" {
		cfg.Cookies = flagCookies
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.SetOutput(os.Stderr)
	if cfg.Debug {
		log.SetPrefix("[auto-short] ")
	} else {
		log.SetFlags(0)
	}

	return nil
}

// debugf logs a message if debug mode is enabled.
func debugf(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		log.Printf(format, args...)
	}
}
