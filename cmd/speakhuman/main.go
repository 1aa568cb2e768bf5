// Command speakhuman formats numbers, durations, and byte sizes as
// human-readable text.
//
// Usage:
//
//	speakhuman <command> [flags] <value>
//
// Commands:
//
//	delta    Describe a duration coarsely ("2 hours")
//	time     Describe a duration with tense ("2 hours ago")
//	precise  Describe a duration precisely ("2 days, 1 hour and 33.12 seconds")
//	size     Describe a byte count ("3.1 MB")
//	ordinal  Format an integer as an ordinal ("3rd")
//	comma    Group an integer's digits ("1,141")
//	intword  Describe a large number ("1.2 billion")
//	repl     Interactive session
//
// Examples:
//
//	# Coarse duration from seconds
//	speakhuman delta 176433
//
//	# Precise duration, suppressing days
//	speakhuman precise --suppress days 176433.123
//
//	# Byte size with binary suffixes
//	speakhuman size --binary 31744
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackburrus/speakhuman/pkg/i18n"
)

var (
	// Persistent flags.
	configPath string
	locale     string
	verbose    bool

	cfg config
)

var rootCmd = &cobra.Command{
	Use:           "speakhuman <command> [flags] <value>",
	Short:         "Format numbers, durations, and sizes as human-readable text",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}

		var err error
		cfg, err = loadConfig(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("locale") || locale != "" {
			cfg.Locale = locale
		}
		slog.Debug("configuration loaded",
			"locale", cfg.Locale,
			"format", cfg.Format,
			"minimum_unit", cfg.MinimumUnit)
		return nil
	},
}

// provider resolves the configured locale, falling back to English.
func provider() i18n.Provider {
	if cfg.Locale == "" {
		return i18n.English
	}
	if p, ok := i18n.Lookup(cfg.Locale); ok {
		return p
	}
	slog.Debug("no catalog registered for locale, using English", "locale", cfg.Locale)
	return i18n.English
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.speakhuman.yaml)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "locale tag for translated output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newDeltaCmd(),
		newTimeCmd(),
		newPreciseCmd(),
		newSizeCmd(),
		newOrdinalCmd(),
		newCommaCmd(),
		newIntwordCmd(),
		newReplCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
