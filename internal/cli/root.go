package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/yildizm/InternSwipe/internal/config"
	"github.com/yildizm/InternSwipe/internal/emoji"
	"github.com/yildizm/InternSwipe/internal/logger"
	"github.com/yildizm/InternSwipe/internal/ui"
)

var (
	cfgFile      string
	verbose      bool
	noColor      bool
	noEmoji      bool
	globalConfig *config.Config
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "internswipe",
		Short: "Swipe through internship decks in your terminal",
		Long: `InternSwipe is a card-swiping browser for internship matching.

Students swipe through job postings, employers swipe through candidate
profiles. Drag a card (or press the arrow keys) past the threshold to like
or pass, and get a shortlist summary when you are done.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}

			cfg, err := config.NewLoader().LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			applyGlobalFlags(cmd, cfg)
			globalConfig = cfg

			emoji.SetEmojiDisabled(cfg.Output.NoEmoji)
			ui.SetThemeByName(cfg.Output.Theme)
			ui.SetDarkMode(cfg.Output.DarkMode)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")

	// Add subcommands
	rootCmd.AddCommand(newSwipeCommand())
	rootCmd.AddCommand(newReplayCommand())
	rootCmd.AddCommand(newDeckCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// applyGlobalFlags lets explicitly set persistent flags win over the config
func applyGlobalFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flag("verbose").Changed {
		cfg.Output.Verbose = verbose
	}
	if cmd.Flag("no-emoji").Changed || noEmoji {
		cfg.Output.NoEmoji = noEmoji
	}
	if cmd.Flag("no-color").Changed && noColor {
		cfg.Output.ColorMode = "never"
	}
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			fmt.Fprintf(cmd.OutOrStdout(), "InternSwipe %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", runtime.Version())
			fmt.Fprintf(cmd.OutOrStdout(), "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// GetGlobalConfig returns the configuration loaded for the running command
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

// Global helpers
func isVerbose() bool {
	return GetGlobalConfig().Output.Verbose
}

func useColor() bool {
	switch GetGlobalConfig().Output.ColorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return !noColor && os.Getenv("NO_COLOR") == ""
	}
}

func newLogger(component string) *logger.Logger {
	return logger.NewWithCallback(component, isVerbose)
}
