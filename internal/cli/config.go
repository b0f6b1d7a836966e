package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yildizm/InternSwipe/internal/config"
	"github.com/yildizm/InternSwipe/internal/emoji"
)

// newConfigCommand creates the config command with subcommands
func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage InternSwipe configuration",
		Long: `Manage InternSwipe configuration files and settings.

The config command provides subcommands for initializing, viewing,
validating, and locating configuration files.`,
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigPathCommand())

	return configCmd
}

// newConfigInitCommand creates the config init subcommand
func newConfigInitCommand() *cobra.Command {
	var (
		outputPath string
		minimal    bool
		force      bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		Long: `Initialize a new InternSwipe configuration file with default values.

By default, creates a full configuration file with all options and comments.
Use --minimal for a compact configuration with only essential settings.`,
		Example: `  # Create full config in current directory
  internswipe config init

  # Create minimal config
  internswipe config init --minimal

  # Create config at specific path
  internswipe config init --output ~/.config/internswipe/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd.OutOrStdout(), outputPath, minimal, force)
		},
	}

	initCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output path for config file (default: .internswipe.yaml)")
	initCmd.Flags().BoolVarP(&minimal, "minimal", "m", false, "create minimal configuration")
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing config file")

	return initCmd
}

func runConfigInit(w io.Writer, outputPath string, minimal, force bool) error {
	if outputPath == "" {
		outputPath = ".internswipe.yaml"
	}

	if !force && fileExists(outputPath) {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", outputPath)
	}

	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	content := config.SampleConfig()
	if minimal {
		content = config.MinimalSampleConfig()
	}

	if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(w, "%s Configuration file created at: %s\n", emoji.GetEmoji("success"), outputPath)
	if minimal {
		fmt.Fprintln(w, "Created minimal configuration with essential settings")
	} else {
		fmt.Fprintln(w, "Created full configuration with all options and documentation")
	}
	return nil
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	var format string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long: `Display the current effective configuration after loading from all sources.

Shows the merged configuration from defaults, config files, and
environment variable overrides.`,
		Example: `  # Show config in YAML format
  internswipe config show

  # Show config in JSON format
  internswipe config show --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd.OutOrStdout(), GetGlobalConfig(), format)
		},
	}

	showCmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, json)")

	return showCmd
}

func runConfigShow(w io.Writer, cfg *config.Config, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		fmt.Fprint(w, string(data))
	default:
		return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
	}
	return nil
}

// newConfigValidateCommand creates the config validate subcommand
func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validate the InternSwipe configuration for syntax and semantic errors.

Checks the configuration for:
- Valid YAML syntax
- Valid deck mode, threshold, and transition
- Valid role, output format, color mode, and theme`,
		Example: `  # Validate current config
  internswipe config validate

  # Validate specific config file
  internswipe config validate --config /path/to/config.yaml`,
		// the root hook already loaded and validated the config
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetGlobalConfig()
			w := cmd.OutOrStdout()

			fmt.Fprintf(w, "%s Configuration is valid\n", emoji.GetEmoji("success"))
			fmt.Fprintf(w, "%s Configuration summary:\n", emoji.GetEmoji("statistics"))
			fmt.Fprintf(w, "   Version: %s\n", cfg.Version)
			fmt.Fprintf(w, "   Role: %s\n", cfg.Catalog.Role)
			fmt.Fprintf(w, "   Deck Mode: %s (threshold %.0f, transition %s)\n", cfg.Deck.Mode, cfg.Deck.Threshold, cfg.Deck.Transition)
			fmt.Fprintf(w, "   Summary Format: %s\n", cfg.Output.SummaryFormat)
			fmt.Fprintf(w, "   Deck Paths: %d configured\n", len(cfg.Catalog.Paths))
			return nil
		},
	}
}

// newConfigPathCommand creates the config path subcommand
func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file search paths",
		Long: `Display the list of paths InternSwipe searches for configuration files.

Shows the search order and indicates which files exist.`,
		Run: func(cmd *cobra.Command, args []string) {
			runConfigPath(cmd.OutOrStdout())
		},
	}
}

func runConfigPath(w io.Writer) {
	fmt.Fprintln(w, "Configuration file search paths (in priority order):")
	fmt.Fprintln(w)

	priority := []string{"Highest", "Medium", "Lowest"}
	for i, path := range config.GetConfigPaths() {
		exists := " (not found)"
		if fileExists(path) {
			exists = " " + emoji.GetEmoji("success") + " (exists)"
		}

		fmt.Fprintf(w, "  %d. %s%s\n", i+1, path, exists)
		if i < len(priority) {
			fmt.Fprintf(w, "     Priority: %s\n", priority[i])
		}
		fmt.Fprintln(w)
	}

	if currentConfig, found := config.FindConfigFile(); found {
		fmt.Fprintf(w, "%s Current config file: %s\n", emoji.GetEmoji("target"), currentConfig)
	} else {
		fmt.Fprintln(w, "No config file found, using defaults")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables with INTERNSWIPE_ prefix override file settings")
}
