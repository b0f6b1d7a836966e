package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/yildizm/InternSwipe/internal/catalog"
	"github.com/yildizm/InternSwipe/internal/config"
	"github.com/yildizm/InternSwipe/internal/deck"
	"github.com/yildizm/InternSwipe/internal/formatter"
	"github.com/yildizm/InternSwipe/internal/shortlist"
)

// sessionFlags are the deck and summary flags shared by swipe and replay
type sessionFlags struct {
	role          string
	mode          string
	threshold     float64
	transition    time.Duration
	summaryFormat string
	outputFile    string
}

func (f *sessionFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.role, "role", "r", "", "who is browsing (student, employer)")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "end-of-deck behavior (terminating, looping)")
	cmd.Flags().Float64Var(&f.threshold, "threshold", deck.DefaultThreshold, "drag distance that commits a decision")
	cmd.Flags().DurationVar(&f.transition, "transition", deck.DefaultTransition, "input guard after each decision")
	cmd.Flags().StringVarP(&f.summaryFormat, "summary-format", "f", "", "summary format (text, json, markdown, csv)")
	cmd.Flags().StringVar(&f.outputFile, "output-file", "", "save the summary to a file instead of stdout")
}

// deckConfig merges explicitly set flags over the configured deck section
func (f *sessionFlags) deckConfig(cmd *cobra.Command, cfg *config.Config) config.DeckConfig {
	d := cfg.Deck
	if cmd.Flag("mode").Changed {
		d.Mode = f.mode
	}
	if cmd.Flag("threshold").Changed {
		d.Threshold = f.threshold
	}
	if cmd.Flag("transition").Changed {
		d.Transition = f.transition
	}
	return d
}

func (f *sessionFlags) format(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flag("summary-format").Changed {
		return f.summaryFormat
	}
	return cfg.Output.SummaryFormat
}

// resolveRole picks the browsing role: explicit flag, then the role a deck
// file declares, then the configured role
func (f *sessionFlags) resolveRole(cmd *cobra.Command, c *catalog.Catalog, cfg *config.Config) (catalog.Role, error) {
	if cmd.Flag("role").Changed {
		return catalog.ParseRole(f.role)
	}
	if c.Role != "" {
		return c.Role, nil
	}
	return catalog.ParseRole(cfg.Catalog.Role)
}

// deckPaths returns the deck files for a session: the argument if given,
// otherwise the configured catalog paths
func deckPaths(args []string, cfg *config.Config) []string {
	if len(args) > 0 {
		return args[:1]
	}
	return cfg.Catalog.Paths
}

// loadCatalog reads every deck path, falling back to the embedded deck when
// nothing is configured and defaults are enabled
func loadCatalog(paths []string, enableDefaults bool) (*catalog.Catalog, error) {
	if len(paths) == 0 {
		if !enableDefaults {
			return nil, fmt.Errorf("no deck files given and built-in defaults are disabled")
		}
		return catalog.Defaults()
	}

	c := catalog.New()
	for _, path := range paths {
		if err := c.AddFile(path); err != nil {
			return nil, fmt.Errorf("failed to load deck %s: %w", path, err)
		}
	}
	return c, nil
}

// writeSummary formats the summary and writes it to outputFile or w
func writeSummary(w io.Writer, summary *shortlist.Summary, format, outputFile string) error {
	f, err := formatter.New(format, useColor() && outputFile == "")
	if err != nil {
		return fmt.Errorf("failed to get formatter: %w", err)
	}

	output, err := f.Format(summary)
	if err != nil {
		return fmt.Errorf("failed to format summary: %w", err)
	}

	if outputFile == "" {
		_, err = w.Write(output)
		return err
	}

	if err := writeOutputBytesToFile(output, outputFile); err != nil {
		return fmt.Errorf("failed to write summary to file: %w", err)
	}
	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Summary saved to: %s\n", outputFile)
	}
	return nil
}

// writeOutputBytesToFile writes output to a file with proper error handling
func writeOutputBytesToFile(output []byte, filePath string) error {
	cleanPath := filepath.Clean(filePath)

	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close output file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return file.Sync()
}

// fileExists reports whether filename can be stat'ed
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}
