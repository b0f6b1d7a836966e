package config

import (
	"fmt"
	"math"
	"time"

	"github.com/yildizm/InternSwipe/internal/catalog"
	"github.com/yildizm/InternSwipe/internal/deck"
)

// Config holds the complete application configuration
type Config struct {
	Version string        `yaml:"version" json:"version"`
	Deck    DeckConfig    `yaml:"deck" json:"deck"`
	Catalog CatalogConfig `yaml:"catalog" json:"catalog"`
	Output  OutputConfig  `yaml:"output" json:"output"`
}

// DeckConfig configures the swipe engine
type DeckConfig struct {
	Mode       string        `yaml:"mode" json:"mode"`               // terminating|looping
	Threshold  float64       `yaml:"threshold" json:"threshold"`     // commit distance in offset units
	Transition time.Duration `yaml:"transition" json:"transition"`   // input guard after each decision
	ExitOffset float64       `yaml:"exit_offset" json:"exit_offset"` // where an exiting card animates to
	CellUnits  float64       `yaml:"cell_units" json:"cell_units"`   // offset units per terminal column dragged
}

// CatalogConfig configures where decks come from
type CatalogConfig struct {
	Role           string   `yaml:"role" json:"role"` // student|employer
	Paths          []string `yaml:"paths" json:"paths"`
	EnableDefaults bool     `yaml:"enable_defaults" json:"enable_defaults"`
	Watch          bool     `yaml:"watch" json:"watch"`
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	SummaryFormat string `yaml:"summary_format" json:"summary_format"` // json|text|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Theme         string `yaml:"theme" json:"theme"`                   // default|high-contrast|minimal
	DarkMode      bool   `yaml:"dark_mode" json:"dark_mode"`
	Verbose       bool   `yaml:"verbose" json:"verbose"`
	NoEmoji       bool   `yaml:"no_emoji" json:"no_emoji"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Deck: DeckConfig{
			Mode:       deck.Terminating.String(),
			Threshold:  deck.DefaultThreshold,
			Transition: deck.DefaultTransition,
			ExitOffset: deck.DefaultExitOffset,
			CellUnits:  10,
		},
		Catalog: CatalogConfig{
			Role:           string(catalog.RoleStudent),
			Paths:          []string{},
			EnableDefaults: true,
			Watch:          false,
		},
		Output: OutputConfig{
			SummaryFormat: "text",
			ColorMode:     "auto",
			Theme:         "default",
			DarkMode:      false,
			Verbose:       false,
			NoEmoji:       false,
		},
	}
}

// EngineOptions converts the deck section into engine options
func (d DeckConfig) EngineOptions() ([]deck.Option, error) {
	mode, err := deck.ParseMode(d.Mode)
	if err != nil {
		return nil, err
	}
	return []deck.Option{
		deck.WithMode(mode),
		deck.WithThreshold(d.Threshold),
		deck.WithTransition(d.Transition),
		deck.WithExitOffset(d.ExitOffset),
	}, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateDeckConfig(); err != nil {
		return err
	}
	if err := c.validateCatalogConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return nil
}

// validateDeckConfig validates engine-related configuration
func (c *Config) validateDeckConfig() error {
	if _, err := deck.ParseMode(c.Deck.Mode); err != nil {
		return fmt.Errorf("invalid deck mode: %s (must be one of: terminating, looping)", c.Deck.Mode)
	}
	if !positive(c.Deck.Threshold) {
		return fmt.Errorf("threshold must be greater than 0")
	}
	if c.Deck.Transition <= 0 {
		return fmt.Errorf("transition must be greater than 0")
	}
	if !positive(c.Deck.ExitOffset) {
		return fmt.Errorf("exit_offset must be greater than 0")
	}
	if !positive(c.Deck.CellUnits) {
		return fmt.Errorf("cell_units must be greater than 0")
	}
	return nil
}

// validateCatalogConfig validates catalog-related configuration
func (c *Config) validateCatalogConfig() error {
	if _, err := catalog.ParseRole(c.Catalog.Role); err != nil {
		return fmt.Errorf("invalid role: %s (must be one of: student, employer)", c.Catalog.Role)
	}
	if !c.Catalog.EnableDefaults && len(c.Catalog.Paths) == 0 && c.Catalog.Watch {
		return fmt.Errorf("watch requires at least one catalog path when defaults are disabled")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.SummaryFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.SummaryFormat] {
			return fmt.Errorf("invalid summary format: %s (must be one of: json, text, markdown, csv)", c.Output.SummaryFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	if c.Output.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.Output.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.Output.Theme)
		}
	}
	return nil
}

func positive(f float64) bool {
	return !math.IsNaN(f) && f > 0
}
