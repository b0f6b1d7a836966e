package config

import (
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yildizm/InternSwipe/internal/deck"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}
	if cfg.Deck.Threshold != 100 {
		t.Errorf("Expected threshold 100, got %v", cfg.Deck.Threshold)
	}
	if cfg.Deck.Transition != 200*time.Millisecond {
		t.Errorf("Expected transition 200ms, got %v", cfg.Deck.Transition)
	}
	if cfg.Deck.Mode != "terminating" {
		t.Errorf("Expected terminating mode, got %s", cfg.Deck.Mode)
	}
	if !cfg.Catalog.EnableDefaults {
		t.Error("Expected built-in deck to be enabled by default")
	}
	if cfg.Output.SummaryFormat != "text" {
		t.Errorf("Expected summary format text, got %s", cfg.Output.SummaryFormat)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{
			name:   "invalid mode",
			modify: func(c *Config) { c.Deck.Mode = "shuffle" },
			errMsg: "invalid deck mode: shuffle (must be one of: terminating, looping)",
		},
		{
			name:   "zero threshold",
			modify: func(c *Config) { c.Deck.Threshold = 0 },
			errMsg: "threshold must be greater than 0",
		},
		{
			name:   "negative transition",
			modify: func(c *Config) { c.Deck.Transition = -time.Millisecond },
			errMsg: "transition must be greater than 0",
		},
		{
			name:   "zero cell units",
			modify: func(c *Config) { c.Deck.CellUnits = 0 },
			errMsg: "cell_units must be greater than 0",
		},
		{
			name:   "invalid role",
			modify: func(c *Config) { c.Catalog.Role = "recruiter" },
			errMsg: "invalid role: recruiter (must be one of: student, employer)",
		},
		{
			name: "watch without a deck",
			modify: func(c *Config) {
				c.Catalog.EnableDefaults = false
				c.Catalog.Watch = true
			},
			errMsg: "watch requires at least one catalog path",
		},
		{
			name:   "invalid summary format",
			modify: func(c *Config) { c.Output.SummaryFormat = "xml" },
			errMsg: "invalid summary format: xml (must be one of: json, text, markdown, csv)",
		},
		{
			name:   "invalid color mode",
			modify: func(c *Config) { c.Output.ColorMode = "sometimes" },
			errMsg: "invalid color mode: sometimes (must be one of: auto, always, never)",
		},
		{
			name:   "invalid theme",
			modify: func(c *Config) { c.Output.Theme = "neon" },
			errMsg: "invalid theme: neon (must be one of: default, high-contrast, minimal)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error, got none")
			}
			if !strings.HasPrefix(err.Error(), tt.errMsg) {
				t.Errorf("Expected error %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Deck.Mode = "looping"
	cfg.Deck.Threshold = 80

	opts, err := cfg.Deck.EngineOptions()
	if err != nil {
		t.Fatalf("EngineOptions() error = %v", err)
	}

	e, err := deck.New([]deck.Item{key("a")}, opts...)
	if err != nil {
		t.Fatalf("deck.New() error = %v", err)
	}
	if e.Mode() != deck.Looping || e.Threshold() != 80 {
		t.Errorf("engine mode=%v threshold=%v, want looping and 80", e.Mode(), e.Threshold())
	}

	cfg.Deck.Mode = "bogus"
	if _, err := cfg.Deck.EngineOptions(); err == nil {
		t.Error("EngineOptions() should reject an unknown mode")
	}
}

func TestSampleConfigsParse(t *testing.T) {
	for name, content := range map[string]string{
		"full":    SampleConfig(),
		"minimal": MinimalSampleConfig(),
	} {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
				t.Fatalf("sample config is not valid YAML: %v", err)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("sample config should validate: %v", err)
			}
		})
	}
}

type key string

func (k key) Key() string { return string(k) }
