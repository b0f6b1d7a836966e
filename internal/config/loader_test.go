package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	if loader == nil {
		t.Fatal("NewLoader returned nil")
	}
	if len(loader.configPaths) != 3 {
		t.Errorf("Expected 3 config paths, got %d", len(loader.configPaths))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	loader := &Loader{configPaths: []string{filepath.Join(t.TempDir(), "missing.yaml")}}

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}
	if cfg.Deck.Threshold != 100 {
		t.Errorf("Expected default threshold 100, got %v", cfg.Deck.Threshold)
	}
	if cfg.Catalog.Role != "student" {
		t.Errorf("Expected default role student, got %s", cfg.Catalog.Role)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), "test-config.yaml", `version: "1.0"
deck:
  mode: looping
  threshold: 120
  transition: 350ms
catalog:
  role: employer
  paths: ["./decks"]
output:
  summary_format: json
  dark_mode: true
`)

	cfg, err := NewLoader().LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config from file: %v", err)
	}

	if cfg.Deck.Mode != "looping" {
		t.Errorf("Expected looping mode, got %s", cfg.Deck.Mode)
	}
	if cfg.Deck.Threshold != 120 {
		t.Errorf("Expected threshold 120, got %v", cfg.Deck.Threshold)
	}
	if cfg.Deck.Transition != 350*time.Millisecond {
		t.Errorf("Expected transition 350ms, got %v", cfg.Deck.Transition)
	}
	if cfg.Deck.ExitOffset != 300 {
		t.Errorf("keys absent from the file should keep defaults, got exit_offset %v", cfg.Deck.ExitOffset)
	}
	if cfg.Catalog.Role != "employer" || len(cfg.Catalog.Paths) != 1 {
		t.Errorf("unexpected catalog section: %+v", cfg.Catalog)
	}
	if !cfg.Catalog.EnableDefaults {
		t.Error("enable_defaults should stay true when the file omits it")
	}
	if cfg.Output.SummaryFormat != "json" || !cfg.Output.DarkMode {
		t.Errorf("unexpected output section: %+v", cfg.Output)
	}
}

func TestLoadConfigPriority(t *testing.T) {
	dir := t.TempDir()
	system := writeConfig(t, dir, "system.yaml", `deck:
  threshold: 150
output:
  theme: minimal
`)
	project := writeConfig(t, dir, "project.yaml", `deck:
  threshold: 90
`)

	loader := &Loader{configPaths: []string{project, system}}
	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Deck.Threshold != 90 {
		t.Errorf("project config should win, got threshold %v", cfg.Deck.Threshold)
	}
	if cfg.Output.Theme != "minimal" {
		t.Errorf("system config should still apply, got theme %s", cfg.Output.Theme)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), "invalid-config.yaml", `deck:
  mode: "looping
  threshold: 100
`)

	if _, err := NewLoader().LoadConfig(configPath); err == nil {
		t.Error("Expected error loading invalid YAML config, but got none")
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), "bad.yaml", `deck:
  threshold: -5
`)

	if _, err := NewLoader().LoadConfig(configPath); err == nil {
		t.Error("Expected validation error for negative threshold")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("INTERNSWIPE_DECK_MODE", "looping")
	t.Setenv("INTERNSWIPE_DECK_THRESHOLD", "75.5")
	t.Setenv("INTERNSWIPE_DECK_TRANSITION", "1s")
	t.Setenv("INTERNSWIPE_CATALOG_ROLE", "employer")
	t.Setenv("INTERNSWIPE_CATALOG_PATHS", "a.yaml, b.yaml,,c.yaml")
	t.Setenv("INTERNSWIPE_OUTPUT_DARK_MODE", "true")

	loader := NewLoader()
	cfg := DefaultConfig()

	if err := loader.applyEnvOverrides(cfg); err != nil {
		t.Fatalf("Failed to apply env overrides: %v", err)
	}

	if cfg.Deck.Mode != "looping" {
		t.Errorf("Expected looping mode, got %s", cfg.Deck.Mode)
	}
	if cfg.Deck.Threshold != 75.5 {
		t.Errorf("Expected threshold 75.5, got %v", cfg.Deck.Threshold)
	}
	if cfg.Deck.Transition != time.Second {
		t.Errorf("Expected transition 1s, got %v", cfg.Deck.Transition)
	}
	if cfg.Catalog.Role != "employer" {
		t.Errorf("Expected role employer, got %s", cfg.Catalog.Role)
	}
	expectedPaths := []string{"a.yaml", "b.yaml", "c.yaml"}
	if len(cfg.Catalog.Paths) != len(expectedPaths) {
		t.Fatalf("Expected %d paths, got %v", len(expectedPaths), cfg.Catalog.Paths)
	}
	for i, p := range expectedPaths {
		if cfg.Catalog.Paths[i] != p {
			t.Errorf("Expected path %s, got %s", p, cfg.Catalog.Paths[i])
		}
	}
	if !cfg.Output.DarkMode {
		t.Error("Expected dark mode to be true")
	}
}

func TestApplyEnvOverridesInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
	}{
		{"invalid float", "INTERNSWIPE_DECK_THRESHOLD", "not-a-number"},
		{"invalid bool", "INTERNSWIPE_OUTPUT_VERBOSE", "not-a-bool"},
		{"invalid duration", "INTERNSWIPE_DECK_TRANSITION", "not-a-duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.value)

			loader := NewLoader()
			cfg := DefaultConfig()

			if err := loader.applyEnvOverrides(cfg); err == nil {
				t.Error("Expected error for invalid env var value, but got none")
			}
		})
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"config.yaml", false},
		{"config.yml", false},
		{"../config.yaml", true},
		{"config.json", true},
		{"/proc/self/config.yaml", true},
	}

	for _, tt := range tests {
		err := validateConfigPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateConfigPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestParseDuration(t *testing.T) {
	var duration time.Duration

	if err := parseDuration("30s", &duration); err != nil {
		t.Errorf("Failed to parse duration: %v", err)
	}
	if duration != 30*time.Second {
		t.Errorf("Expected 30s, got %v", duration)
	}
	if err := parseDuration("invalid", &duration); err == nil {
		t.Error("Expected error for invalid duration, but got none")
	}
}

func TestParseFloat(t *testing.T) {
	var value float64

	if err := parseFloat("42.5", &value); err != nil {
		t.Errorf("Failed to parse float: %v", err)
	}
	if value != 42.5 {
		t.Errorf("Expected 42.5, got %v", value)
	}
	if err := parseFloat("not-a-number", &value); err == nil {
		t.Error("Expected error for invalid float, but got none")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandPath("~/decks"); got != filepath.Join(home, "decks") {
		t.Errorf("expandPath(~/decks) = %s", got)
	}
	if got := expandPath("/abs/decks"); got != "/abs/decks" {
		t.Errorf("absolute paths should be untouched, got %s", got)
	}
}
