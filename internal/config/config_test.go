package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/finpath/internal/metrics"
	"github.com/theirongolddev/finpath/internal/tui/theme"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Appearance.Theme != "sage" {
		t.Fatalf("Theme = %q, want sage", cfg.Appearance.Theme)
	}
	if cfg.Planner.UndoWindow() != 30*time.Second {
		t.Fatalf("UndoWindow = %s, want 30s", cfg.Planner.UndoWindow())
	}
	if Exists() {
		t.Fatal("Exists() = true without a config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Profile.Name = "Jordan"
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Budget.Rent = 950
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Profile.Name != "Jordan" || got.Appearance.Theme != "tokyo-night" || got.Budget.Rent != 950 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("FINPATH_THEME", "terminal")
	t.Setenv("FINPATH_PROFILE_NAME", "Alex")
	t.Setenv("FINPATH_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Appearance.Theme != "terminal" || cfg.Profile.Name != "Alex" || cfg.Log.Level != "debug" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "finpath", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[appearance]\ntheme = \"neon\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted an unknown theme")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := Validate(cfg); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	bad := DefaultConfig()
	bad.Budget.Rent = -1
	if err := Validate(bad); err == nil {
		t.Fatal("negative rent accepted")
	}

	bad = DefaultConfig()
	bad.Planner.UndoWindowSec = 0
	if err := Validate(bad); err == nil {
		t.Fatal("zero undo window accepted")
	}

	bad = DefaultConfig()
	bad.Profile.Email = "not-an-email"
	if err := Validate(bad); err == nil {
		t.Fatal("malformed email accepted")
	}
}

func TestValidate_ThemeNamesComeFromThemes(t *testing.T) {
	for _, name := range theme.Names() {
		cfg := DefaultConfig()
		cfg.Appearance.Theme = name
		if err := Validate(cfg); err != nil {
			t.Errorf("theme %q rejected: %v", name, err)
		}
	}

	for _, name := range []string{"", "catppuccin-mocha", "Sage"} {
		cfg := DefaultConfig()
		cfg.Appearance.Theme = name
		if err := Validate(cfg); err == nil {
			t.Errorf("theme %q accepted", name)
		}
	}
}

func TestBudgetValues(t *testing.T) {
	v := DefaultConfig().Budget.Values()
	if got := v[metrics.FieldIncome].String(); got != "4200" {
		t.Fatalf("income = %s, want 4200", got)
	}
	if len(v) != len(metrics.DefaultFields()) {
		t.Fatalf("values len = %d, want %d", len(v), len(metrics.DefaultFields()))
	}
}
