// Package config loads and saves finpath's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/finpath/internal/metrics"
	"github.com/theirongolddev/finpath/internal/tui/theme"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all finpath configuration.
type Config struct {
	Profile    ProfileConfig    `toml:"profile"`
	Appearance AppearanceConfig `toml:"appearance"`
	Budget     BudgetConfig     `toml:"budget"`
	Planner    PlannerConfig    `toml:"planner"`
	Log        LogConfig        `toml:"log"`
}

// ProfileConfig holds the user's display details.
type ProfileConfig struct {
	Name  string `toml:"name" validate:"max=64"`
	Email string `toml:"email,omitempty" validate:"omitempty,email"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme" validate:"theme"`
}

// BudgetConfig holds the starting values of the Budget tab sliders.
type BudgetConfig struct {
	Income             float64 `toml:"income" validate:"gte=0"`
	Rent               float64 `toml:"rent" validate:"gte=0"`
	Transport          float64 `toml:"transport" validate:"gte=0"`
	Groceries          float64 `toml:"groceries" validate:"gte=0"`
	Entertainment      float64 `toml:"entertainment" validate:"gte=0"`
	Savings            float64 `toml:"savings" validate:"gte=0"`
	MonthlySavingsGoal float64 `toml:"monthly_savings_goal" validate:"gte=0"`
}

// PlannerConfig holds checklist and goal tracker settings.
type PlannerConfig struct {
	UndoWindowSec int `toml:"undo_window_sec" validate:"gte=1,lte=600"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	File  string `toml:"file,omitempty"`
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Profile: ProfileConfig{
			Name: "Sarah",
		},
		Appearance: AppearanceConfig{
			Theme: "sage",
		},
		Budget: BudgetConfig{
			Income:             4200,
			Rent:               800,
			Transport:          150,
			Groceries:          800,
			Entertainment:      150,
			Savings:            800,
			MonthlySavingsGoal: 100,
		},
		Planner: PlannerConfig{
			UndoWindowSec: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Values maps the configured amounts onto budget field keys.
func (b BudgetConfig) Values() map[metrics.FieldKey]decimal.Decimal {
	return map[metrics.FieldKey]decimal.Decimal{
		metrics.FieldIncome:        decimal.NewFromFloat(b.Income),
		metrics.FieldRent:          decimal.NewFromFloat(b.Rent),
		metrics.FieldTransport:     decimal.NewFromFloat(b.Transport),
		metrics.FieldGroceries:     decimal.NewFromFloat(b.Groceries),
		metrics.FieldEntertainment: decimal.NewFromFloat(b.Entertainment),
		metrics.FieldSavings:       decimal.NewFromFloat(b.Savings),
	}
}

// UndoWindow returns the undo window as a duration.
func (p PlannerConfig) UndoWindow() time.Duration {
	return time.Duration(p.UndoWindowSec) * time.Second
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finpath")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finpath")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// A .env file in the working directory and FINPATH_* environment variables
// override file values.
func Load() (Config, error) {
	cfg := DefaultConfig()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("reading .env: %w", err)
	}

	data, err := os.ReadFile(Path())
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	applyEnv(&cfg)

	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FINPATH_PROFILE_NAME"); v != "" {
		cfg.Profile.Name = v
	}
	if v := os.Getenv("FINPATH_THEME"); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv("FINPATH_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("FINPATH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

var validate = newValidator()

// newValidator adds the "theme" tag, which accepts any name in theme.All.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
		return theme.Valid(fl.Field().String())
	})
	return v
}

// Validate checks field constraints.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
