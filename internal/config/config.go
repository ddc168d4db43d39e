// Package config loads and saves planner preferences from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all planner configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Planner    PlannerConfig    `toml:"planner"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	CurrencySymbol string `toml:"currency_symbol"`
	DataDir        string `toml:"data_dir,omitempty"`
}

// PlannerConfig holds savings and financing defaults.
type PlannerConfig struct {
	DefaultSavePercent  float64 `toml:"default_save_percent"`
	FinancingAnnualRate float64 `toml:"financing_annual_rate"`
	FinancingMaxMonths  int     `toml:"financing_max_months"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			CurrencySymbol: "$",
		},
		Planner: PlannerConfig{
			DefaultSavePercent:  0.5,
			FinancingAnnualRate: 0.24,
			FinancingMaxMonths:  36,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "financeflow")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "financeflow")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the state database, honoring the
// config override when set.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "financeflow")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "financeflow")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
