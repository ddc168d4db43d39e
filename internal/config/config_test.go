package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.General.CurrencySymbol != "$" {
		t.Errorf("CurrencySymbol = %q, want $", cfg.General.CurrencySymbol)
	}
	if cfg.Planner.DefaultSavePercent != 0.5 {
		t.Errorf("DefaultSavePercent = %v, want 0.5", cfg.Planner.DefaultSavePercent)
	}
	if cfg.Planner.FinancingAnnualRate != 0.24 {
		t.Errorf("FinancingAnnualRate = %v, want 0.24", cfg.Planner.FinancingAnnualRate)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.CurrencySymbol = "COP "
	cfg.Planner.DefaultSavePercent = 0.3
	cfg.Planner.FinancingMaxMonths = 24

	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !Exists() {
		t.Error("Exists() = false after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.General.CurrencySymbol != "COP " {
		t.Errorf("CurrencySymbol = %q, want COP", got.General.CurrencySymbol)
	}
	if got.Planner.DefaultSavePercent != 0.3 {
		t.Errorf("DefaultSavePercent = %v, want 0.3", got.Planner.DefaultSavePercent)
	}
	if got.Planner.FinancingMaxMonths != 24 {
		t.Errorf("FinancingMaxMonths = %v, want 24", got.Planner.FinancingMaxMonths)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "financeflow", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not = [valid"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() = nil error for invalid TOML")
	}
}

func TestDataDir_Override(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/custom"
	if got := DataDir(cfg); got != "/tmp/custom" {
		t.Errorf("DataDir = %q, want /tmp/custom", got)
	}
}
