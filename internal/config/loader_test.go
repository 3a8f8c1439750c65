package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.SpinDurationMS != 3000 {
		t.Errorf("expected default spin duration 3000, got %d", cfg.SpinDurationMS)
	}
	if !cfg.RemoveWinner {
		t.Error("expected winner removal to default on")
	}
	if cfg.SeedDefaults {
		t.Error("expected seeding to default off")
	}
	if !cfg.MetricsEnabled {
		t.Error("expected metrics to default on")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("WHEEL_ADDR", ":9999")
	t.Setenv("WHEEL_SPIN_DURATION_MS", "250")
	t.Setenv("WHEEL_SEED_DEFAULTS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("expected addr :9999, got %q", cfg.Addr)
	}
	if cfg.SpinDurationMS != 250 {
		t.Errorf("expected spin duration 250, got %d", cfg.SpinDurationMS)
	}
	if !cfg.SeedDefaults {
		t.Error("expected seeding to be enabled")
	}
}

func TestLoadFileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.yaml")
	if err := os.WriteFile(path, []byte("addr: \":7000\"\nlog_level: debug\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("WHEEL_CONFIG", path)
	t.Setenv("WHEEL_ADDR", ":7001")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level from file, got %q", cfg.LogLevel)
	}
	if cfg.Addr != ":7001" {
		t.Errorf("expected env to win over file, got %q", cfg.Addr)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("WHEEL_ADDR", "")
	if _, err := Load(); err == nil {
		t.Error("expected an error for empty addr")
	}

	t.Setenv("WHEEL_ADDR", ":8080")
	t.Setenv("WHEEL_SPIN_DURATION_MS", "-5")
	if _, err := Load(); err == nil {
		t.Error("expected an error for negative spin duration")
	}
}
