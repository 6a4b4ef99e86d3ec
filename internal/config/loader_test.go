package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "battleserver.yaml"), []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Port != 30130 {
		t.Fatalf("default port = %d, want 30130", cfg.Port)
	}
	if cfg.Address() != ":30130" {
		t.Fatalf("Address() = %q", cfg.Address())
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := Default()
	if cfg.Port != want.Port || cfg.Combat != want.Combat || cfg.Framing != want.Framing {
		t.Fatalf("LoadConfig without file = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := writeConfig(t, `
host: 127.0.0.1
port: 4000
writeTimeout: 2s
arrival: back
combat:
  healthMin: 50
  healthMax: 60
`)
	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Address() != "127.0.0.1:4000" {
		t.Fatalf("Address() = %q", cfg.Address())
	}
	if cfg.Arrival != ArrivalBack {
		t.Fatalf("Arrival = %q", cfg.Arrival)
	}
	if cfg.WriteTimeout != 2*time.Second {
		t.Fatalf("WriteTimeout = %v", cfg.WriteTimeout)
	}
	if cfg.Combat.HealthMin != 50 || cfg.Combat.HealthMax != 60 {
		t.Fatalf("combat health = %d..%d", cfg.Combat.HealthMin, cfg.Combat.HealthMax)
	}
	if cfg.Combat.DamageMax != 6 {
		t.Fatalf("unset field lost its default: damageMax = %d", cfg.Combat.DamageMax)
	}
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	dir := writeConfig(t, "port: [unterminated\n")
	if _, err := LoadConfig(dir); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"health range inverted", func(c *Config) { c.Combat.HealthMin = 31 }},
		{"charges range inverted", func(c *Config) { c.Combat.ChargesMax = 1 }},
		{"zero damage", func(c *Config) { c.Combat.DamageMin = 0 }},
		{"hit chance above one", func(c *Config) { c.Combat.PowerHitChance = 1.5 }},
		{"zero multiplier", func(c *Config) { c.Combat.PowerMultiplier = 0 }},
		{"message larger than buffer", func(c *Config) { c.Framing.MaxMessage = 301 }},
		{"empty buffer", func(c *Config) { c.Framing.BufferSize = 0 }},
		{"zero name length", func(c *Config) { c.MaxNameLength = 0 }},
		{"unknown arrival policy", func(c *Config) { c.Arrival = "middle" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
