package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zombie-fighter.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rules != StandardRules() {
		t.Errorf("expected standard rules, got %+v", cfg.Rules)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadPresetWithOverrides(t *testing.T) {
	path := writeConfig(t, `
rules:
  preset: classic
  bullet_speed: 18
  zombie_spawn_interval: 2s
display:
  color_mode: "256"
audio:
  enabled: false
debug: true
seed: 42
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Rules.Preset != RulesClassic {
		t.Errorf("preset = %q, want classic", cfg.Rules.Preset)
	}
	if cfg.Rules.HealthPackHeal != 50 {
		t.Errorf("classic heal not applied: %d", cfg.Rules.HealthPackHeal)
	}
	if cfg.Rules.BulletSpeed != 18 {
		t.Errorf("bullet_speed override = %v, want 18", cfg.Rules.BulletSpeed)
	}
	if cfg.Rules.ZombieSpawnInterval != 2*time.Second {
		t.Errorf("zombie_spawn_interval = %v, want 2s", cfg.Rules.ZombieSpawnInterval)
	}
	if cfg.Display.ColorMode != "256" {
		t.Errorf("color_mode = %q", cfg.Display.ColorMode)
	}
	if cfg.Display.CellWidth != Default().Display.CellWidth {
		t.Errorf("unset display field changed: %v", cfg.Display.CellWidth)
	}
	if cfg.Audio.Enabled || !cfg.Debug || cfg.Seed != 42 {
		t.Errorf("scalar fields not decoded: %+v", cfg)
	}
}

func TestLoadUnknownPreset(t *testing.T) {
	path := writeConfig(t, "rules:\n  preset: nightmare\n")
	_, err := Load(path)
	if !errors.Is(err, ErrUnknownRules) {
		t.Fatalf("expected ErrUnknownRules, got %v", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "rules: [unterminated\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvRules, RulesClassic)
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "150")
	t.Setenv(EnvSeed, "7")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}

	if cfg.Rules.Preset != RulesClassic {
		t.Errorf("rules = %q, want classic", cfg.Rules.Preset)
	}
	if cfg.Audio.Enabled {
		t.Error("audio should be disabled")
	}
	if cfg.Audio.MasterVolume != 1 {
		t.Errorf("master volume = %v, want clamped 1", cfg.Audio.MasterVolume)
	}
	if cfg.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Seed)
	}
}

func TestApplyEnvBadRules(t *testing.T) {
	t.Setenv(EnvRules, "bogus")
	if err := Default().ApplyEnv(); !errors.Is(err, ErrUnknownRules) {
		t.Fatalf("expected ErrUnknownRules, got %v", err)
	}
}

func TestRulePresets(t *testing.T) {
	std := StandardRules()
	classic := ClassicRules()

	if std.ZombieDamage != 3 || classic.ZombieDamage != 3 {
		t.Error("both presets deal 3 damage per hit")
	}
	if std.MaxHP != 300 || classic.MaxHP != 300 {
		t.Error("both presets cap HP at 300")
	}
	if std.MaxZombies != 7 || classic.MaxZombies != 0 {
		t.Errorf("zombie caps = %d/%d, want 7/0", std.MaxZombies, classic.MaxZombies)
	}
	if std.HealthPackHeal != 20 || classic.HealthPackHeal != 50 {
		t.Errorf("heals = %d/%d, want 20/50", std.HealthPackHeal, classic.HealthPackHeal)
	}
	if err := std.Validate(); err != nil {
		t.Errorf("standard invalid: %v", err)
	}
	if err := classic.Validate(); err != nil {
		t.Errorf("classic invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero bullet speed", func(c *Config) { c.Rules.BulletSpeed = 0 }},
		{"negative cap", func(c *Config) { c.Rules.MaxZombies = -1 }},
		{"zero max hp", func(c *Config) { c.Rules.MaxHP = 0 }},
		{"max hp above ceiling", func(c *Config) { c.Rules.MaxHP = 1000 }},
		{"zero spawn interval", func(c *Config) { c.Rules.HealthPackSpawnInterval = 0 }},
		{"zero cell", func(c *Config) { c.Display.CellHeight = 0 }},
		{"bad color mode", func(c *Config) { c.Display.ColorMode = "cga" }},
		{"loud volume", func(c *Config) { c.Audio.MasterVolume = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadMaxHPAboveCeilingRejected(t *testing.T) {
	path := writeConfig(t, `
rules:
  max_hp: 1000
  health_pack_heal: 50
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("max_hp %d accepted", cfg.Rules.MaxHP)
	}
}

func TestLoadMaxHPBelowCeiling(t *testing.T) {
	path := writeConfig(t, "rules:\n  max_hp: 150\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("max_hp 150 rejected: %v", err)
	}
}

func TestPresetSwitchKeepsFileRuleFields(t *testing.T) {
	path := writeConfig(t, `
rules:
  preset: standard
  bullet_speed: 18
  max_zombies: 4
`)

	tests := []struct {
		name  string
		apply func(t *testing.T, c *Config) error
	}{
		{"flag", func(t *testing.T, c *Config) error { return c.UseRules(RulesClassic) }},
		{"env", func(t *testing.T, c *Config) error {
			t.Setenv(EnvRules, RulesClassic)
			return c.ApplyEnv()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if err := tt.apply(t, cfg); err != nil {
				t.Fatalf("switch preset: %v", err)
			}

			if cfg.Rules.Preset != RulesClassic {
				t.Errorf("preset = %q, want classic", cfg.Rules.Preset)
			}
			if cfg.Rules.HealthPackHeal != 50 {
				t.Errorf("classic heal not applied: %d", cfg.Rules.HealthPackHeal)
			}
			if cfg.Rules.BulletSpeed != 18 {
				t.Errorf("bullet_speed = %v, want file value 18", cfg.Rules.BulletSpeed)
			}
			if cfg.Rules.MaxZombies != 4 {
				t.Errorf("max_zombies = %d, want file value 4", cfg.Rules.MaxZombies)
			}
		})
	}
}

func TestPresetSwitchWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.UseRules(RulesClassic); err != nil {
		t.Fatalf("UseRules: %v", err)
	}
	if cfg.Rules != ClassicRules() {
		t.Errorf("rules = %+v, want plain classic", cfg.Rules)
	}
}
