// Package config loads the game configuration from an optional YAML file,
// environment overrides and rule set presets
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/zombie-fighter/parameter"
)

// DefaultPath is the config file looked up when no -config flag is given
const DefaultPath = "zombie-fighter.yaml"

// Environment overrides
const (
	EnvRules        = "ZOMBIE_FIGHTER_RULES"
	EnvAudioEnabled = "ZOMBIE_FIGHTER_AUDIO_ENABLED"
	EnvMasterVolume = "ZOMBIE_FIGHTER_MASTER_VOLUME"
	EnvSeed         = "ZOMBIE_FIGHTER_SEED"
)

// Config is the complete runtime configuration
type Config struct {
	Rules   Rules         `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Debug   bool          `yaml:"debug"`
	Seed    uint64        `yaml:"seed"` // 0 = seed from clock

	// Keys rebinds keys to action names, e.g. "w": move_up, "Enter": fire
	Keys map[string]string `yaml:"keys"`

	// fileRules is the rules mapping read from the config file, reapplied over
	// any preset chosen later so explicit fields keep winning
	fileRules *yaml.Node
}

// DisplayConfig controls the terminal projection
type DisplayConfig struct {
	ColorMode     string        `yaml:"color_mode"` // auto, 256, truecolor
	CellWidth     float64       `yaml:"cell_width"`
	CellHeight    float64       `yaml:"cell_height"`
	FrameInterval time.Duration `yaml:"frame_interval"`
}

// AudioConfig controls sound effects
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0-1.0
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Rules: StandardRules(),
		Display: DisplayConfig{
			ColorMode:     "auto",
			CellWidth:     parameter.CellWidth,
			CellHeight:    parameter.CellHeight,
			FrameInterval: parameter.FrameUpdateInterval,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
		},
	}
}

// Load reads path on top of Default, a missing file yields the defaults
// The rules preset is resolved first so explicit rule fields in the file override it
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	var head struct {
		Rules yaml.Node `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return err
	}

	if head.Rules.Kind == yaml.MappingNode {
		var preset struct {
			Preset string `yaml:"preset"`
		}
		if err := head.Rules.Decode(&preset); err != nil {
			return err
		}
		if preset.Preset != "" {
			if err := c.UseRules(preset.Preset); err != nil {
				return err
			}
		}
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return err
	}
	if head.Rules.Kind == yaml.MappingNode {
		c.fileRules = &head.Rules
	}
	return nil
}

// UseRules switches to a named preset
// Rule fields set explicitly in the config file are applied again on top of it
func (c *Config) UseRules(name string) error {
	rules, err := RulesByName(name)
	if err != nil {
		return err
	}
	c.Rules = rules

	if c.fileRules != nil {
		if err := c.fileRules.Decode(&c.Rules); err != nil {
			return fmt.Errorf("reapply config rules: %w", err)
		}
		c.Rules.Preset = rules.Preset
	}
	return nil
}

// ApplyEnv applies environment overrides; malformed values are ignored
func (c *Config) ApplyEnv() error {
	if name := os.Getenv(EnvRules); name != "" {
		if err := c.UseRules(name); err != nil {
			return fmt.Errorf("%s: %w", EnvRules, err)
		}
	}

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = min(1, max(0, float64(val)/100.0))
		}
	}

	if seed := os.Getenv(EnvSeed); seed != "" {
		if val, err := strconv.ParseUint(seed, 10, 64); err == nil {
			c.Seed = val
		}
	}
	return nil
}

// Validate checks the whole configuration
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("rules: %w", err)
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		return fmt.Errorf("display: cell size must be positive")
	}
	if c.Display.FrameInterval <= 0 {
		return fmt.Errorf("display: frame_interval must be positive")
	}
	switch c.Display.ColorMode {
	case "auto", "256", "truecolor":
	default:
		return fmt.Errorf("display: unknown color_mode %q", c.Display.ColorMode)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("audio: master_volume must be within [0, 1]")
	}
	return nil
}
