package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/zombie-fighter/parameter"
)

// Rule set preset names
const (
	RulesStandard = "standard"
	RulesClassic  = "classic"
)

// ErrUnknownRules is returned for a preset name with no matching rule set
var ErrUnknownRules = errors.New("unknown rule set")

// Rules holds every gameplay tunable the simulation reads
// Speeds are surface units per frame, intervals are wall clock
type Rules struct {
	Preset string `yaml:"preset"`

	PlayerStep   float64 `yaml:"player_step"`
	VerticalStep float64 `yaml:"vertical_step"`
	MaxHP        int     `yaml:"max_hp"`

	BulletSpeed float64 `yaml:"bullet_speed"`

	ZombieSpeed  float64 `yaml:"zombie_speed"`
	ZombieDamage int     `yaml:"zombie_damage"`
	KillScore    int     `yaml:"kill_score"`
	MaxZombies   int     `yaml:"max_zombies"` // 0 = unlimited

	HealthPackSpeed float64 `yaml:"health_pack_speed"`
	HealthPackHeal  int     `yaml:"health_pack_heal"`

	ZombieSpawnInterval     time.Duration `yaml:"zombie_spawn_interval"`
	HealthPackSpawnInterval time.Duration `yaml:"health_pack_spawn_interval"`
}

// StandardRules is the canonical rule set: clamped HP, capped zombie count, small heals
func StandardRules() Rules {
	return Rules{
		Preset:                  RulesStandard,
		PlayerStep:              parameter.PlayerStep,
		VerticalStep:            parameter.PlayerVerticalStep,
		MaxHP:                   parameter.PlayerMaxHP,
		BulletSpeed:             parameter.BulletSpeed,
		ZombieSpeed:             parameter.ZombieSpeed,
		ZombieDamage:            parameter.ZombieDamage,
		KillScore:               parameter.KillScore,
		MaxZombies:              parameter.MaxZombies,
		HealthPackSpeed:         parameter.HealthPackSpeed,
		HealthPackHeal:          parameter.HealthPackHeal,
		ZombieSpawnInterval:     parameter.ZombieSpawnInterval,
		HealthPackSpawnInterval: parameter.HealthPackSpawnInterval,
	}
}

// ClassicRules trades the zombie cap for slower spawns, slower bullets and bigger heals
func ClassicRules() Rules {
	r := StandardRules()
	r.Preset = RulesClassic
	r.BulletSpeed = 15
	r.HealthPackHeal = 50
	r.MaxZombies = 0
	r.ZombieSpawnInterval = 1500 * time.Millisecond
	return r
}

// RulesByName resolves a preset name
func RulesByName(name string) (Rules, error) {
	switch name {
	case RulesStandard, "":
		return StandardRules(), nil
	case RulesClassic:
		return ClassicRules(), nil
	default:
		return Rules{}, fmt.Errorf("%w: %q", ErrUnknownRules, name)
	}
}

// Validate rejects rule sets the simulation cannot run
func (r Rules) Validate() error {
	switch {
	case r.PlayerStep <= 0 || r.VerticalStep <= 0:
		return fmt.Errorf("player step must be positive")
	case r.MaxHP <= 0 || r.MaxHP > parameter.PlayerMaxHP:
		return fmt.Errorf("max_hp must be within [1, %d], got %d", parameter.PlayerMaxHP, r.MaxHP)
	case r.BulletSpeed <= 0 || r.ZombieSpeed <= 0 || r.HealthPackSpeed <= 0:
		return fmt.Errorf("entity speeds must be positive")
	case r.ZombieDamage < 0 || r.HealthPackHeal < 0 || r.KillScore < 0:
		return fmt.Errorf("damage, heal and score must not be negative")
	case r.MaxZombies < 0:
		return fmt.Errorf("max_zombies must not be negative, got %d", r.MaxZombies)
	case r.ZombieSpawnInterval <= 0 || r.HealthPackSpawnInterval <= 0:
		return fmt.Errorf("spawn intervals must be positive")
	}
	return nil
}
