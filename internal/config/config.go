// Package config provides YAML/TOML-based game configuration loading and
// difficulty presets for Ball.
package config

import (
	"errors"
	"fmt"
	"math"
)

// BallConfig contains all configuration for the Ball game.
type BallConfig struct {
	Player  PlayerConfig  `yaml:"player" toml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy" toml:"enemy"`
	Star    StarConfig    `yaml:"star" toml:"star"`
	Timers  TimersConfig  `yaml:"timers" toml:"timers"`
	World   WorldConfig   `yaml:"world" toml:"world"`
	Audio   AudioConfig   `yaml:"audio" toml:"audio"`
	Sprites SpritesConfig `yaml:"sprites" toml:"sprites"`
}

// PlayerConfig defines the player ball.
type PlayerConfig struct {
	Size  float64 `yaml:"size" toml:"size"`
	Speed float64 `yaml:"speed" toml:"speed"` // world units per second
}

// EnemyConfig defines roaming enemies and their spawn rate.
type EnemyConfig struct {
	Size         float64 `yaml:"size" toml:"size"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	InitialCount int     `yaml:"initial_count" toml:"initial_count"`
	SpawnPeriod  float64 `yaml:"spawn_period" toml:"spawn_period"` // seconds
}

// StarConfig defines collectible stars and their spawn rate.
type StarConfig struct {
	Size         float64 `yaml:"size" toml:"size"`
	InitialCount int     `yaml:"initial_count" toml:"initial_count"`
	SpawnPeriod  float64 `yaml:"spawn_period" toml:"spawn_period"`
}

// TimersConfig selects what spawn timers do with leftover time.
type TimersConfig struct {
	Policy string `yaml:"policy" toml:"policy"` // "carry" or "reset"
}

// WorldConfig maps terminal cells to world units.
type WorldConfig struct {
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width"`
	CellHeight float64 `yaml:"cell_height" toml:"cell_height"`
}

// AudioConfig controls sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Volume  float64 `yaml:"volume" toml:"volume"` // 0.0 - 1.0
}

// SpritesConfig names the sprite for each entity kind.
type SpritesConfig struct {
	Player string `yaml:"player" toml:"player"`
	Enemy  string `yaml:"enemy" toml:"enemy"`
	Star   string `yaml:"star" toml:"star"`
}

// minSpawnPeriod is the shortest spawn period in seconds.
const minSpawnPeriod = 0.001

// Validate reports every rule that the config breaks.
func (c BallConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be positive and finite, got %g", name, v))
		}
	}
	period := func(name string, v float64) {
		positive(name, v)
		if v > 0 && v < minSpawnPeriod {
			errs = append(errs, fmt.Errorf("%s must be at least %gs, got %g", name, minSpawnPeriod, v))
		}
	}

	positive("player.size", c.Player.Size)
	positive("player.speed", c.Player.Speed)
	positive("enemy.size", c.Enemy.Size)
	positive("enemy.speed", c.Enemy.Speed)
	period("enemy.spawn_period", c.Enemy.SpawnPeriod)
	positive("star.size", c.Star.Size)
	period("star.spawn_period", c.Star.SpawnPeriod)
	positive("world.cell_width", c.World.CellWidth)
	positive("world.cell_height", c.World.CellHeight)

	if c.Enemy.InitialCount < 0 {
		errs = append(errs, fmt.Errorf("enemy.initial_count must not be negative, got %d", c.Enemy.InitialCount))
	}
	if c.Star.InitialCount < 0 {
		errs = append(errs, fmt.Errorf("star.initial_count must not be negative, got %d", c.Star.InitialCount))
	}
	switch c.Timers.Policy {
	case "", "carry", "reset":
	default:
		errs = append(errs, fmt.Errorf("timers.policy must be carry or reset, got %q", c.Timers.Policy))
	}
	if !(c.Audio.Volume >= 0 && c.Audio.Volume <= 1) {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid ball config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a --difficulty flag value.
// The empty string means "no preset".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyBallPreset modifies the config based on a difficulty preset.
// Normal and fixed keep the configured rules untouched.
func ApplyBallPreset(cfg *BallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemy.Speed *= 0.75
		cfg.Enemy.SpawnPeriod *= 1.5
	case DifficultyHard:
		cfg.Enemy.Speed *= 1.3
		cfg.Enemy.SpawnPeriod *= 0.7
		cfg.Enemy.InitialCount += 2
	}
}
