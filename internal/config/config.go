// Package config provides YAML-based game configuration loading and
// difficulty management for the invaders game.
package config

import (
	"errors"
	"fmt"
)

// InvadersConfig contains all tunables of the invaders simulation.
// Distances are in world units, times in milliseconds, speeds in
// world units per tick.
type InvadersConfig struct {
	Viewport    ViewportConfig   `yaml:"viewport"`
	Player      PlayerConfig     `yaml:"player"`
	Enemies     EnemiesConfig    `yaml:"enemies"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	PowerUps    PowerUpConfig    `yaml:"powerups"`
	Scoring     ScoringConfig    `yaml:"scoring"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// ViewportConfig is the fixed playfield size.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
	Speed               float64 `yaml:"speed"`                 // Horizontal velocity magnitude
	BottomMargin        float64 `yaml:"bottom_margin"`         // Gap between ship and viewport bottom
	ShotCooldownMs      float64 `yaml:"shot_cooldown_ms"`      // Default delay between shots
	RapidFireCooldownMs float64 `yaml:"rapid_fire_cooldown_ms"` // Delay while rapid fire is active
}

// EnemiesConfig defines the enemy grid and formation movement.
type EnemiesConfig struct {
	Rows            int     `yaml:"rows"`
	Cols            int     `yaml:"cols"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Padding         float64 `yaml:"padding"`
	OffsetTop       float64 `yaml:"offset_top"`
	OffsetLeft      float64 `yaml:"offset_left"`
	Step            float64 `yaml:"step"`    // Base horizontal step before archetype multiplier
	Descent         float64 `yaml:"descent"` // Vertical drop after an edge bounce
	ShootIntervalMs float64 `yaml:"shoot_interval_ms"`
}

// ProjectileConfig defines bullets for both sides.
type ProjectileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// PowerUpConfig defines power-up drops and their effects.
type PowerUpConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FallSpeed   float64 `yaml:"fall_speed"`
	SpawnChance float64 `yaml:"spawn_chance"` // Probability per destroyed enemy, 0..1
	DurationMs  float64 `yaml:"duration_ms"`  // Lifetime of rapid fire and shield
}

// ScoringConfig defines points awarded.
type ScoringConfig struct {
	EnemyPoints int `yaml:"enemy_points"`
}

// DifficultyConfig defines the periodic difficulty ramp.
type DifficultyConfig struct {
	Enabled                 bool    `yaml:"enabled"`
	IntervalMs              float64 `yaml:"interval_ms"`               // Session time between ramps
	StepMultiplier          float64 `yaml:"step_multiplier"`           // Applied to the formation step
	ShootIntervalMultiplier float64 `yaml:"shoot_interval_multiplier"` // Applied to the enemy shoot interval
	MinShootIntervalMs      float64 `yaml:"min_shoot_interval_ms"`     // Floor for the shoot interval
}

// Validate checks the config for values the simulation cannot run with.
// All problems are reported together.
func (c InvadersConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("config: %s must be positive, got %v", name, v))
		}
	}

	positive("viewport.width", c.Viewport.Width)
	positive("viewport.height", c.Viewport.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	positive("player.shot_cooldown_ms", c.Player.ShotCooldownMs)
	positive("player.rapid_fire_cooldown_ms", c.Player.RapidFireCooldownMs)
	positive("enemies.width", c.Enemies.Width)
	positive("enemies.height", c.Enemies.Height)
	positive("enemies.step", c.Enemies.Step)
	positive("enemies.shoot_interval_ms", c.Enemies.ShootIntervalMs)
	positive("projectiles.width", c.Projectiles.Width)
	positive("projectiles.height", c.Projectiles.Height)
	positive("projectiles.speed", c.Projectiles.Speed)
	positive("powerups.width", c.PowerUps.Width)
	positive("powerups.height", c.PowerUps.Height)
	positive("powerups.fall_speed", c.PowerUps.FallSpeed)
	positive("powerups.duration_ms", c.PowerUps.DurationMs)

	if c.Enemies.Rows <= 0 || c.Enemies.Cols <= 0 {
		errs = append(errs, fmt.Errorf("config: enemies grid must be at least 1x1, got %dx%d", c.Enemies.Rows, c.Enemies.Cols))
	}
	if c.Enemies.Padding < 0 || c.Enemies.Descent < 0 {
		errs = append(errs, errors.New("config: enemies.padding and enemies.descent must not be negative"))
	}
	if c.PowerUps.SpawnChance < 0 || c.PowerUps.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("config: powerups.spawn_chance must be within [0, 1], got %v", c.PowerUps.SpawnChance))
	}
	if c.Player.Width > c.Viewport.Width {
		errs = append(errs, errors.New("config: player is wider than the viewport"))
	}

	if c.Difficulty.Enabled {
		positive("difficulty.interval_ms", c.Difficulty.IntervalMs)
		if c.Difficulty.StepMultiplier < 1 {
			errs = append(errs, fmt.Errorf("config: difficulty.step_multiplier must be >= 1, got %v", c.Difficulty.StepMultiplier))
		}
		if c.Difficulty.ShootIntervalMultiplier <= 0 || c.Difficulty.ShootIntervalMultiplier > 1 {
			errs = append(errs, fmt.Errorf("config: difficulty.shoot_interval_multiplier must be within (0, 1], got %v", c.Difficulty.ShootIntervalMultiplier))
		}
		if c.Difficulty.MinShootIntervalMs <= 0 {
			errs = append(errs, errors.New("config: difficulty.min_shoot_interval_ms must be positive"))
		} else if c.Difficulty.MinShootIntervalMs > c.Enemies.ShootIntervalMs {
			errs = append(errs, fmt.Errorf("config: difficulty.min_shoot_interval_ms (%v) is above enemies.shoot_interval_ms (%v)",
				c.Difficulty.MinShootIntervalMs, c.Enemies.ShootIntervalMs))
		}
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty strings
// return "" and false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
