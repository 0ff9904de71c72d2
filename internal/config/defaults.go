package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Viewport: ViewportConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:               50,
			Height:              50,
			Speed:               5,
			BottomMargin:        0,
			ShotCooldownMs:      500,
			RapidFireCooldownMs: 200,
		},
		Enemies: EnemiesConfig{
			Rows:            5,
			Cols:            10,
			Width:           50,
			Height:          50,
			Padding:         10,
			OffsetTop:       50,
			OffsetLeft:      50,
			Step:            2,
			Descent:         10,
			ShootIntervalMs: 2000,
		},
		Projectiles: ProjectileConfig{
			Width:  5,
			Height: 10,
			Speed:  5,
		},
		PowerUps: PowerUpConfig{
			Width:       20,
			Height:      20,
			FallSpeed:   2,
			SpawnChance: 0.2,
			DurationMs:  5000,
		},
		Scoring: ScoringConfig{
			EnemyPoints: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:                 true,
			IntervalMs:              30000, // 30 seconds of session time
			StepMultiplier:          1.5,
			ShootIntervalMultiplier: 0.8,
			MinShootIntervalMs:      1000,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders":
		return defaultInvadersYAML
	default:
		return nil
	}
}
