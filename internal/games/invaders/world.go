// Package invaders implements a fixed-viewport arcade shooter: a ship at the
// bottom of the playfield defends against a descending formation of enemies.
//
// The simulation runs in world units (the default viewport is 800x600) and is
// advanced one tick at a time by a Session. Rendering to terminal cells,
// audio and score persistence are collaborators attached through hooks.
package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// ArchetypeID identifies an enemy variant.
type ArchetypeID int

const (
	ArchetypeNormal  ArchetypeID = iota // Red, slow, never shoots
	ArchetypeFast                       // Blue, moves 1.5x faster than normal
	ArchetypeShooter                    // Green, fires at the player
)

// Archetype is the immutable template shared by all enemies of one variant.
type Archetype struct {
	Color           core.Color
	SpeedMultiplier float64 // Applied to the formation step
	CanShoot        bool
}

var archetypes = [...]Archetype{
	ArchetypeNormal:  {Color: core.ColorRed, SpeedMultiplier: 2, CanShoot: false},
	ArchetypeFast:    {Color: core.ColorBlue, SpeedMultiplier: 3, CanShoot: false},
	ArchetypeShooter: {Color: core.ColorGreen, SpeedMultiplier: 2, CanShoot: true},
}

// Archetype returns the template for the variant.
func (a ArchetypeID) Archetype() Archetype {
	if a < 0 || int(a) >= len(archetypes) {
		return archetypes[ArchetypeNormal]
	}
	return archetypes[a]
}

// String returns the name of the variant.
func (a ArchetypeID) String() string {
	switch a {
	case ArchetypeNormal:
		return "normal"
	case ArchetypeFast:
		return "fast"
	case ArchetypeShooter:
		return "shooter"
	default:
		return "unknown"
	}
}

// ArchetypeForRow assigns a variant by grid row: every third row starting at
// zero is fast, remaining even rows shoot, odd rows are normal.
func ArchetypeForRow(row int) ArchetypeID {
	switch {
	case row%3 == 0:
		return ArchetypeFast
	case row%2 == 0:
		return ArchetypeShooter
	default:
		return ArchetypeNormal
	}
}

// Player is the ship. There is exactly one per session.
type Player struct {
	Box        core.RectF
	VX         float64 // Horizontal velocity in world units per tick
	Shield     bool
	RapidFire  bool
	LastShotMs float64 // Timestamp passed to the last successful TryFire
	CooldownMs float64 // Minimum gap between shots

	hasFired bool
}

// Enemy is one member of the formation.
type Enemy struct {
	Box          core.RectF
	Kind         ArchetypeID
	ShootTimerMs float64
}

// Projectile is a bullet. Direction is implied by the roster it lives in.
type Projectile struct {
	Box core.RectF
}

// PowerUpType tags the effect a power-up grants.
type PowerUpType int

const (
	PowerUpRapidFire PowerUpType = iota
	PowerUpShield
)

// String returns the name of the power-up type.
func (p PowerUpType) String() string {
	switch p {
	case PowerUpRapidFire:
		return "rapidFire"
	case PowerUpShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Color returns the display colour of the power-up type.
func (p PowerUpType) Color() core.Color {
	if p == PowerUpRapidFire {
		return core.ColorPurple
	}
	return core.ColorGreen
}

// PowerUp is a falling pickup.
type PowerUp struct {
	Box  core.RectF
	Type PowerUpType
}

// Formation is the movement state shared by every enemy: one direction sign,
// one step magnitude and the vertical drop pending for the next move.
type Formation struct {
	Dir  float64 // +1 moving right, -1 moving left
	Step float64 // Base horizontal step, scaled per archetype
	Drop float64 // Vertical offset applied on the next move
}

// Dx returns the signed base step.
func (f Formation) Dx() float64 {
	return f.Dir * f.Step
}

// World is the complete simulation state of a session.
type World struct {
	Width  float64
	Height float64

	Player        Player
	Enemies       []Enemy
	PlayerBullets []Projectile
	EnemyBullets  []Projectile
	PowerUps      []PowerUp

	Formation       Formation
	ShootIntervalMs float64 // Shared enemy shoot threshold
	RampElapsedMs   float64 // Time accumulated towards the next difficulty ramp
	Ramps           int     // Difficulty ramps applied so far

	Score   int
	Wave    int     // Formations spawned, starting at 1
	Ticks   uint64  // Simulation steps taken
	ClockMs float64 // Session time
}
