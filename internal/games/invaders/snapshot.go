package invaders

import "math"

// Snapshot is a flat copy of the session state used for determinism checks.
// Floating point values are stored as their IEEE 754 bits.
type Snapshot struct {
	Ticks uint64
	Clock uint64
	State int
	Score int
	Wave  int
	Ramps int

	PlayerX    uint64
	PlayerVX   uint64
	Shield     bool
	RapidFire  bool
	CooldownMs uint64

	FormationDir  uint64
	FormationStep uint64
	FormationDrop uint64
	ShootInterval uint64
	RampElapsed   uint64

	// Each enemy is 4 values: X, Y, Kind, ShootTimer
	EnemyData []uint64
	// Each bullet is 2 values: X, Y
	PlayerBulletData []uint64
	EnemyBulletData  []uint64
	// Each power-up is 3 values: X, Y, Type
	PowerUpData []uint64
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	w := &s.world

	enemyData := make([]uint64, 0, len(w.Enemies)*4)
	for _, e := range w.Enemies {
		enemyData = append(enemyData,
			math.Float64bits(e.Box.X),
			math.Float64bits(e.Box.Y),
			uint64(e.Kind), //#nosec G115 -- archetype ids are small and non-negative
			math.Float64bits(e.ShootTimerMs))
	}

	powerUpData := make([]uint64, 0, len(w.PowerUps)*3)
	for _, p := range w.PowerUps {
		powerUpData = append(powerUpData,
			math.Float64bits(p.Box.X),
			math.Float64bits(p.Box.Y),
			uint64(p.Type)) //#nosec G115 -- power-up types are small and non-negative
	}

	return Snapshot{
		Ticks: w.Ticks,
		Clock: math.Float64bits(w.ClockMs),
		State: int(s.state),
		Score: w.Score,
		Wave:  w.Wave,
		Ramps: w.Ramps,

		PlayerX:    math.Float64bits(w.Player.Box.X),
		PlayerVX:   math.Float64bits(w.Player.VX),
		Shield:     w.Player.Shield,
		RapidFire:  w.Player.RapidFire,
		CooldownMs: math.Float64bits(w.Player.CooldownMs),

		FormationDir:  math.Float64bits(w.Formation.Dir),
		FormationStep: math.Float64bits(w.Formation.Step),
		FormationDrop: math.Float64bits(w.Formation.Drop),
		ShootInterval: math.Float64bits(w.ShootIntervalMs),
		RampElapsed:   math.Float64bits(w.RampElapsedMs),

		EnemyData:        enemyData,
		PlayerBulletData: projectileData(w.PlayerBullets),
		EnemyBulletData:  projectileData(w.EnemyBullets),
		PowerUpData:      powerUpData,
	}
}

func projectileData(bullets []Projectile) []uint64 {
	data := make([]uint64, 0, len(bullets)*2)
	for _, b := range bullets {
		data = append(data, math.Float64bits(b.Box.X), math.Float64bits(b.Box.Y))
	}
	return data
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Ticks
	h = h*31 + snap.Clock
	h = h*31 + uint64(snap.State) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ramps) //#nosec G115 -- hash computation

	h = h*31 + snap.PlayerX
	h = h*31 + snap.PlayerVX
	h = h*31 + boolBit(snap.Shield)
	h = h*31 + boolBit(snap.RapidFire)
	h = h*31 + snap.CooldownMs

	h = h*31 + snap.FormationDir
	h = h*31 + snap.FormationStep
	h = h*31 + snap.FormationDrop
	h = h*31 + snap.ShootInterval
	h = h*31 + snap.RampElapsed

	for _, data := range [][]uint64{snap.EnemyData, snap.PlayerBulletData, snap.EnemyBulletData, snap.PowerUpData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + v
		}
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
