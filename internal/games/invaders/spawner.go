package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// GridLayout describes where the formation is placed at wave start.
type GridLayout struct {
	Rows    int
	Cols    int
	CellW   float64
	CellH   float64
	Padding float64
	OffsetX float64
	OffsetY float64
}

// LayoutFromConfig builds a grid layout from the enemies config section.
func LayoutFromConfig(cfg config.EnemiesConfig) GridLayout {
	return GridLayout{
		Rows:    cfg.Rows,
		Cols:    cfg.Cols,
		CellW:   cfg.Width,
		CellH:   cfg.Height,
		Padding: cfg.Padding,
		OffsetX: cfg.OffsetLeft,
		OffsetY: cfg.OffsetTop,
	}
}

// CreateEnemyGrid lays out Rows*Cols enemies in row-major order. Shoot timers
// start at a random point of [0, shootIntervalMs) so shooters do not fire in
// lockstep. A non-positive row or column count yields an empty grid.
func CreateEnemyGrid(layout GridLayout, shootIntervalMs float64, rng *rand.Rand) []Enemy {
	if layout.Rows <= 0 || layout.Cols <= 0 {
		return nil
	}

	enemies := make([]Enemy, 0, layout.Rows*layout.Cols)
	for row := range layout.Rows {
		for col := range layout.Cols {
			x := layout.OffsetX + float64(col)*(layout.CellW+layout.Padding)
			y := layout.OffsetY + float64(row)*(layout.CellH+layout.Padding)
			enemies = append(enemies, Enemy{
				Box:          core.NewRectF(x, y, layout.CellW, layout.CellH),
				Kind:         ArchetypeForRow(row),
				ShootTimerMs: rng.Float64() * shootIntervalMs,
			})
		}
	}
	return enemies
}

// Spawner rolls power-up drops for destroyed enemies.
type Spawner struct {
	rng    *rand.Rand
	chance float64
	width  float64
	height float64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg config.PowerUpConfig) *Spawner {
	return &Spawner{
		rng:    rng,
		chance: cfg.SpawnChance,
		width:  cfg.Width,
		height: cfg.Height,
	}
}

// MaybeSpawnPowerUp rolls once and, on success, appends exactly one power-up
// of a uniformly chosen type at (x, y). It reports whether a drop happened.
func (s *Spawner) MaybeSpawnPowerUp(powerUps []PowerUp, x, y float64) ([]PowerUp, bool) {
	if s.rng.Float64() >= s.chance {
		return powerUps, false
	}

	kind := PowerUpShield
	if s.rng.Intn(2) == 0 {
		kind = PowerUpRapidFire
	}

	return append(powerUps, PowerUp{
		Box:  core.NewRectF(x, y, s.width, s.height),
		Type: kind,
	}), true
}
