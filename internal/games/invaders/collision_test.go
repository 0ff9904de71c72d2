package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func collisionWorld() *World {
	return &World{
		Width:  800,
		Height: 600,
		Player: Player{Box: core.NewRectF(375, 550, 50, 50)},
	}
}

func TestResolveCollisionsStrictOverlap(t *testing.T) {
	enemy := core.NewRectF(100, 100, 50, 50)

	tests := []struct {
		name   string
		bullet core.RectF
		want   bool
	}{
		{"inside", core.NewRectF(120, 120, 5, 10), true},
		{"adjacent below", core.NewRectF(120, 150, 5, 10), false},
		{"adjacent above", core.NewRectF(120, 90, 5, 10), false},
		{"adjacent left", core.NewRectF(95, 120, 5, 10), false},
		{"adjacent right", core.NewRectF(150, 120, 5, 10), false},
		{"one unit into bottom", core.NewRectF(120, 149, 5, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := collisionWorld()
			w.Enemies = []Enemy{{Box: enemy}}
			w.PlayerBullets = []Projectile{{Box: tt.bullet}}

			c := ResolveCollisions(w)
			if got := len(c.Kills) == 1; got != tt.want {
				t.Errorf("collision = %v, expected %v", got, tt.want)
			}
			if tt.want != (len(w.Enemies) == 0) {
				t.Errorf("enemy roster after resolve: %d", len(w.Enemies))
			}
		})
	}
}

func TestResolveCollisionsEachPairOnce(t *testing.T) {
	w := collisionWorld()
	// Two bullets inside the same enemy, and one bullet overlapping two enemies.
	w.Enemies = []Enemy{
		{Box: core.NewRectF(100, 100, 50, 50)},
		{Box: core.NewRectF(300, 100, 50, 50)},
		{Box: core.NewRectF(352, 100, 50, 50)},
	}
	w.PlayerBullets = []Projectile{
		{Box: core.NewRectF(110, 110, 5, 10)},
		{Box: core.NewRectF(130, 110, 5, 10)},
		{Box: core.NewRectF(348, 110, 6, 10)},
	}

	c := ResolveCollisions(w)

	if len(c.Kills) != 2 {
		t.Fatalf("expected 2 kills, got %d", len(c.Kills))
	}
	if c.Kills[0].X != 100 || c.Kills[1].X != 300 {
		t.Errorf("kills = %+v", c.Kills)
	}
	if len(w.Enemies) != 1 || w.Enemies[0].Box.X != 352 {
		t.Errorf("remaining enemies = %+v", w.Enemies)
	}
	if len(w.PlayerBullets) != 1 || w.PlayerBullets[0].Box.X != 130 {
		t.Errorf("remaining bullets = %+v", w.PlayerBullets)
	}
}

func TestResolveCollisionsPlayerHitsAndPickups(t *testing.T) {
	w := collisionWorld()
	w.EnemyBullets = []Projectile{
		{Box: core.NewRectF(400, 560, 5, 10)}, // hits
		{Box: core.NewRectF(380, 590, 5, 10)}, // hits
		{Box: core.NewRectF(100, 560, 5, 10)}, // misses
	}
	w.PowerUps = []PowerUp{
		{Box: core.NewRectF(390, 540, 20, 20), Type: PowerUpShield},
		{Box: core.NewRectF(10, 540, 20, 20), Type: PowerUpRapidFire},
	}

	c := ResolveCollisions(w)

	if c.PlayerHits != 2 {
		t.Errorf("PlayerHits = %d, expected 2", c.PlayerHits)
	}
	if len(w.EnemyBullets) != 1 || w.EnemyBullets[0].Box.X != 100 {
		t.Errorf("remaining enemy bullets = %+v", w.EnemyBullets)
	}
	if len(c.Pickups) != 1 || c.Pickups[0] != PowerUpShield {
		t.Errorf("pickups = %v", c.Pickups)
	}
	if len(w.PowerUps) != 1 || w.PowerUps[0].Type != PowerUpRapidFire {
		t.Errorf("remaining power-ups = %+v", w.PowerUps)
	}
}

func TestResolveCollisionsNothing(t *testing.T) {
	w := collisionWorld()
	c := ResolveCollisions(w)
	if len(c.Kills) != 0 || c.PlayerHits != 0 || len(c.Pickups) != 0 {
		t.Errorf("empty world produced collisions: %+v", c)
	}
}
