package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestAdvancePlayer(t *testing.T) {
	tests := []struct {
		name  string
		x, vx float64
		wantX float64
	}{
		{"still", 100, 0, 100},
		{"right", 100, 5, 105},
		{"left", 100, -5, 95},
		{"clamp left", 3, -5, 0},
		{"clamp right", 748, 5, 750},
		{"at right edge", 750, 5, 750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Player{Box: core.NewRectF(tt.x, 550, 50, 50), VX: tt.vx}
			got := AdvancePlayer(p, 800)
			if got.Box.X != tt.wantX {
				t.Errorf("X = %v, expected %v", got.Box.X, tt.wantX)
			}
			if got.Box.X < 0 || got.Box.Right() > 800 {
				t.Errorf("player left the viewport: %+v", got.Box)
			}
		})
	}
}

func enemyParams() EnemyParams {
	return EnemyParams{DeltaMs: 16, ShootIntervalMs: 2000, ViewportWidth: 800, Descent: 10}
}

func TestAdvanceEnemiesSpeedMultiplier(t *testing.T) {
	enemies := []Enemy{
		{Box: core.NewRectF(100, 100, 50, 50), Kind: ArchetypeNormal},
		{Box: core.NewRectF(200, 100, 50, 50), Kind: ArchetypeFast},
		{Box: core.NewRectF(300, 100, 50, 50), Kind: ArchetypeShooter},
	}
	f := AdvanceEnemies(enemies, Formation{Dir: 1, Step: 2}, enemyParams(), nil)

	want := []float64{104, 206, 304}
	for i, w := range want {
		if enemies[i].Box.X != w || enemies[i].Box.Y != 100 {
			t.Errorf("enemy %d at (%v, %v), expected (%v, 100)", i, enemies[i].Box.X, enemies[i].Box.Y, w)
		}
	}
	if f.Dir != 1 || f.Drop != 0 || f.Step != 2 {
		t.Errorf("formation = %+v, expected unchanged", f)
	}
}

func TestAdvanceEnemiesBounceDropsOnNextTick(t *testing.T) {
	// Right edge at 746+50=796; one normal move of 4 takes it to 800, the next to 804.
	enemies := []Enemy{{Box: core.NewRectF(746, 100, 50, 50), Kind: ArchetypeNormal}}
	f := Formation{Dir: 1, Step: 2}

	f = AdvanceEnemies(enemies, f, enemyParams(), nil)
	if enemies[0].Box.X != 750 || f.Dir != 1 || f.Drop != 0 {
		t.Fatalf("touching the edge must not bounce: x=%v formation=%+v", enemies[0].Box.X, f)
	}

	f = AdvanceEnemies(enemies, f, enemyParams(), nil)
	if enemies[0].Box.X != 754 || enemies[0].Box.Y != 100 {
		t.Fatalf("detection tick must not move vertically: %+v", enemies[0].Box)
	}
	if f.Dir != -1 || f.Drop != 10 {
		t.Fatalf("crossing the edge should reverse and arm the drop, got %+v", f)
	}

	f = AdvanceEnemies(enemies, f, enemyParams(), nil)
	if enemies[0].Box.X != 750 || enemies[0].Box.Y != 110 {
		t.Errorf("tick after bounce: enemy at (%v, %v), expected (750, 110)", enemies[0].Box.X, enemies[0].Box.Y)
	}
	if f.Dir != -1 || f.Drop != 0 {
		t.Errorf("drop should apply once, formation = %+v", f)
	}
}

func TestAdvanceEnemiesBounceLeftEdge(t *testing.T) {
	enemies := []Enemy{
		{Box: core.NewRectF(2, 100, 50, 50), Kind: ArchetypeFast},
		{Box: core.NewRectF(400, 100, 50, 50), Kind: ArchetypeNormal},
	}
	f := AdvanceEnemies(enemies, Formation{Dir: -1, Step: 2}, enemyParams(), nil)
	if f.Dir != 1 || f.Drop != 10 {
		t.Errorf("any enemy past the left edge should bounce the formation, got %+v", f)
	}
}

func TestAdvanceEnemiesShooting(t *testing.T) {
	enemies := []Enemy{
		{Box: core.NewRectF(100, 100, 50, 50), Kind: ArchetypeShooter, ShootTimerMs: 1990},
		{Box: core.NewRectF(200, 100, 50, 50), Kind: ArchetypeShooter, ShootTimerMs: 1984},
		{Box: core.NewRectF(300, 100, 50, 50), Kind: ArchetypeNormal, ShootTimerMs: 5000},
	}

	type shot struct{ x, y float64 }
	var shots []shot
	spawn := func(x, y float64) { shots = append(shots, shot{x, y}) }

	AdvanceEnemies(enemies, Formation{Dir: 1, Step: 2}, enemyParams(), spawn)

	if len(shots) != 1 {
		t.Fatalf("expected 1 shot, got %d", len(shots))
	}
	// Fired after moving: centre of [104, 154], bottom at 150
	if shots[0] != (shot{129, 150}) {
		t.Errorf("shot at %+v, expected {129 150}", shots[0])
	}
	if enemies[0].ShootTimerMs != 0 {
		t.Errorf("shooter timer should reset, got %v", enemies[0].ShootTimerMs)
	}
	// 1984+16 = 2000 does not exceed the interval
	if enemies[1].ShootTimerMs != 2000 {
		t.Errorf("timer at the threshold should keep accumulating, got %v", enemies[1].ShootTimerMs)
	}
	if enemies[2].ShootTimerMs != 5000 {
		t.Errorf("non-shooter timer must not advance, got %v", enemies[2].ShootTimerMs)
	}
}

func TestAdvanceProjectiles(t *testing.T) {
	player := []Projectile{
		{Box: core.NewRectF(10, 100, 5, 10)},
		{Box: core.NewRectF(20, 3, 5, 10)}, // leaves through the top
	}
	enemy := []Projectile{
		{Box: core.NewRectF(30, 100, 5, 10)},
		{Box: core.NewRectF(40, 597, 5, 10)}, // leaves through the bottom
	}

	player, enemy = AdvanceProjectiles(player, enemy, 5, 600)

	if len(player) != 1 || player[0].Box.Y != 95 {
		t.Errorf("player bullets = %+v", player)
	}
	if len(enemy) != 1 || enemy[0].Box.Y != 105 {
		t.Errorf("enemy bullets = %+v", enemy)
	}
}

func TestAdvancePowerUps(t *testing.T) {
	powerUps := []PowerUp{
		{Box: core.NewRectF(10, 100, 20, 20), Type: PowerUpShield},
		{Box: core.NewRectF(10, 599, 20, 20), Type: PowerUpRapidFire},
	}
	powerUps = AdvancePowerUps(powerUps, 2, 600)

	if len(powerUps) != 1 {
		t.Fatalf("expected 1 power-up left, got %d", len(powerUps))
	}
	if powerUps[0].Box.Y != 102 || powerUps[0].Type != PowerUpShield {
		t.Errorf("remaining power-up = %+v", powerUps[0])
	}
}
