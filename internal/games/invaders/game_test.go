package invaders

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := New(config.DefaultInvadersConfig(), opts...)
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	g.Reset(cfg)
	return g
}

// quietGame returns a game whose formation has been removed, so no enemy
// fire can end it.
func quietGame(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t)
	g.Session().World().Enemies = nil
	return g
}

func inputOf(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameIdentity(t *testing.T) {
	classic := New(config.DefaultInvadersConfig())
	if classic.ID() != "invaders" || classic.Title() != "Invaders" {
		t.Errorf("classic = %q / %q", classic.ID(), classic.Title())
	}
	endless := New(config.DefaultInvadersConfig(), WithEndless(true))
	if endless.ID() != "invaders_endless" || endless.Title() != "Invaders (Endless)" {
		t.Errorf("endless = %q / %q", endless.ID(), endless.Title())
	}
}

func TestGameStepAdvancesClock(t *testing.T) {
	g := quietGame(t)
	for range 60 {
		g.Step(core.NewInputFrame())
	}
	if clock := g.Session().Clock(); clock < 999 || clock > 1001 {
		t.Errorf("60 ticks at 60fps should simulate one second, got %vms", clock)
	}
}

func TestGameFire(t *testing.T) {
	g := quietGame(t)
	g.Step(inputOf(core.ActionFire))

	if n := len(g.Session().World().PlayerBullets); n != 1 {
		t.Fatalf("expected 1 bullet after firing, got %d", n)
	}

	// Still inside the 500ms cooldown
	g.Step(inputOf(core.ActionFire))
	if n := len(g.Session().World().PlayerBullets); n != 1 {
		t.Errorf("cooldown should block the second shot, got %d bullets", n)
	}
}

func TestGameSteeringLatches(t *testing.T) {
	g := quietGame(t)
	start := g.Session().World().Player.Box.X

	g.Step(inputOf(core.ActionLeft))
	for range 4 {
		g.Step(core.NewInputFrame())
	}
	moved := g.Session().World().Player.Box.X
	if moved != start-25 {
		t.Errorf("player should keep moving left after one press: x=%v, expected %v", moved, start-25)
	}

	g.Step(inputOf(core.ActionStop))
	g.Step(core.NewInputFrame())
	if g.Session().World().Player.Box.X != moved {
		t.Error("stop should halt the ship")
	}
}

func TestGamePause(t *testing.T) {
	g := quietGame(t)
	g.Step(core.NewInputFrame())

	g.Step(inputOf(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	clock := g.Session().Clock()
	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if g.Session().Clock() != clock {
		t.Error("paused game should not advance")
	}

	g.Step(inputOf(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	w := g.Session().World()
	w.Enemies = []Enemy{{Box: core.NewRectF(100, 560, 50, 50), Kind: ArchetypeNormal}}
	g.Step(core.NewInputFrame())

	if !g.State().GameOver {
		t.Fatal("setup: game should be over")
	}

	// Restarting is the host's job, it picks a fresh seed and calls Reset
	g.Step(inputOf(core.ActionRestart))
	if !g.State().GameOver {
		t.Fatal("Step should not restart a finished game")
	}

	cfg := core.DefaultConfig()
	cfg.Seed = 7
	g.Reset(cfg)
	if g.State().GameOver {
		t.Error("Reset should start a new session")
	}
	if len(g.Session().World().Enemies) != 50 {
		t.Errorf("new session should have a full grid, got %d", len(g.Session().World().Enemies))
	}
}

func TestGameRenderHUD(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row missing score: %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "High Score: 0") {
		t.Errorf("HUD row missing high score: %q", screen.Row(0))
	}
	if screen.Get(0, 1) != SeparatorChar {
		t.Errorf("row 1 should be a separator, got %q", screen.Get(0, 1))
	}

	foundPlayer := false
	for x := range screen.Width() {
		if c := screen.GetCell(x, screen.Height()-1); c.Rune == PlayerChar && c.Color == core.ColorWhite {
			foundPlayer = true
		}
	}
	if !foundPlayer {
		t.Errorf("player not drawn on the bottom row: %q", screen.Row(screen.Height()-1))
	}

	foundEnemy := false
	for y := hudRows; y < screen.Height(); y++ {
		if strings.ContainsRune(screen.Row(y), enemyGlyphs[ArchetypeFast]) {
			foundEnemy = true
		}
	}
	if !foundEnemy {
		t.Error("fast enemies of row 0 should be drawn")
	}
}

func TestGameRenderShieldColour(t *testing.T) {
	g := newTestGame(t)
	g.Session().applyPowerUp(PowerUpShield)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	for x := range screen.Width() {
		if c := screen.GetCell(x, screen.Height()-1); c.Rune == PlayerChar && c.Color != core.ColorCyan {
			t.Fatalf("shielded player should be cyan, got %v", c.Color)
		}
	}
	if !strings.Contains(screen.Row(0), "SHIELD 5s") {
		t.Errorf("HUD should show the shield timer: %q", screen.Row(0))
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(t)
	g.Session().World().Enemies = []Enemy{{Box: core.NewRectF(100, 560, 50, 50), Kind: ArchetypeNormal}}
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Errorf("game over overlay missing:\n%s", screen.String())
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	g := New(config.DefaultInvadersConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	g.Step(inputOf(core.ActionFire))
	if g.Session().Clock() != 0 {
		t.Error("game should not advance when the window is too small")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small message:\n%s", screen.String())
	}
}

func TestGameResizeKeepsSession(t *testing.T) {
	g := quietGame(t)
	g.Step(core.NewInputFrame())
	session := g.Session()

	g.Resize(30, 10)
	clock := session.Clock()
	g.Step(core.NewInputFrame())
	if session.Clock() != clock {
		t.Error("game should hold while the window is too small")
	}

	g.Resize(100, 30)
	g.Step(core.NewInputFrame())
	if g.Session() != session {
		t.Fatal("resize should not start a new session")
	}
	if session.Clock() <= clock {
		t.Error("game should resume once the window is large enough")
	}
}

func TestToCells(t *testing.T) {
	field := core.NewRect(0, 2, 80, 20)

	tests := []struct {
		name string
		r    core.RectF
		want core.Rect
	}{
		{"enemy", core.NewRectF(55, 65, 50, 60), core.NewRect(5, 4, 6, 3)},
		{"bullet keeps one cell", core.NewRectF(101, 301, 5, 10), core.NewRect(10, 12, 1, 1)},
		{"bottom right", core.NewRectF(745, 575, 50, 20), core.NewRect(74, 21, 6, 1)},
		{"partly off top", core.NewRectF(101, -5, 5, 10), core.NewRect(10, 2, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toCells(tt.r, field, 800, 600); got != tt.want {
				t.Errorf("toCells(%+v) = %+v, expected %+v", tt.r, got, tt.want)
			}
		})
	}
}
