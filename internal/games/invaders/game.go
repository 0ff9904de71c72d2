package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Minimum terminal size the playfield can be drawn in.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Game adapts a Session to the fixed-tick terminal platform. Each Step
// advances the session by one tick of RuntimeConfig.TickMillis.
type Game struct {
	cfg     config.InvadersConfig
	opts    []Option
	st      settings
	runtime core.RuntimeConfig
	session *Session

	paused         bool
	screenTooSmall bool
}

// New creates a game for the given config. Options are passed to every
// session the game starts.
func New(cfg config.InvadersConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg, opts: opts}
	for _, opt := range opts {
		opt(&g.st)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.st.gameID()
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.st.endless {
		return "Invaders (Endless)"
	}
	return "Invaders"
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
	g.session = NewSession(g.cfg, runtime.Seed, g.opts...)
}

// Resize follows a terminal resize. The world keeps its own units, so the
// session carries on.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < MinScreenW || height < MinScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.session.State() == StateRunning {
		g.paused = !g.paused
	}

	if g.paused || g.session.State() == StateOver {
		return core.StepResult{State: g.State()}
	}

	// Terminals report key presses only, so steering latches until the
	// opposite direction or stop is pressed.
	switch {
	case in.Has(core.ActionStop):
		g.session.Steer(0)
	case in.Has(core.ActionLeft):
		g.session.Steer(-1)
	case in.Has(core.ActionRight):
		g.session.Steer(1)
	}

	if in.Has(core.ActionFire) {
		g.session.TryFire(g.session.Clock())
	}

	g.session.Step(g.runtime.TickMillis())

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.session.World().Score,
		HighScore: g.session.HighScore(),
		GameOver:  g.session.State() == StateOver,
		Paused:    g.paused,
	}
}

// Session returns the running session, or nil before the first Reset.
func (g *Game) Session() *Session {
	return g.session
}
