package invaders

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Game IDs used for score storage.
const (
	GameIDClassic = "invaders"
	GameIDEndless = "invaders_endless"
)

// State is the frame driver state.
type State int

const (
	StateRunning State = iota
	StateOver
)

// String returns the name of the state.
func (s State) String() string {
	if s == StateOver {
		return "over"
	}
	return "running"
}

// Event is a named notification for collaborators such as audio.
// Events never affect the simulation.
type Event int

const (
	EventShoot Event = iota
	EventExplosion
	EventGameOver
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventShoot:
		return "shoot"
	case EventExplosion:
		return "explosion"
	case EventGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// EndReason tells why a session ended.
type EndReason int

const (
	EndNone     EndReason = iota
	EndShotDown           // Unshielded player hit by an enemy bullet
	EndInvaded            // An enemy reached the bottom of the viewport
)

// String returns the name of the end reason.
func (r EndReason) String() string {
	switch r {
	case EndShotDown:
		return "shot_down"
	case EndInvaded:
		return "invaded"
	default:
		return "none"
	}
}

// Outcome summarises a finished session.
type Outcome struct {
	Score     int
	HighScore int // Best score including this session
	NewRecord bool
	Reason    EndReason
	Err       error // Persistence failure, if any
}

// ScoreStore persists finished runs. *storage.Store satisfies it.
type ScoreStore interface {
	HighScore(gameID string) (int, error)
	SaveRun(run storage.Run) (int64, error)
}

// Hooks are side-effecting callbacks invoked by the frame driver.
// Any of them may be nil.
type Hooks struct {
	Render   func(w *World) // Once per tick, read-only access
	Event    func(e Event)
	GameOver func(o Outcome) // Once, when the session ends
}

// Option configures a Session.
type Option func(*settings)

type settings struct {
	hooks   Hooks
	store   ScoreStore
	logger  *log.Logger
	endless bool
}

func (st settings) gameID() string {
	if st.endless {
		return GameIDEndless
	}
	return GameIDClassic
}

// WithHooks attaches render, event and game over callbacks.
func WithHooks(h Hooks) Option {
	return func(st *settings) { st.hooks = h }
}

// WithStore attaches score persistence.
func WithStore(store ScoreStore) Option {
	return func(st *settings) { st.store = store }
}

// WithLogger sets the logger used for session lifecycle messages.
func WithLogger(logger *log.Logger) Option {
	return func(st *settings) { st.logger = logger }
}

// WithEndless spawns a fresh formation whenever the current one is cleared.
func WithEndless(endless bool) Option {
	return func(st *settings) { st.endless = endless }
}

// Session owns one run of the simulation and drives it tick by tick.
// It is not safe for concurrent use.
type Session struct {
	cfg        config.InvadersConfig
	settings   settings
	world      World
	state      State
	rng        *rand.Rand
	spawner    *Spawner
	difficulty *config.DifficultyManager
	effects    effectTimers
	layout     GridLayout

	highScore   int // Persisted best at session start
	outcome     Outcome
	lastFrameMs float64
	framed      bool
	startedAt   time.Time
}

// NewSession creates a running session. The same config, seed and sequence of
// calls always produce the same world.
func NewSession(cfg config.InvadersConfig, seed int64, opts ...Option) *Session {
	st := settings{}
	for _, opt := range opts {
		opt(&st)
	}
	if st.logger == nil {
		st.logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:        cfg,
		settings:   st,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		layout:     LayoutFromConfig(cfg.Enemies),
	}
	s.reset(seed)
	return s
}

// reset starts a new run with the given seed.
func (s *Session) reset(seed int64) {
	cfg := s.cfg
	s.rng = rand.New(rand.NewSource(seed))
	s.spawner = NewSpawner(s.rng, cfg.PowerUps)
	s.state = StateRunning
	s.effects = effectTimers{}
	s.outcome = Outcome{}
	s.framed = false
	s.lastFrameMs = 0
	s.startedAt = time.Now()

	s.world = World{
		Width:  cfg.Viewport.Width,
		Height: cfg.Viewport.Height,
		Player: Player{
			Box: core.NewRectF(
				cfg.Viewport.Width/2-cfg.Player.Width/2,
				cfg.Viewport.Height-cfg.Player.Height-cfg.Player.BottomMargin,
				cfg.Player.Width,
				cfg.Player.Height,
			),
			CooldownMs: cfg.Player.ShotCooldownMs,
		},
		Formation:       Formation{Dir: 1, Step: cfg.Enemies.Step},
		ShootIntervalMs: cfg.Enemies.ShootIntervalMs,
		Wave:            1,
	}
	s.world.Enemies = CreateEnemyGrid(s.layout, s.world.ShootIntervalMs, s.rng)

	s.highScore = 0
	if s.settings.store != nil {
		best, err := s.settings.store.HighScore(s.settings.gameID())
		if err != nil {
			s.settings.logger.Warn("could not read high score", "game", s.settings.gameID(), "error", err)
		} else {
			s.highScore = best
		}
	}

	s.settings.logger.Info("session started",
		"game", s.settings.gameID(),
		"seed", seed,
		"enemies", len(s.world.Enemies),
		"high_score", s.highScore)
}

// Reset discards the current run and starts a new one.
func (s *Session) Reset(seed int64) {
	if s == nil {
		return
	}
	s.reset(seed)
}

// Frame advances the simulation to the host timestamp nowMs. The first call
// only establishes the time base and steps with a zero delta.
func (s *Session) Frame(nowMs float64) {
	if s == nil || s.state != StateRunning {
		return
	}
	delta := 0.0
	if s.framed {
		delta = nowMs - s.lastFrameMs
	}
	if delta < 0 {
		delta = 0
	}
	s.framed = true
	s.lastFrameMs = nowMs
	s.Step(delta)
}

// Step runs one tick of deltaMs simulated milliseconds. It is a no-op once
// the session is over.
func (s *Session) Step(deltaMs float64) {
	if s == nil || s.state != StateRunning {
		return
	}
	w := &s.world
	w.Ticks++
	w.ClockMs += deltaMs

	s.expireEffects()

	w.Player = AdvancePlayer(w.Player, w.Width)
	w.Formation = AdvanceEnemies(w.Enemies, w.Formation, EnemyParams{
		DeltaMs:         deltaMs,
		ShootIntervalMs: w.ShootIntervalMs,
		ViewportWidth:   w.Width,
		Descent:         s.cfg.Enemies.Descent,
	}, s.spawnEnemyBullet)
	w.PlayerBullets, w.EnemyBullets = AdvanceProjectiles(w.PlayerBullets, w.EnemyBullets, s.cfg.Projectiles.Speed, w.Height)
	w.PowerUps = AdvancePowerUps(w.PowerUps, s.cfg.PowerUps.FallSpeed, w.Height)

	shotDown := s.applyCollisions(ResolveCollisions(w))

	s.advanceDifficulty(deltaMs)

	if s.settings.endless && len(w.Enemies) == 0 {
		s.nextWave()
	}

	switch {
	case shotDown:
		s.finish(EndShotDown)
	case s.invaded():
		s.finish(EndInvaded)
	}

	if s.settings.hooks.Render != nil {
		s.settings.hooks.Render(w)
	}
}

// applyCollisions applies the effects of one detection pass and reports
// whether the player was shot down.
func (s *Session) applyCollisions(c Collisions) bool {
	w := &s.world

	for _, k := range c.Kills {
		w.Score += s.cfg.Scoring.EnemyPoints
		w.PowerUps, _ = s.spawner.MaybeSpawnPowerUp(w.PowerUps, k.X, k.Y)
		s.emit(EventExplosion)
	}

	shotDown := false
	for range c.PlayerHits {
		if w.Player.Shield {
			w.Player.Shield = false
			continue
		}
		shotDown = true
	}

	for _, kind := range c.Pickups {
		s.applyPowerUp(kind)
	}
	return shotDown
}

// advanceDifficulty accumulates session time and applies a ramp once the
// interval is reached.
func (s *Session) advanceDifficulty(deltaMs float64) {
	w := &s.world
	w.RampElapsedMs += deltaMs
	if !s.difficulty.Due(w.RampElapsedMs) {
		return
	}
	w.Formation.Step = s.difficulty.NextStep(w.Formation.Step)
	w.ShootIntervalMs = s.difficulty.NextShootInterval(w.ShootIntervalMs)
	w.RampElapsedMs = 0
	w.Ramps++
	s.settings.logger.Debug("difficulty ramp",
		"ramps", w.Ramps,
		"step", w.Formation.Step,
		"shoot_interval_ms", w.ShootIntervalMs)
}

// nextWave replaces a cleared formation with a new one. Ramped step and
// shoot interval carry over.
func (s *Session) nextWave() {
	w := &s.world
	w.Wave++
	w.Enemies = CreateEnemyGrid(s.layout, w.ShootIntervalMs, s.rng)
	w.Formation.Dir = 1
	w.Formation.Drop = 0
	s.settings.logger.Debug("new wave", "wave", w.Wave)
}

// invaded reports whether any enemy's lower edge passed the viewport bottom.
func (s *Session) invaded() bool {
	for _, e := range s.world.Enemies {
		if e.Box.Bottom() > s.world.Height {
			return true
		}
	}
	return false
}

// finish moves the session to StateOver, persists the run and notifies
// collaborators. It runs at most once per run.
func (s *Session) finish(reason EndReason) {
	if s.state == StateOver {
		return
	}
	s.state = StateOver

	w := &s.world
	out := Outcome{
		Score:     w.Score,
		HighScore: max(s.highScore, w.Score),
		NewRecord: w.Score > s.highScore,
		Reason:    reason,
	}

	if s.settings.store != nil && w.Score > 0 {
		_, err := s.settings.store.SaveRun(storage.Run{
			GameID:     s.settings.gameID(),
			Score:      w.Score,
			DurationMs: int64(w.ClockMs),
			Wave:       w.Wave,
			Ramps:      w.Ramps,
			EndReason:  reason.String(),
		})
		if err != nil {
			out.Err = err
			s.settings.logger.Warn("could not save score", "game", s.settings.gameID(), "error", err)
		}
	}
	s.outcome = out

	s.settings.logger.Info("game over",
		"reason", reason,
		"score", out.Score,
		"high_score", out.HighScore,
		"new_record", out.NewRecord,
		"wave", w.Wave,
		"elapsed", time.Since(s.startedAt).Round(time.Second))

	s.emit(EventGameOver)
	if s.settings.hooks.GameOver != nil {
		s.settings.hooks.GameOver(out)
	}
}

func (s *Session) emit(e Event) {
	if s.settings.hooks.Event != nil {
		s.settings.hooks.Event(e)
	}
}

// spawnEnemyBullet fires an enemy bullet centred on x with its top at y.
func (s *Session) spawnEnemyBullet(x, y float64) {
	pc := s.cfg.Projectiles
	s.world.EnemyBullets = append(s.world.EnemyBullets, Projectile{
		Box: core.NewRectF(x-pc.Width/2, y, pc.Width, pc.Height),
	})
}

// SetPlayerVelocity sets the ship's horizontal velocity in world units per
// tick. It is a no-op on a nil or finished session.
func (s *Session) SetPlayerVelocity(vx float64) {
	if s == nil || s.state != StateRunning {
		return
	}
	s.world.Player.VX = vx
}

// Steer sets the velocity from a direction: negative moves left, positive
// moves right, zero stops.
func (s *Session) Steer(dir int) {
	if s == nil {
		return
	}
	switch {
	case dir < 0:
		s.SetPlayerVelocity(-s.cfg.Player.Speed)
	case dir > 0:
		s.SetPlayerVelocity(s.cfg.Player.Speed)
	default:
		s.SetPlayerVelocity(0)
	}
}

// TryFire fires a player bullet if the cooldown since the previous shot has
// elapsed at nowMs. The first shot of a run is always allowed. It reports
// whether a bullet was fired.
func (s *Session) TryFire(nowMs float64) bool {
	if s == nil || s.state != StateRunning {
		return false
	}
	p := &s.world.Player
	if p.hasFired && nowMs-p.LastShotMs <= p.CooldownMs {
		return false
	}

	pc := s.cfg.Projectiles
	s.world.PlayerBullets = append(s.world.PlayerBullets, Projectile{
		Box: core.NewRectF(p.Box.CenterX()-pc.Width/2, p.Box.Y-pc.Height, pc.Width, pc.Height),
	})
	p.LastShotMs = nowMs
	p.hasFired = true
	s.emit(EventShoot)
	return true
}

// World returns the simulation state. Callers must treat it as read-only.
func (s *Session) World() *World {
	return &s.world
}

// State returns the frame driver state.
func (s *Session) State() State {
	return s.state
}

// Outcome returns the summary of a finished session. It is the zero value
// while the session is running.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// HighScore returns the best known score, including the current run.
func (s *Session) HighScore() int {
	return max(s.highScore, s.world.Score)
}

// Clock returns the session time in milliseconds.
func (s *Session) Clock() float64 {
	return s.world.ClockMs
}

// GameID returns the identifier scores are stored under.
func (s *Session) GameID() string {
	return s.settings.gameID()
}
