package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	resets   int
	seeds    []int64
	steps    []core.InputFrame
	state    core.GameState
	resized  [2]int
	resizes  int
	rendered int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.seeds = append(g.seeds, cfg.Seed)
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	g.steps = append(g.steps, frame)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(screen *core.Screen) {
	g.rendered++
	screen.Clear()
	screen.DrawText(0, 0, "fake", core.ColorDefault)
}

func (g *fakeGame) State() core.GameState { return g.state }

type resizableGame struct{ fakeGame }

func (g *resizableGame) Resize(w, h int) {
	g.resizes++
	g.resized = [2]int{w, h}
}

func newTestModel(g Game) Model {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return NewModel(g, cfg, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelKeysReachNextTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := update(t, m, TickMsg{})

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(g.steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(g.steps))
	}
	if !g.steps[0].Has(core.ActionLeft) || !g.steps[0].Has(core.ActionFire) {
		t.Errorf("step input = %v", g.steps[0].Actions)
	}

	// Input is cleared after the tick
	update(t, m, TickMsg{})
	if len(g.steps[1].Actions) != 0 {
		t.Errorf("second tick should have no input, got %v", g.steps[1].Actions)
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{})
	if g.steps[0].Has(core.ActionRestart) {
		t.Error("restart should be ignored while playing")
	}

	g.state.GameOver = true
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, runeKey('r'))
	update(t, m, TickMsg{})
	if g.resets != 1 {
		t.Fatalf("restart after game over should reset the game, resets=%d", g.resets)
	}
	if g.seeds[0] == 1 {
		t.Error("restart should use a fresh seed")
	}
	if len(g.steps) != 2 {
		t.Errorf("the restart tick should not also step the game, steps=%d", len(g.steps))
	}
}

func TestModelQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), runeKey('b'), {Type: tea.KeyCtrlC}} {
		m := newTestModel(&fakeGame{})
		m, cmd := update(t, m, msg)
		if cmd == nil {
			t.Errorf("%q should quit", msg.String())
		}
		if m.View() != "" {
			t.Errorf("%q: view should be empty after quitting", msg.String())
		}
	}
}

func TestModelResize(t *testing.T) {
	plain := &fakeGame{}
	m := newTestModel(plain)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if plain.resets != 1 {
		t.Errorf("plain game should restart on resize, resets=%d", plain.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}

	resizable := &resizableGame{}
	m = newTestModel(resizable)
	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if resizable.resets != 0 {
		t.Error("resizable game should keep its session")
	}
	if resizable.resized != [2]int{120, 40} {
		t.Errorf("resized to %v", resizable.resized)
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	if v := m.View(); len(v) == 0 {
		t.Error("view should not be empty")
	}
	if g.rendered != 1 {
		t.Errorf("view should render once, got %d", g.rendered)
	}
}
