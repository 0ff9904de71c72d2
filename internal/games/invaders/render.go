package invaders

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar       = '▀'
	PlayerBulletChar = '|'
	EnemyBulletChar  = '!'
	SeparatorChar    = '─'
)

// enemyGlyphs maps archetypes to their fill rune.
var enemyGlyphs = map[ArchetypeID]rune{
	ArchetypeNormal:  '█',
	ArchetypeFast:    '▒',
	ArchetypeShooter: '▓',
}

// powerUpGlyphs maps power-up types to their label.
var powerUpGlyphs = map[PowerUpType]rune{
	PowerUpRapidFire: 'R',
	PowerUpShield:    'S',
}

// hudRows is the number of rows above the playfield.
const hudRows = 2

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorDefault)
		return
	}
	if g.session == nil {
		return
	}

	w := g.session.World()
	field := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)

	g.renderHUD(dst)

	for _, p := range w.PowerUps {
		dst.DrawRect(toCells(p.Box, field, w.Width, w.Height), powerUpGlyphs[p.Type], p.Type.Color())
	}
	for _, e := range w.Enemies {
		dst.DrawRect(toCells(e.Box, field, w.Width, w.Height), enemyGlyphs[e.Kind], e.Kind.Archetype().Color)
	}
	for _, b := range w.PlayerBullets {
		dst.DrawRect(toCells(b.Box, field, w.Width, w.Height), PlayerBulletChar, core.ColorYellow)
	}
	for _, b := range w.EnemyBullets {
		dst.DrawRect(toCells(b.Box, field, w.Width, w.Height), EnemyBulletChar, core.ColorOrange)
	}

	playerColor := core.ColorWhite
	if w.Player.Shield {
		playerColor = core.ColorCyan
	}
	dst.DrawRect(toCells(w.Player.Box, field, w.Width, w.Height), PlayerChar, playerColor)

	g.renderOverlay(dst)
}

// renderHUD draws score, active effects and high score, then a separator.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	w := s.World()

	scoreText := fmt.Sprintf("Score: %d", w.Score)
	dst.DrawText(1, 0, scoreText, core.ColorWhite)

	if effects := g.effectsText(); effects != "" {
		dst.DrawTextCentered(0, effects, core.ColorPurple)
	} else if g.st.endless {
		dst.DrawTextCentered(0, fmt.Sprintf("Wave %d", w.Wave), core.ColorGray)
	}

	highText := fmt.Sprintf("High Score: %d", s.HighScore())
	dst.DrawText(dst.Width()-len(highText)-1, 0, highText, core.ColorYellow)

	dst.DrawHLine(0, 1, dst.Width(), SeparatorChar, core.ColorGray)
}

// effectsText lists active timed effects with whole seconds remaining.
func (g *Game) effectsText() string {
	var parts []string
	if ms := g.session.EffectRemainingMs(PowerUpRapidFire); ms > 0 {
		parts = append(parts, fmt.Sprintf("RAPID %ds", int(math.Ceil(ms/1000))))
	}
	if ms := g.session.EffectRemainingMs(PowerUpShield); ms > 0 {
		parts = append(parts, fmt.Sprintf("SHIELD %ds", int(math.Ceil(ms/1000))))
	}
	return strings.Join(parts, "  ")
}

// renderOverlay draws pause and game over messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.session.State() == StateOver:
		out := g.session.Outcome()
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", out.Score)
		title := "GAME OVER"
		if out.NewRecord {
			title = "GAME OVER - NEW HIGH SCORE!"
		}
		drawCenteredBox(dst, title, subtitle, core.ColorRed)
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string, color core.Color) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)

	dst.DrawText(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, color)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle, core.ColorDefault)
}

// toCells maps a world rectangle onto the cells of field. Every entity covers
// at least one cell so small bullets stay visible.
func toCells(r core.RectF, field core.Rect, worldW, worldH float64) core.Rect {
	sx := float64(field.W) / worldW
	sy := float64(field.H) / worldH

	x0 := int(math.Floor(core.ClampF(r.X, 0, worldW) * sx))
	y0 := int(math.Floor(core.ClampF(r.Y, 0, worldH) * sy))
	x1 := int(math.Ceil(core.ClampF(r.Right(), 0, worldW) * sx))
	y1 := int(math.Ceil(core.ClampF(r.Bottom(), 0, worldH) * sy))

	x0 = core.Clamp(x0, 0, field.W-1)
	y0 = core.Clamp(y0, 0, field.H-1)
	return core.NewRect(field.X+x0, field.Y+y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}
