package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func pressMenu(t *testing.T, m MenuModel, msgs ...tea.Msg) MenuModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(MenuModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestMenuSelectsMode(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want MenuResult
	}{
		{"classic", []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}}, MenuResult{}},
		{"endless", []tea.Msg{tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter}}, MenuResult{Endless: true}},
		{"cursor stops at the end", []tea.Msg{
			tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown},
			tea.KeyMsg{Type: tea.KeyEnter},
		}, MenuResult{Endless: true}},
		{"scoreboard", []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}}, MenuResult{WantsScoreboard: true}},
		{"quit", []tea.Msg{runeKey('q')}, MenuResult{Quit: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := core.DefaultConfig()
			m := pressMenu(t, NewMenuModel(nil, cfg), tt.keys...)
			want := tt.want
			want.Config = cfg
			if got := m.result(); got != want {
				t.Errorf("result = %+v, expected %+v", got, want)
			}
		})
	}
}

func TestMenuShowsBestScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveRun(storage.Run{GameID: "invaders_endless", Score: 730})

	m := NewMenuModel(store, core.DefaultConfig())
	view := m.View()
	if !strings.Contains(view, "best 730") {
		t.Errorf("menu should show the endless best score:\n%s", view)
	}
	if strings.Count(view, "best") != 1 {
		t.Errorf("classic has no score yet:\n%s", view)
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := pressMenu(t, NewMenuModel(nil, core.DefaultConfig()), tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config = %+v", cfg)
	}
}
