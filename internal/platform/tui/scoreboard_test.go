package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func TestScoreboardSwitchesModes(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.Run{GameID: "invaders", Score: 120, DurationMs: 65000, Wave: 1, EndReason: "shot_down"})
	store.SaveRun(storage.Run{GameID: "invaders_endless", Score: 900, DurationMs: 5000, Wave: 3, EndReason: "invaded"})

	m := NewScoreboardModel(store, 100, 30)
	if len(m.scores) != 1 || m.scores[0].Score != 120 {
		t.Fatalf("classic scores = %+v", m.scores)
	}
	if view := m.View(); !strings.Contains(view, "Classic") || !strings.Contains(view, "Longest 1:05") {
		t.Errorf("classic view:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.scores) != 1 || m.scores[0].Score != 900 {
		t.Errorf("endless scores = %+v", m.scores)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Errorf("empty scoreboard view:\n%s", m.View())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[int64]string{0: "0:00", 999: "0:00", 65000: "1:05", 600000: "10:00"}
	for ms, want := range tests {
		if got := formatDuration(ms); got != want {
			t.Errorf("formatDuration(%d) = %q, expected %q", ms, got, want)
		}
	}
}
