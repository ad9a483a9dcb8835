package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// selectMode moves the scoreboard cursor onto id.
func selectMode(t *testing.T, m ScoreboardModel, id string) ScoreboardModel {
	t.Helper()
	for range m.modes {
		if m.modes[m.cursor].ID == id {
			return m
		}
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}
	t.Fatalf("mode %q not registered", id)
	return m
}

func TestScoreboardShowsHistoryAndBest(t *testing.T) {
	svc := testServices(t)
	for _, s := range []struct {
		player string
		score  int
	}{{"bob", 30}, {"alice", 75}, {"carol", 12}} {
		if _, err := svc.Store.SaveScore("tui_stub", s.player, s.score); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.Prefs.SubmitScore("tui_stub", "dave", 90); err != nil {
		t.Fatal(err)
	}

	m := selectMode(t, NewScoreboardModel(svc.Store, svc.Prefs, 80, 24), "tui_stub")

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0][1] != "alice" || rows[0][2] != "75" {
		t.Errorf("top row = %v, want alice with 75", rows[0])
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES", "[Stub tui_stub]", "Best: 90 by dave", "alice"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardWithoutBackends(t *testing.T) {
	m := NewScoreboardModel(nil, nil, 60, 20)

	if n := len(m.table.Rows()); n != 0 {
		t.Errorf("rows = %d, want 0", n)
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty board should say so")
	}
}

func TestScoreboardModeCycleWraps(t *testing.T) {
	m := NewScoreboardModel(nil, nil, 60, 20)
	n := len(m.modes)
	if n == 0 {
		t.Fatal("no modes registered")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.cursor != n-1 {
		t.Errorf("cursor after shift+tab = %d, want %d", m.cursor, n-1)
	}

	next, _ = m.Update(runeKey('l'))
	m = next.(ScoreboardModel)
	if m.cursor != 0 {
		t.Errorf("cursor after l = %d, want 0", m.cursor)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, nil, 60, 20)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	back := next.(ScoreboardModel)
	if !back.IsGoingBack() || back.IsQuitting() || cmd == nil {
		t.Error("esc should go back to the menu")
	}
	if back.View() != "" {
		t.Error("view should be empty after leaving")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
