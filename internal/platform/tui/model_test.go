package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/color-jump/internal/core"
	"github.com/vovakirdan/color-jump/internal/registry"
	"github.com/vovakirdan/color-jump/internal/storage"
)

type stubGame struct {
	id         string
	score      int
	over       bool
	paused     bool
	resets     int
	highScore  int
	difficulty string
	lastInput  core.InputFrame
}

func (g *stubGame) ID() string    { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.score = 0
	g.over = false
	g.paused = false
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.lastInput = core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			g.lastInput.Set(a)
		}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, g.id) }

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over, Paused: g.paused}
}

func (g *stubGame) SetHighScore(score int)      { g.highScore = score }
func (g *stubGame) SetDifficulty(preset string) { g.difficulty = preset }

func init() {
	registry.Register("tui_stub", func() registry.Game { return &stubGame{id: "tui_stub"} })
}

type memItems map[string][]byte

func (m memItems) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memItems) SaveItem(key string, data []byte) error {
	m[key] = append([]byte(nil), data...)
	return nil
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
}

func testServices(t *testing.T) Services {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return Services{
		Store:  store,
		Prefs:  storage.NewPrefs(memItems{}),
		Player: "alice",
	}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(time.Now()))
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelInitSetsHighScore(t *testing.T) {
	svc := testServices(t)
	if _, err := svc.Store.SaveScore("tui_stub", "bob", 30); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Prefs.SubmitScore("tui_stub", "alice", 55); err != nil {
		t.Fatal(err)
	}

	g := &stubGame{id: "tui_stub"}
	m := NewModel(g, svc, testConfig())
	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}

	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if g.highScore != 55 {
		t.Errorf("high score = %d, want 55", g.highScore)
	}
}

func TestModelForwardsInputOnTick(t *testing.T) {
	g := &stubGame{id: "tui_stub"}
	m := NewModel(g, Services{}, testConfig())
	m.Init()

	m, _ = press(t, m, runeKey('a'))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)

	if !g.lastInput.Has(core.ActionLeft) || !g.lastInput.Has(core.ActionSwitch) {
		t.Errorf("game saw %v, want Left and Switch", g.lastInput.Actions)
	}

	m = tick(t, m)
	if len(g.lastInput.Actions) != 0 {
		t.Errorf("input should be cleared after a tick, got %v", g.lastInput.Actions)
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &stubGame{id: "tui_stub"}
	m := NewModel(g, Services{}, testConfig())
	m.Init()

	m, _ = press(t, m, runeKey('r'))
	m = tick(t, m)
	if g.resets != 1 {
		t.Errorf("restart during a run should be ignored, resets = %d", g.resets)
	}

	g.over = true
	m = tick(t, m)
	m, _ = press(t, m, runeKey('r'))
	m = tick(t, m)

	if g.resets != 2 {
		t.Errorf("resets = %d, want 2 after restart", g.resets)
	}
	if m.State().GameOver {
		t.Error("state should be fresh after restart")
	}
}

func TestModelRecordsScoreOnce(t *testing.T) {
	svc := testServices(t)
	g := &stubGame{id: "tui_stub"}
	m := NewModel(g, svc, testConfig())
	m.Init()

	g.score = 42
	g.over = true
	m = tick(t, m)
	m = tick(t, m)

	scores, err := svc.Store.AllScores("tui_stub")
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != 42 || scores[0].Player != "alice" {
		t.Errorf("saved %+v, want 42 by alice", scores[0])
	}

	rec, err := svc.Prefs.HighScore("tui_stub")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Score != 42 {
		t.Errorf("prefs best = %d, want 42", rec.Score)
	}
	if !m.NewBest() {
		t.Error("first score should be a new best")
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	svc := testServices(t)
	g := &stubGame{id: "tui_stub"}
	m := NewModel(g, svc, testConfig())
	m.Init()

	g.over = true
	tick(t, m)

	scores, err := svc.Store.AllScores("tui_stub")
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 0 {
		t.Errorf("zero score should not be saved, got %d rows", len(scores))
	}
}

func TestModelDefaultPlayer(t *testing.T) {
	svc := testServices(t)
	svc.Player = ""
	g := &stubGame{id: "tui_stub"}
	m := NewModel(g, svc, testConfig())
	m.Init()

	g.score = 7
	g.over = true
	tick(t, m)

	scores, err := svc.Store.AllScores("tui_stub")
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Player != DefaultPlayer {
		t.Errorf("scores = %+v, want one row by %q", scores, DefaultPlayer)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{id: "tui_stub"}, Services{}, testConfig())
	m.Init()

	m, cmd := press(t, m, runeKey('q'))
	if cmd == nil {
		t.Error("q should return a quit command")
	}
	if !m.IsQuitting() {
		t.Error("model should be quitting")
	}
	if m.View() != "" {
		t.Error("view should be empty once quitting")
	}
}

func TestModelBack(t *testing.T) {
	tests := []struct {
		name     string
		embedded bool
		paused   bool
		wantBack bool
		wantQuit bool
	}{
		{"running ignores back", true, false, false, false},
		{"paused embedded returns to menu", true, true, true, false},
		{"paused standalone exits", false, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(&stubGame{id: "tui_stub"}, Services{}, testConfig())
			m.embedded = tt.embedded
			m.Init()

			if tt.paused {
				m, _ = press(t, m, runeKey('p'))
				m = tick(t, m)
			}
			m, _ = press(t, m, runeKey('b'))

			if m.BackToMenu() != tt.wantBack {
				t.Errorf("BackToMenu = %v, want %v", m.BackToMenu(), tt.wantBack)
			}
			if m.IsQuitting() != tt.wantQuit {
				t.Errorf("IsQuitting = %v, want %v", m.IsQuitting(), tt.wantQuit)
			}
		})
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &stubGame{id: "tui_stub"}
	m := NewModel(g, Services{}, testConfig())
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if g.resets != 1 {
		t.Errorf("resize should not reset the run, resets = %d", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}
