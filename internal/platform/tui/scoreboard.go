package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/color-jump/internal/registry"
	"github.com/vovakirdan/color-jump/internal/storage"
)

const scoreboardRows = 100

type scoreboardKeys struct {
	Scroll key.Binding
	Mode   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Mode, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultScoreboardKeys = scoreboardKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
	Mode:   key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"), key.WithHelp("tab/←/→", "mode")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ScoreboardModel lists the score history of one mode at a time, with the
// prefs best score above it.
type ScoreboardModel struct {
	modes  []registry.GameInfo
	cursor int
	store  *storage.Store
	prefs  *storage.Prefs
	best   storage.HighScoreRecord
	scores []storage.ScoreEntry
	table  table.Model
	help   help.Model
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first registered mode.
// Either backend may be nil.
func NewScoreboardModel(store *storage.Store, prefs *storage.Prefs, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		prefs:  prefs,
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: 14},
			{Title: "Score", Width: 8},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the selected mode's history and best score into the table.
// Read errors leave the board empty.
func (m *ScoreboardModel) load() {
	m.best = storage.HighScoreRecord{}
	m.scores = nil
	if len(m.modes) > 0 {
		id := m.modes[m.cursor].ID
		if m.prefs != nil {
			if rec, err := m.prefs.HighScore(id); err == nil {
				m.best = rec
			}
		}
		if m.store != nil {
			if scores, err := m.store.TopScores(id, scoreboardRows); err == nil {
				m.scores = scores
			}
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultScoreboardKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, defaultScoreboardKeys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, defaultScoreboardKeys.Mode):
			if n := len(m.modes); n > 0 {
				step := 1
				if s := msg.String(); s == "shift+tab" || s == "left" || s == "h" {
					step = n - 1
				}
				m.cursor = (m.cursor + step) % n
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(accent.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.cursor {
			tabs[i] = "[" + g.Title + "]"
		} else {
			tabs[i] = " " + g.Title + " "
		}
	}
	b.WriteString(centerText(strings.Join(tabs, "  "), m.width))
	b.WriteString("\n")
	if m.best.Score > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best: %d by %s", m.best.Score, m.best.Player), m.width))
	}
	b.WriteString("\n\n")

	body := m.table.View()
	if len(m.scores) == 0 {
		body = dim.Italic(true).Padding(1, 4).Render("No scores recorded yet.\nClimb to set a high score!")
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, frame.Render(body)))
	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(defaultScoreboardKeys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, prefs *storage.Prefs, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, prefs, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
