package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of the stats sidebar
	maxScores          = 100 // Max scores to load
)

// ScoreSource is the part of the score store the scoreboard reads.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextGame, k.PrevGame, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel browses stored results per game.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	source     ScoreSource
	scores     []storage.ScoreEntry
	stats      *storage.GameStats
	loadErr    error
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
}

// NewScoreboardModel creates a scoreboard over source.
func NewScoreboardModel(source ScoreSource, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	if len(m.games) > 0 {
		m.load()
	}
	return m
}

func (m ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

// createTable creates a table sized to the window.
func (m ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Lines", Width: 6},
		{Title: "Mode", Width: 7},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 12},
	}

	// Widen the date column if we have more space
	spare := m.width - 4 - 55
	if m.showSidebar() {
		spare -= sidebarWidth + 3
	}
	if spare > 0 {
		columns[5].Width += min(spare, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
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

// load fetches scores and stats for the selected game.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.source != nil {
		id := m.games[m.gameCursor].ID
		if m.scores, m.loadErr = m.source.TopScores(id, maxScores); m.loadErr == nil {
			m.stats, m.loadErr = m.source.GetGameStats(id)
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Lines),
			s.Mode,
			formatDuration(s.Duration),
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
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + len(m.games) - 1) % len(m.games)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		rows := m.table.Rows()
		m.table = m.createTable()
		m.table.SetRows(rows)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.games[m.gameCursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := box.Render(m.renderTableContent())
	if m.showSidebar() {
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			box.Width(sidebarWidth).Render(m.renderStats()), "  ", content)
	}
	b.WriteString(content)

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderStats renders the per-game summary shown in the sidebar.
func (m ScoreboardModel) renderStats() string {
	var b strings.Builder
	for i, g := range m.games {
		if i == m.gameCursor {
			b.WriteString(titleStyle.Render("> " + g.Title))
		} else {
			b.WriteString("  " + g.Title)
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")

	if m.stats == nil || m.stats.GamesCount == 0 {
		b.WriteString(statusStyle.Render("no games yet"))
		return b.String()
	}
	st := m.stats
	fmt.Fprintf(&b, "games   %d (%d manual)\n", st.GamesCount, st.ManualGames)
	fmt.Fprintf(&b, "best    %d\n", st.HighScore)
	fmt.Fprintf(&b, "average %.1f\n", st.AvgScore)
	fmt.Fprintf(&b, "lines   %d best\n", st.BestLines)
	fmt.Fprintf(&b, "last    %s", st.LastPlayed.Format("Jan 02 15:04"))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	switch {
	case m.loadErr != nil:
		return empty.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return empty.Render("No scores recorded yet.\nFinished games show up here.")
	}
	return m.table.View()
}

// centerText pads s so it sits in the middle of width columns.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// formatDuration renders a millisecond duration as m:ss.
func formatDuration(ms int64) string {
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(source ScoreSource, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
