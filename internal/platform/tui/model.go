package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/engine"
)

// PanelOptions configures a terminal panel.
type PanelOptions struct {
	// User labels the session in the status line.
	User string

	// Drive makes the panel step the runner itself on every TickMsg.
	// Leave false when the runner is already running elsewhere.
	Drive bool

	// Interval is the tick period used when Drive is set.
	Interval time.Duration
}

// manualClaim records whether this panel switched the game to manual mode.
// Shared by pointer so copies of the value model see the same claim.
type manualClaim struct {
	mu   sync.Mutex
	held bool
}

func (c *manualClaim) set(v bool) {
	c.mu.Lock()
	c.held = v
	c.mu.Unlock()
}

func (c *manualClaim) take() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	held := c.held
	c.held = false
	return held
}

// PanelModel is the Bubble Tea model that shows the LED grid and forwards
// key presses to the runner.
type PanelModel struct {
	runner   *engine.Runner
	session  *engine.ChannelSession
	claim    *manualClaim
	closeOne *sync.Once
	opts     PanelOptions
	submit   func(core.Command) bool

	keys     KeyMap
	help     help.Model
	snap     core.StateSnapshot
	tick     uint64
	title    string
	last     *engine.GameResult
	dropSeq  uint64
	quitting bool
	width    int
}

// NewPanelModel registers a session with the runner and returns a panel bound to it.
func NewPanelModel(runner *engine.Runner, opts PanelOptions) PanelModel {
	if opts.Interval <= 0 {
		opts.Interval = engine.DefaultRunnerConfig().TickInterval
	}
	session := engine.NewChannelSession(engine.NewSessionID(), 32)
	runner.Sessions().Register(session)

	m := PanelModel{
		runner:   runner,
		session:  session,
		claim:    &manualClaim{},
		closeOne: &sync.Once{},
		opts:     opts,
		submit:   runner.Submit,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		snap:     runner.Snapshot(),
		tick:     runner.Tick(),
	}
	m.title = m.titleFor(m.snap.Game)
	return m
}

// Init starts listening for session events, and ticking when the panel drives.
func (m PanelModel) Init() tea.Cmd {
	if m.opts.Drive {
		return tea.Batch(waitForEvent(m.session), tickCmd(m.opts.Interval))
	}
	return waitForEvent(m.session)
}

// Update handles messages and updates the model state.
func (m PanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.opts.Drive || m.quitting {
			return m, nil
		}
		m.runner.Step(time.Time(msg))
		m.snap = m.runner.Snapshot()
		m.tick = m.runner.Tick()
		return m, tickCmd(m.opts.Interval)

	case engine.SnapshotEvent:
		m.snap = msg.Snapshot
		m.tick = msg.Tick
		return m, waitForEvent(m.session)

	case engine.GameChangedEvent:
		m.claim.set(false)
		m.title = msg.Title
		m.last = nil
		return m, waitForEvent(m.session)

	case engine.ModeChangedEvent:
		if msg.Mode == core.ModeAI {
			m.claim.set(false)
		}
		return m, waitForEvent(m.session)

	case engine.GameOverEvent:
		res := msg.Result
		m.last = &res
		return m, waitForEvent(m.session)

	case softDropReleaseMsg:
		if msg.seq == m.dropSeq {
			m.submit(core.Command{Kind: core.CmdSoftDrop, Active: false})
		}
		return m, nil

	case sessionClosedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PanelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NextGame):
		m.nextGame()
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	cmd, ok := m.keys.Command(msg)
	if !ok {
		return m, nil
	}
	var release tea.Cmd
	switch cmd.Kind {
	case core.CmdManual:
		m.claim.set(true)
	case core.CmdAI:
		m.claim.set(false)
	case core.CmdSoftDrop:
		m.dropSeq++
		release = softDropReleaseCmd(m.dropSeq)
	}
	m.submit(cmd)
	return m, release
}

// nextGame selects the game after the active one.
func (m *PanelModel) nextGame() {
	games := m.runner.Games()
	if len(games) < 2 {
		return
	}
	active := m.runner.ActiveGame()
	next := games[0].ID
	for i, g := range games {
		if g.ID == active {
			next = games[(i+1)%len(games)].ID
			break
		}
	}
	m.claim.set(false)
	if err := m.runner.SelectGame(next); err == nil {
		m.title = m.titleFor(next)
		m.snap = m.runner.Snapshot()
	}
}

// Close unregisters the panel, handing the game back to the AI if this panel
// put it in manual mode. Safe to call multiple times.
func (m PanelModel) Close() {
	m.closeOne.Do(func() {
		m.session.Close()
		m.runner.Sessions().Unregister(m.session.ID())
		if m.claim.take() {
			m.submit(core.Command{Kind: core.CmdAI})
		}
	})
}

func (m PanelModel) titleFor(id string) string {
	for _, g := range m.runner.Games() {
		if g.ID == id {
			return g.Title
		}
	}
	return id
}

// saveScreenshot writes the current snapshot as JSON under ~/.ledgrid/screenshots.
func (m PanelModel) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".ledgrid", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	data, err := json.Marshal(m.snap)
	if err != nil {
		return
	}
	name := fmt.Sprintf("%s_%s.json", m.snap.Game, time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), data, 0o600)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	modeStyles  = map[core.Mode]lipgloss.Style{
		core.ModeAI:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		core.ModeManual: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	}
	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the panel.
func (m PanelModel) View() string {
	if m.quitting {
		return ""
	}

	mode := core.ModeAI
	if m.snap.Manual {
		mode = core.ModeManual
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.ToUpper(m.title)))
	b.WriteString("  ")
	b.WriteString(modeStyles[mode].Render("[" + strings.ToUpper(mode.String()) + "]"))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("score %d  lines %d  tick %d", m.snap.Score, m.snap.Lines, m.tick)))
	if m.snap.GameOver {
		b.WriteString(statusStyle.Render("  GAME OVER"))
	}
	if m.opts.User != "" {
		b.WriteString(statusStyle.Render("  @" + m.opts.User))
	}
	b.WriteString("\n")

	b.WriteString(gridStyle.Render(RenderSnapshot(m.snap)))
	b.WriteString("\n")

	if m.last != nil {
		b.WriteString(statusStyle.Render(fmt.Sprintf("last: %s %d pts, %d lines, %s, %s",
			m.last.GameID, m.last.Score, m.last.Lines, m.last.Mode, m.last.Duration.Round(time.Second))))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program with a panel bound to runner.
func Run(runner *engine.Runner, opts PanelOptions) error {
	model := NewPanelModel(runner, opts)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
