package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// KeyMap defines the panel key bindings.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Rotate   key.Binding
	Drop     key.Binding
	SoftDrop key.Binding
	Manual   key.Binding
	AI       key.Binding
	NextGame key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Manual, k.AI, k.NextGame, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Rotate, k.Drop, k.SoftDrop},
		{k.Manual, k.AI, k.NextGame},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("x", "w"),
			key.WithHelp("x/w", "rotate"),
		),
		Drop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "drop"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "soft drop"),
		),
		Manual: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "manual"),
		),
		AI: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "ai"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command maps a key press onto a runner command.
// Terminals report no key release, so soft drop always maps to on and the
// model releases it after softDropHold.
// Quit, help and game switching are handled by the model, not here.
func (k KeyMap) Command(msg tea.KeyMsg) (core.Command, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.Command{Kind: core.CmdLeft}, true
	case key.Matches(msg, k.Right):
		return core.Command{Kind: core.CmdRight}, true
	case key.Matches(msg, k.Up):
		return core.Command{Kind: core.CmdUp}, true
	case key.Matches(msg, k.Down):
		return core.Command{Kind: core.CmdDown}, true
	case key.Matches(msg, k.Rotate):
		return core.Command{Kind: core.CmdRotate}, true
	case key.Matches(msg, k.Drop):
		return core.Command{Kind: core.CmdDrop}, true
	case key.Matches(msg, k.SoftDrop):
		return core.Command{Kind: core.CmdSoftDrop, Active: true}, true
	case key.Matches(msg, k.Manual):
		return core.Command{Kind: core.CmdManual}, true
	case key.Matches(msg, k.AI):
		return core.Command{Kind: core.CmdAI}, true
	}
	return core.Command{}, false
}
