package core

import (
	"fmt"
	"strings"
)

// CommandKind is a semantic control intent, independent of its transport.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdLeft
	CmdRight
	CmdUp
	CmdDown
	CmdRotate
	CmdDrop     // hard drop
	CmdSoftDrop // Active toggles soft drop on or off
	CmdManual
	CmdAI
)

// String returns the wire name of the command.
func (k CommandKind) String() string {
	switch k {
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	case CmdRotate:
		return "rotate"
	case CmdDrop:
		return "drop"
	case CmdSoftDrop:
		return "softdrop"
	case CmdManual:
		return "manual"
	case CmdAI:
		return "ai"
	default:
		return "none"
	}
}

// Command is one control request routed to the active game.
type Command struct {
	Kind   CommandKind
	Active bool
}

// ParseCommand maps a wire name onto a Command.
func ParseCommand(name string, active bool) (Command, error) {
	var k CommandKind
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		k = CmdLeft
	case "right":
		k = CmdRight
	case "up":
		k = CmdUp
	case "down":
		k = CmdDown
	case "rotate":
		k = CmdRotate
	case "drop":
		k = CmdDrop
	case "softdrop":
		k = CmdSoftDrop
	case "manual":
		k = CmdManual
	case "ai":
		k = CmdAI
	default:
		return Command{}, fmt.Errorf("core: unknown command %q", name)
	}
	return Command{Kind: k, Active: active}, nil
}
