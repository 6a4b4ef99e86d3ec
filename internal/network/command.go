package network

import "strings"

// CommandType classifies a line sent by the acting player
type CommandType int

const (
	CmdChat CommandType = iota
	CmdAttack
	CmdYell
	CmdPowerMove
)

func (t CommandType) String() string {
	switch t {
	case CmdAttack:
		return "attack"
	case CmdYell:
		return "yell"
	case CmdPowerMove:
		return "powermove"
	default:
		return "chat"
	}
}

// Command is a parsed client line. Text is set only for CmdChat.
type Command struct {
	Type CommandType
	Text string
}

// ParseCommand trims the line and classifies it. A single a, y or p is a move;
// anything else is chat.
func ParseCommand(line string) Command {
	trimmed := strings.TrimSpace(line)
	switch trimmed {
	case "a":
		return Command{Type: CmdAttack}
	case "y":
		return Command{Type: CmdYell}
	case "p":
		return Command{Type: CmdPowerMove}
	}
	return Command{Type: CmdChat, Text: trimmed}
}
