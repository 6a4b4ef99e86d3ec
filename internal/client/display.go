// Package client handles client-side display and user interface
package client

import (
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Kind classifies a line received from the arena
type Kind int

const (
	KindInfo Kind = iota
	KindPrompt
	KindWaiting
	KindBattle
	KindDamage
	KindStatus
	KindMenu
	KindYell
	KindWin
	KindLoss
	KindArena
	KindError
)

// Classify recognizes the arena's fixed message shapes.
func Classify(line string) Kind {
	line = strings.TrimRight(line, "\r\n")
	switch {
	case strings.HasPrefix(line, "Player ") && strings.Contains(line, " yelled: "):
		return KindYell
	case strings.HasPrefix(line, "Please enter your name"):
		return KindPrompt
	case strings.HasPrefix(line, "Waiting for"):
		return KindWaiting
	case strings.HasPrefix(line, "Player ") && strings.Contains(line, " battles Player "),
		strings.HasPrefix(line, "Let the battles begin"):
		return KindBattle
	case strings.HasPrefix(line, "Player ") && strings.Contains(line, " damage to player "):
		return KindDamage
	case strings.HasPrefix(line, "You have hp:"), strings.HasPrefix(line, "Your opponent has hp:"):
		return KindStatus
	case strings.HasPrefix(line, "(a)ttack"):
		return KindMenu
	case strings.HasPrefix(line, "Congratulations!"):
		return KindWin
	case strings.HasPrefix(line, "Unfortunately,"):
		return KindLoss
	case strings.HasSuffix(strings.TrimSpace(line), "has entered the arena."),
		strings.HasSuffix(strings.TrimSpace(line), "has left the arena"):
		return KindArena
	case strings.HasPrefix(line, "Protocol error!"):
		return KindError
	default:
		return KindInfo
	}
}

// Display renders arena lines in color
type Display struct {
	out     io.Writer
	colors  map[Kind]*color.Color
	nowFunc func() time.Time
}

// NewDisplay creates a new display instance with configured colors
func NewDisplay(out io.Writer) *Display {
	return &Display{
		out: out,
		colors: map[Kind]*color.Color{
			KindInfo:    color.New(color.FgWhite),
			KindPrompt:  color.New(color.FgCyan, color.Bold),
			KindWaiting: color.New(color.FgWhite, color.Faint),
			KindBattle:  color.New(color.FgYellow, color.Bold),
			KindDamage:  color.New(color.FgRed),
			KindStatus:  color.New(color.FgBlue),
			KindMenu:    color.New(color.FgGreen, color.Bold),
			KindYell:    color.New(color.FgMagenta),
			KindWin:     color.New(color.FgGreen, color.Bold, color.BgBlack),
			KindLoss:    color.New(color.FgRed, color.Bold, color.BgBlack),
			KindArena:   color.New(color.FgCyan),
			KindError:   color.New(color.FgRed, color.Bold),
		},
		nowFunc: time.Now,
	}
}

// Print shows one server line with a timestamp.
func (d *Display) Print(line string) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return
	}
	timestamp := d.nowFunc().Format("15:04:05")
	d.colors[Classify(line)].Fprintf(d.out, "[%s] %s\n", timestamp, strings.TrimRight(line, " "))
}

// PrintBanner displays the client banner
func (d *Display) PrintBanner() {
	d.colors[KindBattle].Fprintln(d.out, `
╔═══════════════════════════════════════╗
║             BATTLE ARENA              ║
║     a: attack  p: power  y: yell      ║
╚═══════════════════════════════════════╝`)
}

// PrintError displays error messages
func (d *Display) PrintError(message string) {
	d.colors[KindError].Fprintf(d.out, "[ERROR] %s\n", message)
}

// PrintInfo displays informational messages
func (d *Display) PrintInfo(message string) {
	d.colors[KindInfo].Fprintf(d.out, "[INFO] %s\n", message)
}
