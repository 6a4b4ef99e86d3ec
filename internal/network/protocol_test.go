package network

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"a", Command{Type: CmdAttack}},
		{"y", Command{Type: CmdYell}},
		{"p", Command{Type: CmdPowerMove}},
		{"  p \t", Command{Type: CmdPowerMove}},
		{"aa", Command{Type: CmdChat, Text: "aa"}},
		{"ya", Command{Type: CmdChat, Text: "ya"}},
		{"A", Command{Type: CmdChat, Text: "A"}},
		{"you are going down", Command{Type: CmdChat, Text: "you are going down"}},
		{"", Command{Type: CmdChat, Text: ""}},
	}
	for _, tt := range tests {
		if got := ParseCommand(tt.line); got != tt.want {
			t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestMessageTemplates(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{BattleStart("Ann", "Bob"), "Player Ann battles Player Bob \r\nLet the battles begin! \r\n"},
		{Menu(2), "(a)ttack, (y)ell, (p)owermove\r\n"},
		{Menu(0), "(a)ttack, (y)ell\r\n"},
		{Damage("Ann", 5, "Bob"), "Player Ann does 5 damage to player Bob \r\n"},
		{SelfStatus(21, 3), "You have hp: 21 and powerup: 3 remaining \r\n"},
		{OpponentStatus(17), "Your opponent has hp: 17 left \r\n"},
		{Yelled("Ann", "hi"), "Player Ann yelled: hi \r\n"},
		{Arrived("Ann"), "Player Ann has entered the arena. \r\n"},
		{Departed("Ann"), "Player Ann has left the arena\r\n"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

// shortWriter accepts at most max bytes per call.
type shortWriter struct {
	buf bytes.Buffer
	max int
}

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.max {
		p = p[:w.max]
	}
	return w.buf.Write(p)
}

type stuckWriter struct{}

func (stuckWriter) Write([]byte) (int, error) { return 0, nil }

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriteFull(t *testing.T) {
	w := &shortWriter{max: 3}
	if err := WriteFull(w, []byte(MsgGreeting)); err != nil {
		t.Fatalf("WriteFull: %v", err)
	}
	if w.buf.String() != MsgGreeting {
		t.Fatalf("wrote %q", w.buf.String())
	}

	if err := WriteFull(stuckWriter{}, []byte("x")); !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("stuck writer err = %v, want io.ErrShortWrite", err)
	}
	if err := WriteFull(brokenWriter{}, []byte("x")); err == nil {
		t.Fatalf("expected error from broken writer")
	}
}
