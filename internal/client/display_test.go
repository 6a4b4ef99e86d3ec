package client

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"battleserver/internal/network"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want Kind
	}{
		{network.MsgGreeting, KindPrompt},
		{network.MsgWaiting, KindWaiting},
		{network.MsgWaitingMove, KindWaiting},
		{"Player Ann battles Player Bob \r\n", KindBattle},
		{"Let the battles begin! \r\n", KindBattle},
		{network.Damage("Ann", 5, "Bob"), KindDamage},
		{network.SelfStatus(21, 3), KindStatus},
		{network.OpponentStatus(-2), KindStatus},
		{network.Menu(3), KindMenu},
		{network.Menu(0), KindMenu},
		{network.Yelled("Ann", "I do 9 damage to player Bob"), KindYell},
		{network.MsgWin, KindWin},
		{network.MsgLoss, KindLoss},
		{network.Arrived("Ann"), KindArena},
		{network.Departed("Ann"), KindArena},
		{network.MsgProtocolError, KindError},
		{"something else", KindInfo},
	}
	for _, tt := range tests {
		if got := Classify(tt.line); got != tt.want {
			t.Errorf("Classify(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestDisplayPrint(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	var out bytes.Buffer
	d := NewDisplay(&out)
	d.nowFunc = func() time.Time { return time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC) }

	d.Print(network.MsgWin)
	d.Print("\r\n")
	d.Print(network.Yelled("Bob", "hi"))

	want := "[15:04:05] Congratulations! You have won!\n[15:04:05] Player Bob yelled: hi\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestInputHandler(t *testing.T) {
	ih := NewInputHandler(strings.NewReader("Ann\r\n  a\n/quit\nnever sent\n"))

	for _, want := range []string{"Ann", "  a"} {
		got, ok := ih.Next()
		if !ok || got != want {
			t.Fatalf("Next() = %q, %v; want %q", got, ok, want)
		}
	}
	if _, ok := ih.Next(); ok {
		t.Fatalf("/quit should end input")
	}
}
