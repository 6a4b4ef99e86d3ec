package client

import (
	"bufio"
	"io"
	"strings"
)

// QuitCommand ends the session without sending anything to the server.
const QuitCommand = "/quit"

// InputHandler reads the player's lines
type InputHandler struct {
	scanner *bufio.Scanner
}

// NewInputHandler creates a new input handler
func NewInputHandler(r io.Reader) *InputHandler {
	return &InputHandler{scanner: bufio.NewScanner(r)}
}

// Next returns the next line to send. It reports false at end of input or on /quit.
func (ih *InputHandler) Next() (string, bool) {
	if !ih.scanner.Scan() {
		return "", false
	}
	line := strings.TrimRight(ih.scanner.Text(), "\r")
	if strings.TrimSpace(line) == QuitCommand {
		return "", false
	}
	return line, true
}

// Err returns the first non-EOF read error.
func (ih *InputHandler) Err() error {
	return ih.scanner.Err()
}
