// Package client handles the TCP client and game interaction
package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"battleserver/internal/network"
	"battleserver/pkg/logger"
)

// Client is a line-oriented terminal client for the arena
type Client struct {
	conn       net.Conn
	display    *Display
	input      *InputHandler
	logger     *logger.Logger
	serverAddr string

	mu     sync.Mutex // guards conn and closed
	closed bool
}

// NewClient creates a new client instance
func NewClient(serverAddr string, in io.Reader, out io.Writer) *Client {
	return &Client{
		display:    NewDisplay(out),
		input:      NewInputHandler(in),
		logger:     logger.Client,
		serverAddr: serverAddr,
	}
}

// Start connects and relays lines until the server hangs up or the player quits.
func (c *Client) Start() error {
	c.display.PrintBanner()

	conn, err := net.Dial("tcp", c.serverAddr)
	if err != nil {
		c.display.PrintError(fmt.Sprintf("Failed to connect to server: %v", err))
		return fmt.Errorf("failed to connect: %w", err)
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		conn.Close()
		return errors.New("client closed")
	}
	c.conn = conn
	c.mu.Unlock()
	c.logger.Info("Connected to server at %s", c.serverAddr)

	received := make(chan error, 1)
	go func() { received <- c.receive(conn) }()
	go c.forwardInput(conn)

	err = <-received
	c.Close()
	if err != nil {
		c.display.PrintError(err.Error())
		return err
	}
	c.display.PrintInfo("Disconnected from server")
	return nil
}

// receive prints server lines until the connection ends.
func (c *Client) receive(conn net.Conn) error {
	r := bufio.NewReader(conn)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			c.display.Print(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("connection lost: %w", err)
		}
	}
}

// forwardInput sends each typed line with a CRLF terminator.
func (c *Client) forwardInput(conn net.Conn) {
	defer c.Close()
	for {
		line, ok := c.input.Next()
		if !ok {
			if err := c.input.Err(); err != nil {
				c.logger.Warn("Input error: %v", err)
			}
			return
		}
		if err := network.WriteFull(conn, []byte(line+"\r\n")); err != nil {
			c.logger.Error("Failed to send: %v", err)
			return
		}
	}
}

// Close closes the connection. It is safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
