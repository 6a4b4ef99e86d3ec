package server

import (
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"

	"battleserver/internal/game"
	"battleserver/internal/network"
)

// Client represents a connected player
type Client struct {
	ID       uuid.UUID
	Name     string // empty until the first line arrives
	Addr     string
	JoinedAt time.Time

	conn   net.Conn
	framer *network.Framer // touched only by the client's read goroutine

	fighter      game.Fighter
	opponent     *Client   // set while in a match
	lastOpponent uuid.UUID // survives the match, drives the rematch rule
	matchID      uuid.UUID

	dead bool // a write failed; reaped after the current event
}

func newClient(conn net.Conn, framer *network.Framer) *Client {
	return &Client{
		ID:       uuid.New(),
		Addr:     conn.RemoteAddr().String(),
		JoinedAt: time.Now(),
		conn:     conn,
		framer:   framer,
	}
}

// Named reports whether the client has completed registration.
func (c *Client) Named() bool {
	return c.Name != ""
}

// InMatch reports whether the client is currently fighting.
func (c *Client) InMatch() bool {
	return c.opponent != nil
}

// Fighter returns a copy of the client's combat pools.
func (c *Client) Fighter() game.Fighter {
	return c.fighter
}

// leaveMatch clears every per-match field. The last opponent is kept.
func (c *Client) leaveMatch() {
	c.fighter.Reset()
	c.opponent = nil
	c.matchID = uuid.Nil
}

func (c *Client) String() string {
	if c.Named() {
		return fmt.Sprintf("%s(%s)", c.Name, c.Addr)
	}
	return c.Addr
}
