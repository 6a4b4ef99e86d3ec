package server

import (
	"strings"

	"battleserver/internal/network"
)

// handleLine routes one line from c according to where c is in its lifecycle.
func (s *Server) handleLine(c *Client, line string) {
	switch {
	case !c.Named():
		s.register(c, line)
	case c.InMatch():
		s.handleCommand(c, network.ParseCommand(line))
	default:
		s.logger.Debug("Ignoring input from idle client %s", c)
	}
}

// register treats line as the client's name.
func (s *Server) register(c *Client, line string) {
	name := strings.TrimSpace(line)
	if len(name) > s.cfg.MaxNameLength {
		name = strings.ToValidUTF8(name[:s.cfg.MaxNameLength], "")
	}

	if name == "" {
		s.logger.Warn("Protocol error from %s: empty name", c)
		s.send(c, network.MsgProtocolError)
		s.dropClient(c)
		return
	}

	c.Name = name
	s.logger.Info("Player %s registered from %s", c.Name, c.Addr)

	s.broadcast(network.Arrived(c.Name))
	s.send(c, network.MsgWaiting)
}

// broadcast sends msg to every named client.
func (s *Server) broadcast(msg string) {
	for c := range s.registry.All() {
		if c.Named() {
			s.send(c, msg)
		}
	}
}

// dropClient removes c for good. An opponent wins by forfeit, then the
// remaining named clients hear about the departure.
func (s *Server) dropClient(c *Client) {
	if !s.registry.Remove(c.ID) {
		return
	}
	c.conn.Close()

	if opp := c.opponent; opp != nil {
		s.logger.Info("Match %s forfeited by %s", c.matchID, c)
		s.endMatch(opp, c)
	}

	if c.Named() {
		s.broadcast(network.Departed(c.Name))
	}
	s.logger.Debug("Removed %s (%d online)", c, s.registry.Len())
}
