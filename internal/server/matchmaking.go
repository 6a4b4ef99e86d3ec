package server

import (
	"github.com/google/uuid"

	"battleserver/internal/network"
)

// canMatch reports whether a and b may be paired. Two clients whose most
// recent match was against each other must wait for someone else.
func canMatch(a, b *Client) bool {
	if !a.Named() || !b.Named() {
		return false
	}
	if a.InMatch() || b.InMatch() {
		return false
	}
	if a.dead || b.dead {
		return false
	}
	return !(a.lastOpponent == b.ID && b.lastOpponent == a.ID)
}

// runMatchmaking pairs idle clients in registry order, each client at most once.
func (s *Server) runMatchmaking() {
	clients := s.registry.Snapshot()
	for i, a := range clients {
		if !a.Named() || a.InMatch() {
			continue
		}
		for _, b := range clients[i+1:] {
			if canMatch(a, b) {
				s.beginMatch(a, b)
				break
			}
		}
	}
}

// beginMatch starts a fight. first takes the opening turn.
func (s *Server) beginMatch(first, second *Client) {
	id := uuid.New()
	first.opponent, second.opponent = second, first
	first.lastOpponent, second.lastOpponent = second.ID, first.ID
	first.matchID, second.matchID = id, id

	s.engine.Begin(&first.fighter, &second.fighter)
	s.logger.Info("Match %s: %s vs %s", id, first, second)

	start := network.BattleStart(first.Name, second.Name)
	s.send(first, start)
	s.send(second, start)

	s.sendStatus(first, second)

	s.send(first, network.Menu(first.fighter.Charges))
	s.send(second, network.MsgWaitingMove)
}

// sendStatus gives each side its opponent's health, then its own pools.
func (s *Server) sendStatus(a, b *Client) {
	s.send(a, network.OpponentStatus(b.fighter.Health))
	s.send(b, network.OpponentStatus(a.fighter.Health))
	s.send(a, network.SelfStatus(a.fighter.Health, a.fighter.Charges))
	s.send(b, network.SelfStatus(b.fighter.Health, b.fighter.Charges))
}
