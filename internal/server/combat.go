package server

import (
	"battleserver/internal/game"
	"battleserver/internal/network"
)

// handleCommand applies one in-match command. Input from the waiting side is dropped.
func (s *Server) handleCommand(c *Client, cmd network.Command) {
	if !c.fighter.Acting {
		s.logger.Debug("Ignoring %s from %s: not their turn", cmd.Type, c)
		return
	}
	opp := c.opponent

	switch cmd.Type {
	case network.CmdYell:
		c.fighter.CanYell = true

	case network.CmdChat:
		if !c.fighter.CanYell {
			s.logger.Debug("Dropping chat from %s without a yell", c)
			return
		}
		c.fighter.CanYell = false
		msg := network.Yelled(c.Name, cmd.Text)
		s.send(c, msg)
		s.send(opp, msg)

	case network.CmdAttack:
		s.resolve(c, opp, s.engine.Attack(&c.fighter, &opp.fighter))

	case network.CmdPowerMove:
		out, ok := s.engine.PowerMove(&c.fighter, &opp.fighter)
		if !ok {
			s.logger.Debug("Ignoring power move from %s: no charges", c)
			return
		}
		s.resolve(c, opp, out)
	}
}

// resolve reports a finished move and hands the turn over, or ends the match.
func (s *Server) resolve(attacker, defender *Client, out game.Outcome) {
	s.logger.Debug("Match %s: %s %s for %d (landed=%v)", attacker.matchID, attacker, out.Move, out.Damage, out.Landed)

	dmg := network.Damage(attacker.Name, out.Damage, defender.Name)
	s.send(attacker, dmg)
	s.send(defender, dmg)

	s.sendStatus(attacker, defender)

	if out.Defeated {
		s.endMatch(attacker, defender)
		return
	}

	s.send(attacker, network.MsgWaitingMove)
	s.send(defender, network.Menu(defender.fighter.Charges))
}

// endMatch settles a finished match. The loser may already be gone from the
// registry, in which case only the winner is notified and requeued.
func (s *Server) endMatch(winner, loser *Client) {
	s.logger.Info("Match %s: %s defeats %s", winner.matchID, winner, loser)

	_, loserPresent := s.registry.Get(loser.ID)

	s.send(winner, network.MsgWin)
	if loserPresent {
		s.send(loser, network.MsgLoss)
	}

	winner.leaveMatch()
	loser.leaveMatch()

	s.registry.MoveToBack(winner.ID)
	s.send(winner, network.MsgWaiting)
	if loserPresent {
		s.registry.MoveToBack(loser.ID)
		s.send(loser, network.MsgWaiting)
	}
}
