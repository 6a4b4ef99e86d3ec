// Package network handles the arena's line protocol
package network

import "fmt"

// Server -> client messages
const (
	MsgGreeting      = "Please enter your name: \r\n"
	MsgWaiting       = "Waiting for an opponent \r\n"
	MsgMenuFull      = "(a)ttack, (y)ell, (p)owermove\r\n"
	MsgMenuNoPower   = "(a)ttack, (y)ell\r\n"
	MsgWaitingMove   = "Waiting for opponent's next move \r\n"
	MsgWin           = "Congratulations! You have won! \r\n"
	MsgLoss          = "Unfortunately, you have lost. \r\n"
	MsgProtocolError = "Protocol error! \r\n"
)

// BattleStart announces a new match to both participants.
func BattleStart(first, second string) string {
	return fmt.Sprintf("Player %s battles Player %s \r\nLet the battles begin! \r\n", first, second)
}

// Menu lists the moves available to the acting player.
func Menu(charges int) string {
	if charges > 0 {
		return MsgMenuFull
	}
	return MsgMenuNoPower
}

// Damage reports a resolved move.
func Damage(attacker string, amount int, defender string) string {
	return fmt.Sprintf("Player %s does %d damage to player %s \r\n", attacker, amount, defender)
}

// SelfStatus reports a player's own pools.
func SelfStatus(health, charges int) string {
	return fmt.Sprintf("You have hp: %d and powerup: %d remaining \r\n", health, charges)
}

// OpponentStatus reports the opponent's health.
func OpponentStatus(health int) string {
	return fmt.Sprintf("Your opponent has hp: %d left \r\n", health)
}

// Yelled relays a yelled chat line.
func Yelled(name, text string) string {
	return fmt.Sprintf("Player %s yelled: %s \r\n", name, text)
}

// Arrived announces a newly named player.
func Arrived(name string) string {
	return fmt.Sprintf("Player %s has entered the arena. \r\n", name)
}

// Departed announces a player leaving.
func Departed(name string) string {
	return fmt.Sprintf("Player %s has left the arena\r\n", name)
}
