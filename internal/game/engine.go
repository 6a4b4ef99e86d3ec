// Package game implements the combat rules of a match
package game

import (
	"math/rand"
	"time"

	"battleserver/internal/config"
)

// Roller is the source of randomness for dice rolls. *rand.Rand satisfies it.
type Roller interface {
	Intn(n int) int
	Float64() float64
}

// Engine resolves moves between two fighters
type Engine struct {
	specs  config.CombatSpecs
	roller Roller
}

// NewEngine creates an engine. A nil roller gets a time-seeded one.
func NewEngine(specs config.CombatSpecs, roller Roller) *Engine {
	if roller == nil {
		roller = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{specs: specs, roller: roller}
}

// Begin rolls fresh pools for both fighters and gives first the opening move.
func (e *Engine) Begin(first, second *Fighter) {
	for _, f := range []*Fighter{first, second} {
		f.Health = e.between(e.specs.HealthMin, e.specs.HealthMax)
		f.Charges = e.between(e.specs.ChargesMin, e.specs.ChargesMax)
		f.CanYell = false
	}
	first.Acting = true
	second.Acting = false
}

// Attack resolves a regular attack. It always lands.
func (e *Engine) Attack(attacker, defender *Fighter) Outcome {
	damage := e.regularDamage()
	defender.Health -= damage
	e.switchTurn(attacker, defender)

	return Outcome{
		Move:     MoveAttack,
		Damage:   damage,
		Landed:   true,
		Defeated: defender.Defeated(),
	}
}

// PowerMove resolves a power move. It reports false, changing nothing, when
// the attacker has no charges left. A miss still spends the charge and the turn.
func (e *Engine) PowerMove(attacker, defender *Fighter) (Outcome, bool) {
	if attacker.Charges <= 0 {
		return Outcome{}, false
	}
	attacker.Charges--

	damage := e.regularDamage() * e.specs.PowerMultiplier
	landed := e.roller.Float64() < e.specs.PowerHitChance
	if !landed {
		damage = 0
	}
	defender.Health -= damage
	e.switchTurn(attacker, defender)

	return Outcome{
		Move:     MovePowerMove,
		Damage:   damage,
		Landed:   landed,
		Defeated: defender.Defeated(),
	}, true
}

// regularDamage rolls a regular attack in [DamageMin, DamageMax]
func (e *Engine) regularDamage() int {
	return e.between(e.specs.DamageMin, e.specs.DamageMax)
}

// switchTurn hands the move to the defender; an unused yell token expires
func (e *Engine) switchTurn(attacker, defender *Fighter) {
	attacker.Acting = false
	attacker.CanYell = false
	defender.Acting = true
}

func (e *Engine) between(min, max int) int {
	return min + e.roller.Intn(max-min+1)
}
