package game

// MoveType identifies a resolved combat move
type MoveType string

const (
	MoveAttack    MoveType = "attack"
	MovePowerMove MoveType = "powermove"
)

// Fighter holds one participant's combat pools. The values are only
// meaningful while the owning client is in a match.
type Fighter struct {
	Health  int  `json:"health"`
	Charges int  `json:"charges"` // power moves left
	Acting  bool `json:"acting"`  // true for the player whose move it is
	CanYell bool `json:"can_yell"`
}

// Reset zeroes every pool and flag.
func (f *Fighter) Reset() {
	*f = Fighter{}
}

// Defeated reports whether the fighter has run out of health.
func (f *Fighter) Defeated() bool {
	return f.Health <= 0
}

// Outcome describes a resolved move
type Outcome struct {
	Move     MoveType `json:"move"`
	Damage   int      `json:"damage"` // zero when a power move misses
	Landed   bool     `json:"landed"`
	Defeated bool     `json:"defeated"` // defender reached zero health
}
