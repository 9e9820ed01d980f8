package world

import "math/rand/v2"

// Roller is the source of combat randomness. It is injected so tests can
// script outcomes.
type Roller interface {
	// IntN returns a uniformly distributed integer in [0, n).
	IntN(n int) int
}

type randRoller struct{}

func (randRoller) IntN(n int) int {
	return rand.IntN(n)
}

// NewRoller returns the production Roller.
func NewRoller() Roller {
	return randRoller{}
}
