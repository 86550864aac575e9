package game

import "math/rand"

// Roller produces one roll of two six-sided dice. Injected so tests
// and replays can fix the outcome.
type Roller interface {
	Roll() (int, int)
}

type randRoller struct {
	rng *rand.Rand
}

// NewRoller returns a Roller drawing two independent uniform dice from rng
func NewRoller(rng *rand.Rand) Roller {
	return randRoller{rng}
}

func (r randRoller) Roll() (int, int) {
	return r.rng.Intn(6) + 1, r.rng.Intn(6) + 1
}
