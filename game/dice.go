package game

import (
	"fmt"
	"sort"
	"time"

	"riskbattle/meta"

	"golang.org/x/exp/rand"
)

// Source is the randomness behind a Roller.
type Source interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
}

// Roller rolls six-sided dice from a single random source.
type Roller struct {
	src Source
}

// NewRoller returns a roller seeded with seed, or with the current time if seed is 0.
func NewRoller(seed uint64) *Roller {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Roller{src: rand.New(rand.NewSource(seed))}
}

// NewRollerFromSource wraps an existing source, mostly for tests.
func NewRollerFromSource(src Source) *Roller {
	return &Roller{src: src}
}

// Roll returns n dice, sorted ascending. Panics if n is negative.
func (r *Roller) Roll(n int) []int {
	if n < 0 {
		panic(fmt.Sprintf("cannot roll %d dice", n))
	}
	rolls := make([]int, n)
	for i := range rolls {
		rolls[i] = r.src.Intn(meta.DIE_SIDES) + 1
	}
	sort.Ints(rolls)
	return rolls
}
