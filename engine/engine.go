package engine

import (
	"context"
	"errors"

	"riskbattle/game"
)

var (
	// ErrCancelled is returned when the attacker calls off the battle.
	ErrCancelled = errors.New("attack cancelled")
	// ErrNotANumber is returned for an attack size that is not a whole number.
	ErrNotANumber = errors.New("attack size is not a number")
	// ErrAttackOutOfRange is returned for an attack size the attacker cannot commit.
	ErrAttackOutOfRange = errors.New("attack size out of range")
)

// Attacker decides how many units to commit to the next round.
type Attacker interface {
	ChooseAttack(ctx context.Context, state game.BattleState) (int, error)
}

// Outcome summarises a finished or cancelled battle.
type Outcome struct {
	Final     game.BattleState
	Rounds    int
	Conquered bool
}
