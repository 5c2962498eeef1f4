package engine

import (
	"context"
	"fmt"
	"io"

	"riskbattle/game"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State    game.BattleState
	Resolver *game.Resolver
	Attacker Attacker
	// Out receives the troop totals after every round. Nil disables display.
	Out io.Writer
}

func LocalEngine(attacking, defending int, resolver *game.Resolver, attacker Attacker) *Engine {
	if attacking < 0 || defending < 0 {
		panic("troop counts must be non-negative")
	}
	return &Engine{
		State:    game.BattleState{Attacking: attacking, Defending: defending},
		Resolver: resolver,
		Attacker: attacker,
	}
}

// Run resolves rounds until one side is depleted or the attacker cancels.
// A cancelled battle returns the outcome so far together with ErrCancelled.
func (e *Engine) Run(ctx context.Context) (Outcome, error) {
	if err := e.display(); err != nil {
		return e.outcome(0), err
	}

	rounds := 0
	for !e.State.Over() {
		if err := ctx.Err(); err != nil {
			return e.outcome(rounds), fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		units, err := e.Attacker.ChooseAttack(ctx, e.State)
		if err != nil {
			return e.outcome(rounds), err
		}

		round := e.Resolver.ResolveRound(units, e.State.Defending, e.State.Attacking)
		e.State.Apply(round.RoundResult)
		rounds++

		log.Debug().
			Ints("attacker", round.AttackerRolls).
			Ints("defender", round.DefenderRolls).
			Int("attacker_losses", round.AttackerLosses).
			Int("defender_losses", round.DefenderLosses).
			Msgf("round %d resolved", rounds)

		if err := e.display(); err != nil {
			return e.outcome(rounds), err
		}
	}

	return e.outcome(rounds), nil
}

func (e *Engine) display() error {
	if e.Out == nil {
		return nil
	}
	if _, err := fmt.Fprintln(e.Out, e.State); err != nil {
		return fmt.Errorf("write troop totals: %w", err)
	}
	return nil
}

func (e *Engine) outcome(rounds int) Outcome {
	return Outcome{
		Final:     e.State,
		Rounds:    rounds,
		Conquered: e.State.Conquered(),
	}
}
