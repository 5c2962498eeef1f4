package engine

import (
	"context"

	"riskbattle/game"
)

// MaxAttacker always commits as many units as the rules and its troops allow.
type MaxAttacker struct {
	Rules game.Rules
}

func (a MaxAttacker) ChooseAttack(_ context.Context, state game.BattleState) (int, error) {
	return state.MaxAttack(a.Rules), nil
}

// FixedAttacker commits Units every round, or fewer when its troops run low.
type FixedAttacker struct {
	Rules game.Rules
	Units int
}

func (a FixedAttacker) ChooseAttack(_ context.Context, state game.BattleState) (int, error) {
	return max(1, min(a.Units, state.MaxAttack(a.Rules))), nil
}
