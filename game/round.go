package game

import (
	"fmt"
	"math"
)

// RoundResult holds the troops each side lost in one round.
type RoundResult struct {
	AttackerLosses int
	DefenderLosses int
}

// Pairings is the number of die comparisons the round was made of.
func (r RoundResult) Pairings() int {
	return r.AttackerLosses + r.DefenderLosses
}

// Round is a resolved round together with the dice that decided it.
type Round struct {
	AttackerRolls []int
	DefenderRolls []int
	RoundResult
}

// Resolver rolls and resolves combat rounds under a set of rules.
type Resolver struct {
	Rules  Rules
	Roller *Roller
}

func NewResolver(rules Rules, roller *Roller) *Resolver {
	return &Resolver{
		Rules:  rules,
		Roller: roller,
	}
}

// Resolve rolls attackingUnits and defendingUnits dice and compares them.
// Unit counts outside [0, max dice] are a programming error and panic.
func (r *Resolver) Resolve(attackingUnits, defendingUnits int) Round {
	if attackingUnits < 0 || attackingUnits > r.Rules.MaxAttackTroops() {
		panic(fmt.Sprintf("invalid attacking units: %d", attackingUnits))
	}
	if defendingUnits < 0 || defendingUnits > r.Rules.MaxDefendTroops(math.MaxInt) {
		panic(fmt.Sprintf("invalid defending units: %d", defendingUnits))
	}

	attackerRolls := r.Roller.Roll(attackingUnits)
	defenderRolls := r.Roller.Roll(defendingUnits)

	return Round{
		AttackerRolls: attackerRolls,
		DefenderRolls: defenderRolls,
		RoundResult:   r.Rules.DetermineAttackOutcome(attackerRolls, defenderRolls),
	}
}

// ResolveRound commits attackingUnits against as many defenders as the rules
// allow for defendingTotal. The attacker must keep at least one troop behind.
func (r *Resolver) ResolveRound(attackingUnits, defendingTotal, attackingTotal int) Round {
	if attackingUnits < 1 || attackingUnits >= attackingTotal {
		panic(fmt.Sprintf("cannot attack with %d of %d troops", attackingUnits, attackingTotal))
	}
	if defendingTotal < 1 {
		panic(fmt.Sprintf("cannot defend with %d troops", defendingTotal))
	}
	return r.Resolve(attackingUnits, r.Rules.MaxDefendTroops(defendingTotal))
}
