package game

import "riskbattle/meta"

type StandardRules struct {
	MaxAttackDice int
	MaxDefendDice int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		MaxAttackDice: meta.MAX_ATTACK_DICE,
		MaxDefendDice: meta.MAX_DEFEND_DICE,
	}
}

func (sr *StandardRules) MaxAttackTroops() int {
	return sr.MaxAttackDice
}

func (sr *StandardRules) MaxDefendTroops(defendingTotal int) int {
	if defendingTotal > 1 {
		return sr.MaxDefendDice
	}
	return 1
}

// DetermineAttackOutcome pairs the highest remaining die of each side until
// one side runs out. The defender wins ties.
func (sr *StandardRules) DetermineAttackOutcome(attackerRolls, defenderRolls []int) RoundResult {
	var result RoundResult
	a, d := len(attackerRolls)-1, len(defenderRolls)-1
	for ; a >= 0 && d >= 0; a, d = a-1, d-1 {
		if attackerRolls[a] > defenderRolls[d] {
			result.DefenderLosses++
		} else {
			result.AttackerLosses++
		}
	}
	return result
}
