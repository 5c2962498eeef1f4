package game

type Rules interface {
	MaxAttackTroops() int
	// MaxDefendTroops is the number of units the defender commits given its total.
	MaxDefendTroops(defendingTotal int) int
	// DetermineAttackOutcome compares ascending roll sets from the highest die down.
	DetermineAttackOutcome(attackerRolls, defenderRolls []int) RoundResult
}
