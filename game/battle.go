package game

import "fmt"

// BattleState is the running troop count of both sides.
type BattleState struct {
	Attacking int
	Defending int
}

// Over reports whether the attacker can no longer attack or the defender is wiped out.
func (b BattleState) Over() bool {
	return b.Attacking <= 1 || b.Defending <= 0
}

// Apply subtracts the losses of a round.
func (b *BattleState) Apply(result RoundResult) {
	b.Attacking -= result.AttackerLosses
	b.Defending -= result.DefenderLosses
}

// Conquered reports whether the defender has no troops left.
func (b BattleState) Conquered() bool {
	return b.Defending <= 0
}

// CanAttackWith reports whether units is a legal attack size for the current state.
func (b BattleState) CanAttackWith(units int, rules Rules) bool {
	return units > 0 && units <= rules.MaxAttackTroops() && units < b.Attacking
}

// MaxAttack is the largest legal attack size, 0 if none.
func (b BattleState) MaxAttack(rules Rules) int {
	return max(0, min(rules.MaxAttackTroops(), b.Attacking-1))
}

func (b BattleState) String() string {
	return fmt.Sprintf("A: %d, D: %d", b.Attacking, max(b.Defending, 0))
}
