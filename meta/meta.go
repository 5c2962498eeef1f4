// meta/meta.go
package meta

// DIE_SIDES defines the number of faces on every die.
const DIE_SIDES = 6

// MAX_ATTACK_DICE defines how many units the attacker can commit to one round.
const MAX_ATTACK_DICE = 3

// MAX_DEFEND_DICE defines how many units the defender can commit to one round.
const MAX_DEFEND_DICE = 2

// DEFAULT_ATTACK defines the remembered attack size at the start of a battle.
const DEFAULT_ATTACK = 1

// ODDS_BATTLES defines the number of battles simulated by the odds experiment.
const ODDS_BATTLES = 10000
