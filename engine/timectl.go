package engine

import "heron-engine/heronmg"

// moveTimeBudget derives a per-move time budget in milliseconds from the
// clock arguments of a go command. An explicit movetime wins; otherwise the
// side to move spends remaining/movestogo (defaulting to a fortieth of the
// clock) plus its increment. Returns 0 when no time limit applies.
func moveTimeBudget(limits Limits, sideToMove heronmg.Color) int {
	if limits.MoveTime > 0 {
		return limits.MoveTime
	}
	remaining := limits.WTime
	increment := limits.WInc
	if sideToMove == heronmg.Black {
		remaining = limits.BTime
		increment = limits.BInc
	}
	if remaining <= 0 {
		return 0
	}
	movesLeft := 40
	if limits.MovesToGo > 0 {
		movesLeft = limits.MovesToGo
	}
	budget := remaining/movesLeft + increment
	// Never budget more than the clock actually holds.
	if budget >= remaining {
		budget = remaining / 2
	}
	if budget < 1 {
		budget = 1
	}
	return budget
}
