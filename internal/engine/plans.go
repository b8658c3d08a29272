package engine

import "github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"

type plannedAction struct {
	side   Side
	actor  *Combatant
	target *Combatant
	move   game.MoveDefinition
}

// order decides who acts first: a lone priority move, then the higher
// current speed, then a coin flip.
func (tc *turnContext) order(pa, pb plannedAction) [2]plannedAction {
	first := func(x, y plannedAction) [2]plannedAction { return [2]plannedAction{x, y} }

	prioA, prioB := HasPriority(pa.move), HasPriority(pb.move)
	switch {
	case prioA && !prioB:
		return first(pa, pb)
	case prioB && !prioA:
		return first(pb, pa)
	}

	sa, sb := pa.actor.current.Speed, pb.actor.current.Speed
	switch {
	case sa > sb:
		return first(pa, pb)
	case sb > sa:
		return first(pb, pa)
	}
	if tc.b.rng.Float64() < 0.5 {
		return first(pa, pb)
	}
	return first(pb, pa)
}
