package engine

import "github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"

// restrictedPowerThreshold is the base power at which a restricted
// combatant's moves are halved.
const restrictedPowerThreshold = 90

func effectivePower(actor *Combatant, m game.MoveDefinition) int {
	p := m.Power
	if actor.HasStatus(StatusRestricted) && p >= restrictedPowerThreshold {
		p /= 2
	}
	return p
}

// typeMultiplier is the chart entry for the move's type against the
// defender's current type. Only the attacker's side of the chart counts.
func (tc *turnContext) typeMultiplier(m game.MoveDefinition, defender *Combatant) float64 {
	return tc.b.chart.Lookup(m.Type, defender.typ)
}
