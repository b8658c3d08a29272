package engine

import (
	"fmt"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
)

// execAction performs one side's move: damage, PP, effect, and the log lines
// that describe them.
func (tc *turnContext) execAction(p plannedAction) (ActionResult, error) {
	res := ActionResult{
		Side:      p.side,
		Character: p.actor.Name(),
		Move:      p.move.Name,
		MoveID:    p.move.ID,
	}

	if p.move.Category != game.CategoryStatus {
		mult := tc.typeMultiplier(p.move, p.target)
		atk, def := p.actor.offense(p.move.Category, p.target)
		dmg, err := ComputeDamage(Level, atk, def, effectivePower(p.actor, p.move), mult, tc.b.rng)
		if err != nil {
			return ActionResult{}, err
		}
		res.Damage = dmg
		res.Effectiveness = mult
		if p.target.TakeDamage(dmg) {
			tc.b.declareWinner(p.side)
		}
	}
	p.actor.spendPP(p.move.ID)

	if text, ok := ApplyEffect(p.move.Effect, EffectInput{
		Attacker: p.actor,
		Defender: p.target,
		Move:     p.move,
		Damage:   res.Damage,
		Chart:    tc.b.chart,
		Rand:     tc.b.rng,
	}); ok {
		res.Effect = text
	}
	// recoil can knock out the attacker
	if p.actor.Fainted() {
		tc.b.declareWinner(p.side.Opponent())
	}

	res.DefenderHP = p.target.HP()
	res.DefenderHPPercent = p.target.HPPercent()
	res.Fainted = p.target.Fainted()

	tc.add(fmt.Sprintf("%s used %s!", p.actor.Name(), p.move.Name))
	if res.Damage > 0 {
		tc.add(fmt.Sprintf("Dealt %d damage!", res.Damage))
	}
	if res.Effect != "" {
		tc.add(res.Effect)
	}
	return res, nil
}
