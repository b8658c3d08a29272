package engine

import (
	"fmt"
	"math"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
)

// Effect is a resolved move side effect. The set of implementations is
// closed: the unexported method keeps other packages from adding variants,
// and ParseEffect is the only way to build one from an authored tag.
type Effect interface {
	Tag() game.EffectTag
	apply(in *EffectInput) string
}

// EffectInput carries everything an effect may touch. Effects only ever
// mutate Attacker and Defender.
type EffectInput struct {
	Attacker *Combatant
	Defender *Combatant
	Move     game.MoveDefinition
	// Damage is what the move dealt this action, 0 for status moves.
	Damage int
	Chart  *TypeChart
	Rand   Rand
}

// ParseEffect maps an authored tag to its effect. The empty tag yields a nil
// effect and no error.
func ParseEffect(tag game.EffectTag) (Effect, error) {
	switch tag {
	case game.EffectNone:
		return nil, nil
	case game.EffectPriority:
		return Priority{}, nil
	case game.EffectLowersAccuracy:
		return LowerAccuracy{Factor: 0.8}, nil
	case game.EffectImmunityToxic:
		return ToxicShield{Turns: 5}, nil
	case game.EffectBoostsDefense:
		return BoostDefense{Factor: 1.2}, nil
	case game.EffectRandomPower:
		return RandomPower{}, nil
	case game.EffectDecreasingPower:
		return DecreasingPower{Factor: 0.9}, nil
	case game.EffectTypeChange:
		return TypeChange{}, nil
	case game.EffectStatBoostAll:
		return BoostAll{Factor: 1.1}, nil
	case game.EffectClearStatus:
		return ClearStatus{}, nil
	case game.EffectConfusion:
		return Confuse{Turns: 3}, nil
	case game.EffectStatusImmunity:
		return StatusShield{Turns: 3}, nil
	case game.EffectRecoil:
		return Recoil{Divisor: 4}, nil
	case game.EffectPowerIncrease:
		return PowerIncrease{Factor: 1.2}, nil
	case game.EffectLearnMove:
		return LearnMove{}, nil
	case game.EffectAdaptiveType:
		return AdaptiveType{}, nil
	case game.EffectReducedPPCost:
		return ReducedPPCost{Turns: 5}, nil
	case game.EffectPPRegeneration:
		return PPRegeneration{}, nil
	case game.EffectMoveRestriction:
		return MoveRestriction{Turns: 2, PowerThreshold: restrictedPowerThreshold}, nil
	case game.EffectRandomFail:
		return RandomFail{Chance: 0.3}, nil
	case game.EffectRandomSwitch:
		return RandomSwitch{Chance: 0.5}, nil
	case game.EffectHighRisk:
		return HighRisk{Factor: 0.8}, nil
	case game.EffectSpeedBoost:
		return SpeedBoost{Factor: 1.3}, nil
	}
	return nil, &UnknownEffectError{Tag: string(tag)}
}

// ApplyEffect resolves tag against the combatants in in. It returns the
// outcome text and true, or "" and false when there is nothing to report
// (absent or unknown tag, or an ordering-only effect).
func ApplyEffect(tag game.EffectTag, in EffectInput) (string, bool) {
	e, err := ParseEffect(tag)
	if err != nil || e == nil {
		return "", false
	}
	if in.Rand == nil {
		in.Rand = DefaultRand()
	}
	out := e.apply(&in)
	return out, out != ""
}

// HasPriority reports whether a move jumps the speed order.
func HasPriority(m game.MoveDefinition) bool {
	return m.Effect == game.EffectPriority
}

// Priority only changes turn order.
type Priority struct{}

func (Priority) Tag() game.EffectTag       { return game.EffectPriority }
func (Priority) apply(*EffectInput) string { return "" }

type LowerAccuracy struct{ Factor float64 }

func (LowerAccuracy) Tag() game.EffectTag { return game.EffectLowersAccuracy }
func (e LowerAccuracy) apply(in *EffectInput) string {
	in.Defender.current.Accuracy *= e.Factor
	return "Accuracy lowered!"
}

type ToxicShield struct{ Turns int }

func (ToxicShield) Tag() game.EffectTag { return game.EffectImmunityToxic }
func (e ToxicShield) apply(in *EffectInput) string {
	in.Attacker.inflict(StatusToxicShield, e.Turns)
	return "Shielded from harmful attacks!"
}

type BoostDefense struct{ Factor float64 }

func (BoostDefense) Tag() game.EffectTag { return game.EffectBoostsDefense }
func (e BoostDefense) apply(in *EffectInput) string {
	in.Attacker.current.Defense *= e.Factor
	return "Defense boosted!"
}

// RandomPower narrates a power roll; the damage itself is not rescaled.
type RandomPower struct{}

func (RandomPower) Tag() game.EffectTag { return game.EffectRandomPower }
func (RandomPower) apply(in *EffectInput) string {
	multiplier := 0.5 + in.Rand.Float64()
	return fmt.Sprintf("Power varied by %d%%!", int(math.Round(multiplier*100)))
}

type DecreasingPower struct{ Factor float64 }

func (DecreasingPower) Tag() game.EffectTag { return game.EffectDecreasingPower }
func (e DecreasingPower) apply(in *EffectInput) string {
	in.Defender.current.Attack *= e.Factor
	in.Defender.current.SpecialAttack *= e.Factor
	return "Opponent's attacks weakened by the token limit!"
}

// TypeChange turns the attacker into the move's type.
type TypeChange struct{}

func (TypeChange) Tag() game.EffectTag { return game.EffectTypeChange }
func (TypeChange) apply(in *EffectInput) string {
	in.Attacker.typ = in.Move.Type
	return fmt.Sprintf("Transformed into %s type!", in.Move.Type)
}

type BoostAll struct{ Factor float64 }

func (BoostAll) Tag() game.EffectTag { return game.EffectStatBoostAll }
func (e BoostAll) apply(in *EffectInput) string {
	s := &in.Attacker.current
	s.Attack *= e.Factor
	s.Defense *= e.Factor
	s.SpecialAttack *= e.Factor
	s.SpecialDefense *= e.Factor
	s.Speed *= e.Factor
	return "All stats boosted by knowledge!"
}

type ClearStatus struct{}

func (ClearStatus) Tag() game.EffectTag { return game.EffectClearStatus }
func (ClearStatus) apply(in *EffectInput) string {
	if in.Attacker.clearStatuses() == 0 {
		return "No status effects to clear."
	}
	return "Status effects cleared!"
}

type Confuse struct{ Turns int }

func (Confuse) Tag() game.EffectTag { return game.EffectConfusion }
func (e Confuse) apply(in *EffectInput) string {
	if !in.Defender.inflict(StatusConfusion, e.Turns) {
		return in.Defender.Name() + " shrugged off the confusion!"
	}
	return "Confused by the roast!"
}

type StatusShield struct{ Turns int }

func (StatusShield) Tag() game.EffectTag { return game.EffectStatusImmunity }
func (e StatusShield) apply(in *EffectInput) string {
	in.Attacker.inflict(StatusShielded, e.Turns)
	return "Immune to status effects!"
}

// Recoil hurts the attacker for a share of the damage it dealt.
type Recoil struct{ Divisor int }

func (Recoil) Tag() game.EffectTag { return game.EffectRecoil }
func (e Recoil) apply(in *EffectInput) string {
	if in.Damage <= 0 {
		return ""
	}
	n := max(1, in.Damage/e.Divisor)
	in.Attacker.TakeDamage(n)
	return fmt.Sprintf("Took %d recoil damage!", n)
}

type PowerIncrease struct{ Factor float64 }

func (PowerIncrease) Tag() game.EffectTag { return game.EffectPowerIncrease }
func (e PowerIncrease) apply(in *EffectInput) string {
	in.Attacker.current.Attack *= e.Factor
	in.Attacker.current.SpecialAttack *= e.Factor
	return "Power increased by community support!"
}

// LearnMove raises the weaker offensive stat to match the stronger one.
type LearnMove struct{}

func (LearnMove) Tag() game.EffectTag { return game.EffectLearnMove }
func (LearnMove) apply(in *EffectInput) string {
	s := &in.Attacker.current
	best := math.Max(s.Attack, s.SpecialAttack)
	s.Attack, s.SpecialAttack = best, best
	return "Learned a new technique!"
}

// AdaptiveType switches the attacker to whichever type the defender's
// current type hits weakest, ties broken by chart order.
type AdaptiveType struct{}

func (AdaptiveType) Tag() game.EffectTag { return game.EffectAdaptiveType }
func (AdaptiveType) apply(in *EffectInput) string {
	if in.Chart == nil {
		return ""
	}
	best := in.Attacker.typ
	bestMult := in.Chart.Lookup(in.Defender.typ, best)
	for _, t := range in.Chart.Types() {
		if m := in.Chart.Lookup(in.Defender.typ, t); m < bestMult {
			best, bestMult = t, m
		}
	}
	in.Attacker.typ = best
	return fmt.Sprintf("Adapted to %s type!", best)
}

type ReducedPPCost struct{ Turns int }

func (ReducedPPCost) Tag() game.EffectTag { return game.EffectReducedPPCost }
func (e ReducedPPCost) apply(in *EffectInput) string {
	in.Attacker.inflict(StatusEfficient, e.Turns)
	return "Moves cost no PP for a while!"
}

type PPRegeneration struct{}

func (PPRegeneration) Tag() game.EffectTag { return game.EffectPPRegeneration }
func (PPRegeneration) apply(in *EffectInput) string {
	in.Attacker.restorePP()
	return "PP fully restored!"
}

// MoveRestriction makes the defender's heavy moves land at half power.
type MoveRestriction struct {
	Turns          int
	PowerThreshold int
}

func (MoveRestriction) Tag() game.EffectTag { return game.EffectMoveRestriction }
func (e MoveRestriction) apply(in *EffectInput) string {
	if !in.Defender.inflict(StatusRestricted, e.Turns) {
		return in.Defender.Name() + " ignored the budget constraints!"
	}
	return "Powerful moves restricted!"
}

type RandomFail struct{ Chance float64 }

func (RandomFail) Tag() game.EffectTag { return game.EffectRandomFail }
func (e RandomFail) apply(in *EffectInput) string {
	s := &in.Attacker.current
	if in.Rand.Float64() < e.Chance {
		s.Attack *= 0.8
		s.SpecialAttack *= 0.8
		return "Legacy code crashed! Offense lowered."
	}
	s.SpecialAttack *= 1.1
	return "Legacy code ran surprisingly well!"
}

type RandomSwitch struct{ Chance float64 }

func (RandomSwitch) Tag() game.EffectTag { return game.EffectRandomSwitch }
func (e RandomSwitch) apply(in *EffectInput) string {
	if in.Rand.Float64() >= e.Chance {
		return "Nothing happened."
	}
	s := &in.Attacker.current
	s.Attack, s.SpecialAttack = s.SpecialAttack, s.Attack
	s.Defense, s.SpecialDefense = s.SpecialDefense, s.Defense
	return "Switched physical and special stats!"
}

type HighRisk struct{ Factor float64 }

func (HighRisk) Tag() game.EffectTag { return game.EffectHighRisk }
func (e HighRisk) apply(in *EffectInput) string {
	in.Attacker.current.Defense *= e.Factor
	in.Attacker.current.SpecialDefense *= e.Factor
	return "Defenses dropped after the all-out attack!"
}

type SpeedBoost struct{ Factor float64 }

func (SpeedBoost) Tag() game.EffectTag { return game.EffectSpeedBoost }
func (e SpeedBoost) apply(in *EffectInput) string {
	in.Attacker.current.Speed *= e.Factor
	return "Speed greatly increased!"
}
