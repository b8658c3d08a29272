package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
)

func effectPair() (*Combatant, *Combatant) {
	a := NewCombatant(testCharacter("alpha", game.TypeReasoning, 100, 90))
	d := NewCombatant(testCharacter("beta", game.TypeEdgy, 100, 50))
	return a, d
}

func apply(tag game.EffectTag, a, d *Combatant, damage int, r Rand) string {
	out, _ := ApplyEffect(tag, EffectInput{
		Attacker: a,
		Defender: d,
		Move:     game.MoveDefinition{ID: "m", Name: "M", Type: game.TypeCreative, Power: 100},
		Damage:   damage,
		Chart:    DefaultTypeChart(),
		Rand:     r,
	})
	return out
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestParseEffect(t *testing.T) {
	e, err := ParseEffect(game.EffectNone)
	if err != nil || e != nil {
		t.Fatalf("empty tag should parse to nil, got %v, %v", e, err)
	}
	e, err = ParseEffect(game.EffectConfusion)
	if err != nil || e.Tag() != game.EffectConfusion {
		t.Fatalf("unexpected parse of confusion: %v, %v", e, err)
	}
	_, err = ParseEffect("teleport")
	var ue *UnknownEffectError
	if !errors.As(err, &ue) || ue.Tag != "teleport" {
		t.Fatalf("expected UnknownEffectError, got %v", err)
	}
}

func TestApplyEffect_NoOp(t *testing.T) {
	a, d := effectPair()
	before := a.Stats()
	if out, ok := ApplyEffect(game.EffectNone, EffectInput{Attacker: a, Defender: d}); ok || out != "" {
		t.Fatalf("absent effect should be a no-op, got %q", out)
	}
	if out, ok := ApplyEffect("teleport", EffectInput{Attacker: a, Defender: d}); ok || out != "" {
		t.Fatalf("unknown effect should be a no-op, got %q", out)
	}
	if out, ok := ApplyEffect(game.EffectPriority, EffectInput{Attacker: a, Defender: d}); ok || out != "" {
		t.Fatalf("priority has nothing to report, got %q", out)
	}
	if a.Stats() != before {
		t.Fatalf("no-op effects changed stats")
	}
}

func TestApplyEffect_StatChanges(t *testing.T) {
	cases := []struct {
		tag   game.EffectTag
		text  string
		check func(a, d Stats) bool
	}{
		{game.EffectLowersAccuracy, "Accuracy lowered!", func(a, d Stats) bool { return near(d.Accuracy, 80) }},
		{game.EffectBoostsDefense, "Defense boosted!", func(a, d Stats) bool { return near(a.Defense, 120) }},
		{game.EffectStatBoostAll, "All stats boosted by knowledge!", func(a, d Stats) bool {
			return near(a.Attack, 110) && near(a.Defense, 110) && near(a.SpecialAttack, 110) &&
				near(a.SpecialDefense, 110) && near(a.Speed, 99)
		}},
		{game.EffectDecreasingPower, "", func(a, d Stats) bool { return near(d.Attack, 90) && near(d.SpecialAttack, 90) }},
		{game.EffectPowerIncrease, "", func(a, d Stats) bool { return near(a.Attack, 120) && near(a.SpecialAttack, 120) }},
		{game.EffectHighRisk, "", func(a, d Stats) bool { return near(a.Defense, 80) && near(a.SpecialDefense, 80) }},
		{game.EffectSpeedBoost, "Speed greatly increased!", func(a, d Stats) bool { return near(a.Speed, 117) }},
	}
	for _, c := range cases {
		a, d := effectPair()
		out := apply(c.tag, a, d, 0, fixedRand{0.5})
		if out == "" {
			t.Fatalf("%s: expected outcome text", c.tag)
		}
		if c.text != "" && out != c.text {
			t.Fatalf("%s: expected %q, got %q", c.tag, c.text, out)
		}
		if !c.check(a.Stats(), d.Stats()) {
			t.Fatalf("%s: unexpected stats attacker=%+v defender=%+v", c.tag, a.Stats(), d.Stats())
		}
	}
}

func TestApplyEffect_RandomPowerNarratesOnly(t *testing.T) {
	a, d := effectPair()
	out := apply(game.EffectRandomPower, a, d, 30, fixedRand{0.25})
	if out != "Power varied by 75%!" {
		t.Fatalf("unexpected narration %q", out)
	}
	if d.HP() != 100 {
		t.Fatalf("random power must not change damage")
	}
}

func TestApplyEffect_ConfusionAndShields(t *testing.T) {
	a, d := effectPair()
	if out := apply(game.EffectConfusion, a, d, 0, nil); out != "Confused by the roast!" {
		t.Fatalf("unexpected confusion text %q", out)
	}
	if !d.HasStatus(StatusConfusion) {
		t.Fatalf("defender should be confused")
	}

	a, d = effectPair()
	apply(game.EffectStatusImmunity, d, a, 0, nil)
	apply(game.EffectConfusion, a, d, 0, nil)
	if d.HasStatus(StatusConfusion) {
		t.Fatalf("shielded defender must not be confused")
	}
	apply(game.EffectMoveRestriction, a, d, 0, nil)
	if d.HasStatus(StatusRestricted) {
		t.Fatalf("shielded defender must not be restricted")
	}

	a, d = effectPair()
	apply(game.EffectImmunityToxic, a, d, 0, nil)
	if !a.HasStatus(StatusToxicShield) {
		t.Fatalf("attacker should hold the toxic shield")
	}
	if out := apply(game.EffectClearStatus, a, d, 0, nil); out != "Status effects cleared!" || len(a.Statuses()) != 0 {
		t.Fatalf("clear status failed: %q %v", out, a.Statuses())
	}
}

func TestApplyEffect_StatusDurationsTick(t *testing.T) {
	a, d := effectPair()
	apply(game.EffectConfusion, a, d, 0, nil)
	for i := 0; i < 2; i++ {
		d.tickStatuses()
	}
	if !d.HasStatus(StatusConfusion) {
		t.Fatalf("confusion should last 3 turns")
	}
	d.tickStatuses()
	if d.HasStatus(StatusConfusion) {
		t.Fatalf("confusion should expire after 3 turns")
	}
}

func TestApplyEffect_Recoil(t *testing.T) {
	a, d := effectPair()
	if out := apply(game.EffectRecoil, a, d, 40, nil); out != "Took 10 recoil damage!" {
		t.Fatalf("unexpected recoil text %q", out)
	}
	if a.HP() != 90 {
		t.Fatalf("expected attacker at 90, got %d", a.HP())
	}
	apply(game.EffectRecoil, a, d, 2, nil)
	if a.HP() != 89 {
		t.Fatalf("recoil should be at least 1, got HP %d", a.HP())
	}
	if out := apply(game.EffectRecoil, a, d, 0, nil); out != "" {
		t.Fatalf("no damage, no recoil; got %q", out)
	}
}

func TestApplyEffect_Types(t *testing.T) {
	a, d := effectPair()
	apply(game.EffectTypeChange, a, d, 0, nil)
	if a.Type() != game.TypeCreative {
		t.Fatalf("expected type change to creative, got %s", a.Type())
	}

	a, d = effectPair()
	a.typ = game.TypeSpeed
	apply(game.EffectAdaptiveType, a, d, 0, nil)
	// edgy does the least against reasoning (0.7)
	if a.Type() != game.TypeReasoning {
		t.Fatalf("expected adaptive type reasoning, got %s", a.Type())
	}
	if a.Definition().Type != game.TypeReasoning {
		t.Fatalf("definition type must not change")
	}
}

func TestApplyEffect_PP(t *testing.T) {
	a, d := effectPair()
	a.spendPP("strike")
	a.spendPP("strike")
	apply(game.EffectPPRegeneration, a, d, 0, nil)
	if a.PP("strike") != 10 {
		t.Fatalf("expected PP restored to 10, got %d", a.PP("strike"))
	}
	apply(game.EffectReducedPPCost, a, d, 0, nil)
	a.spendPP("strike")
	if a.PP("strike") != 10 {
		t.Fatalf("efficient combatant should not spend PP")
	}
}

func TestApplyEffect_RandomOutcomes(t *testing.T) {
	a, d := effectPair()
	apply(game.EffectRandomFail, a, d, 0, fixedRand{0.1})
	if !near(a.Stats().Attack, 80) || !near(a.Stats().SpecialAttack, 80) {
		t.Fatalf("failed legacy run should lower offense: %+v", a.Stats())
	}
	a, d = effectPair()
	apply(game.EffectRandomFail, a, d, 0, fixedRand{0.9})
	if !near(a.Stats().SpecialAttack, 110) || !near(a.Stats().Attack, 100) {
		t.Fatalf("lucky legacy run should raise special attack: %+v", a.Stats())
	}

	a, d = effectPair()
	a.current.Attack, a.current.Defense = 150, 60
	apply(game.EffectRandomSwitch, a, d, 0, fixedRand{0.2})
	s := a.Stats()
	if s.Attack != 100 || s.SpecialAttack != 150 || s.Defense != 100 || s.SpecialDefense != 60 {
		t.Fatalf("expected swapped stats, got %+v", s)
	}

	a, d = effectPair()
	a.current.SpecialAttack = 140
	apply(game.EffectLearnMove, a, d, 0, nil)
	if a.Stats().Attack != 140 {
		t.Fatalf("weaker offensive stat should rise to 140, got %v", a.Stats().Attack)
	}
}

func TestEffectivePower_Restricted(t *testing.T) {
	a := NewCombatant(testCharacter("alpha", game.TypeCreative, 100, 90))
	heavy := game.MoveDefinition{Power: 120}
	light := game.MoveDefinition{Power: 60}
	a.inflict(StatusRestricted, 2)
	if p := effectivePower(a, heavy); p != 60 {
		t.Fatalf("expected heavy move halved to 60, got %d", p)
	}
	if p := effectivePower(a, light); p != 60 {
		t.Fatalf("light move should be unaffected, got %d", p)
	}
}
