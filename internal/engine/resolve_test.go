package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
)

func TestResolveTurn_BasicAttacks(t *testing.T) {
	b := newTestBattle(
		testCharacter("alpha", game.TypeCreative, 200, 90),
		testCharacter("beta", game.TypeCreative, 200, 50),
		NewRand(1),
	)

	res, err := b.ResolveTurn("strike", "strike")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Turn != 1 || b.Turn() != 1 {
		t.Fatalf("expected turn 1, got result %d battle %d", res.Turn, b.Turn())
	}
	if res.First.Side != SideA {
		t.Fatalf("faster side should act first, got %s", res.First.Side)
	}
	if res.Second == nil || res.Second.Side != SideB {
		t.Fatalf("expected a second action from %s, got %+v", SideB, res.Second)
	}
	if b.b.HP() >= 200 || b.a.HP() >= 200 {
		t.Fatalf("expected both sides to take damage, got %d and %d", b.a.HP(), b.b.HP())
	}
	if res.First.DefenderHP != b.b.HP() {
		t.Fatalf("first action reports defender HP %d, battle has %d", res.First.DefenderHP, b.b.HP())
	}
	if b.Phase() != PhaseAwaitingMoves || b.Status() != BattleActive {
		t.Fatalf("expected active battle awaiting moves, got %s/%s", b.Status(), b.Phase())
	}
	if b.a.PP("strike") != 9 {
		t.Fatalf("expected strike PP 9, got %d", b.a.PP("strike"))
	}

	log := b.Log()
	if len(log) != 4 || log[0] != "alpha used Strike!" {
		t.Fatalf("unexpected log: %v", log)
	}
}

func TestResolveTurn_PriorityBeatsSpeed(t *testing.T) {
	b := newTestBattle(
		testCharacter("alpha", game.TypeCreative, 200, 150),
		testCharacter("beta", game.TypeCreative, 200, 10),
		NewRand(1),
	)
	res, err := b.ResolveTurn("strike", "quick")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.First.Side != SideB {
		t.Fatalf("priority move should go first, got %s", res.First.Side)
	}
}

func TestResolveTurn_SpeedTieUsesRand(t *testing.T) {
	for _, c := range []struct {
		draw float64
		want Side
	}{{0.1, SideA}, {0.9, SideB}} {
		b := newTestBattle(
			testCharacter("alpha", game.TypeCreative, 200, 80),
			testCharacter("beta", game.TypeCreative, 200, 80),
			fixedRand{c.draw},
		)
		res, err := b.ResolveTurn("guard", "guard")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.First.Side != c.want {
			t.Fatalf("draw %v: expected %s first, got %s", c.draw, c.want, res.First.Side)
		}
	}
}

func TestResolveTurn_DefenseBoost(t *testing.T) {
	b := newTestBattle(
		testCharacter("alpha", game.TypeCreative, 200, 90),
		testCharacter("beta", game.TypeCreative, 200, 50),
		NewRand(3),
	)
	res, err := b.ResolveTurn("guard", "guard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.First.Damage != 0 || res.First.Effect != "Defense boosted!" {
		t.Fatalf("unexpected status move result: %+v", res.First)
	}
	if d := b.a.Stats().Defense; math.Abs(d-120) > 1e-9 {
		t.Fatalf("expected defense 120, got %v", d)
	}
	if b.a.HP() != 200 || b.b.HP() != 200 {
		t.Fatalf("status moves must not deal damage")
	}
	want := []string{"alpha used Guard!", "Defense boosted!", "beta used Guard!", "Defense boosted!"}
	log := b.Log()
	if len(log) != len(want) {
		t.Fatalf("expected %d log lines, got %v", len(want), log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log line %d: expected %q, got %q", i, want[i], log[i])
		}
	}
}

func TestResolveTurn_DefenseBoostAppliesToLaterHit(t *testing.T) {
	slam := game.MoveDefinition{ID: "slam", Name: "Slam", Type: game.TypeCreative, Category: game.CategoryPhysical, Power: 90, Accuracy: 100, PP: 10}
	cases := []struct {
		draw    float64
		first   Side
		defense float64
	}{
		{0.0, SideA, 120},
		{0.9, SideB, 100},
	}
	for _, c := range cases {
		a := testCharacter("alpha", game.TypeCreative, 300, 80)
		bDef := testCharacter("beta", game.TypeCreative, 300, 80)
		bDef.Moves = append(bDef.Moves, slam)
		b := newTestBattle(a, bDef, fixedRand{c.draw})

		res, err := b.ResolveTurn("guard", "slam")
		if err != nil {
			t.Fatalf("draw %v: unexpected error: %v", c.draw, err)
		}
		if res.First.Side != c.first || res.Second == nil {
			t.Fatalf("draw %v: expected %s first with two actions, got %+v", c.draw, c.first, res)
		}
		hit := res.First
		if hit.Side != SideB {
			hit = *res.Second
		}
		def := 100.0
		if c.first == SideA {
			def = b.a.Stats().Defense
		}
		if math.Abs(def-c.defense) > 1e-9 {
			t.Fatalf("draw %v: expected defense %v at the time of the hit, got %v", c.draw, c.defense, def)
		}
		mult := DefaultTypeChart().Lookup(game.TypeCreative, game.TypeCreative)
		r := minRandomFactor + c.draw*randomFactorSpan
		want := int(math.Floor(((2.0*Level+10)/250.0*(100.0/def)*90 + 2) * mult * r))
		if hit.Damage != want {
			t.Fatalf("draw %v: expected %d damage against defense %v, got %d", c.draw, want, c.defense, hit.Damage)
		}
		if hit.Effectiveness != mult {
			t.Fatalf("draw %v: expected effectiveness %v, got %v", c.draw, mult, hit.Effectiveness)
		}
		guard := res.First
		if guard.Side != SideA {
			guard = *res.Second
		}
		if guard.Damage != 0 || guard.Effectiveness != 0 {
			t.Fatalf("status move must report no damage and no multiplier, got %+v", guard)
		}
	}
}

func TestResolveTurn_KnockoutFinishesBattle(t *testing.T) {
	b := newTestBattle(
		testCharacter("alpha", game.TypeCreative, 200, 90),
		testCharacter("beta", game.TypeCreative, 5, 50),
		NewRand(5),
	)
	res, err := b.ResolveTurn("strike", "strike")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.First.Fainted || res.First.DefenderHP != 0 {
		t.Fatalf("expected beta to faint at 0 HP, got %+v", res.First)
	}
	if res.Second != nil {
		t.Fatalf("fainted side must not act")
	}
	if res.Status != BattleFinished || res.Winner != SideA || b.Winner() != SideA {
		t.Fatalf("expected finished with winner %s, got %s/%s", SideA, res.Status, res.Winner)
	}
	if b.Phase() != PhaseFinished {
		t.Fatalf("expected finished phase, got %s", b.Phase())
	}
	if b.a.HP() != 200 {
		t.Fatalf("winner should be untouched, got %d", b.a.HP())
	}

	_, err = b.ResolveTurn("strike", "strike")
	if !errors.Is(err, ErrInactiveSession) {
		t.Fatalf("expected ErrInactiveSession, got %v", err)
	}
	if b.Turn() != 1 || b.Winner() != SideA {
		t.Fatalf("finished battle changed: turn %d winner %s", b.Turn(), b.Winner())
	}
}

func TestResolveTurn_RecoilKnockout(t *testing.T) {
	b := newTestBattle(
		testCharacter("alpha", game.TypeCreative, 1, 90),
		testCharacter("beta", game.TypeCreative, 500, 50),
		NewRand(9),
	)
	res, err := b.ResolveTurn("reckless", "strike")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.a.Fainted() {
		t.Fatalf("expected recoil to knock out the attacker")
	}
	if b.Winner() != SideB || res.Winner != SideB {
		t.Fatalf("expected %s to win on recoil, got %s", SideB, b.Winner())
	}
	if res.Second != nil {
		t.Fatalf("battle ended, second action must be skipped")
	}
}

func TestResolveTurn_InvalidMoveLeavesStateUntouched(t *testing.T) {
	b := newTestBattle(
		testCharacter("alpha", game.TypeCreative, 200, 90),
		testCharacter("beta", game.TypeCreative, 200, 50),
		NewRand(1),
	)
	_, err := b.ResolveTurn("strike", "does-not-exist")
	var me *InvalidMoveError
	if !errors.As(err, &me) {
		t.Fatalf("expected InvalidMoveError, got %v", err)
	}
	if me.Side != SideB || me.MoveID != "does-not-exist" {
		t.Fatalf("unexpected error detail: %+v", me)
	}
	if b.a.HP() != 200 || b.b.HP() != 200 || b.Turn() != 0 || len(b.Log()) != 0 {
		t.Fatalf("state changed after rejected turn")
	}
	if b.a.PP("strike") != 10 {
		t.Fatalf("PP spent on rejected turn")
	}
}

func TestResolveTurn_InvalidStatRollsBack(t *testing.T) {
	b := newTestBattle(
		testCharacter("alpha", game.TypeCreative, 200, 90),
		testCharacter("beta", game.TypeCreative, 200, 50),
		NewRand(1),
	)
	b.b.current.Defense = 0
	_, err := b.ResolveTurn("strike", "strike")
	var se *InvalidStatError
	if !errors.As(err, &se) {
		t.Fatalf("expected InvalidStatError, got %v", err)
	}
	if b.Turn() != 0 || len(b.Log()) != 0 || b.b.HP() != 200 {
		t.Fatalf("state changed after failed turn")
	}
}

func TestResolveTurn_HealthStaysInBounds(t *testing.T) {
	b := newTestBattle(
		testCharacter("alpha", game.TypeReasoning, 120, 90),
		testCharacter("beta", game.TypeEdgy, 120, 50),
		NewRand(11),
	)
	moves := []string{"strike", "guard", "quick", "reckless"}
	for i := 0; i < 100 && !b.Finished(); i++ {
		if _, err := b.ResolveTurn(moves[i%4], moves[(i+1)%4]); err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
		for _, c := range []*Combatant{b.a, b.b} {
			if c.HP() < 0 || c.HP() > c.MaxHP() {
				t.Fatalf("turn %d: %s health %d outside [0, %d]", i, c.Name(), c.HP(), c.MaxHP())
			}
		}
	}
	if !b.Finished() {
		t.Fatalf("expected the battle to finish within 100 turns")
	}
	s := b.Snapshot(10)
	if len(s.Log) > 10 {
		t.Fatalf("snapshot tail too long: %d", len(s.Log))
	}
	if s.Winner == "" || s.Status != BattleFinished {
		t.Fatalf("finished battle must have a winner")
	}
}

func TestCombatant_DoesNotTouchDefinition(t *testing.T) {
	def := testCharacter("alpha", game.TypeCreative, 100, 90)
	c := NewCombatant(def)
	c.TakeDamage(40)
	c.current.Attack = 1
	c.def.Moves[0].Name = "changed"
	if def.Stats.HP != 100 || def.Moves[0].Name != "Strike" {
		t.Fatalf("definition mutated through combatant")
	}
	c.Heal(500)
	if c.HP() != 100 {
		t.Fatalf("heal should cap at base HP, got %d", c.HP())
	}
	if c.TakeDamage(1000) != true || c.HP() != 0 {
		t.Fatalf("damage should floor at 0")
	}
}
