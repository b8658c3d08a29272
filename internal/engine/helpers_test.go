package engine

import "github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"

// fixedRand always returns the same draw.
type fixedRand struct{ f float64 }

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(int) int     { return 0 }

func testMoves() []game.MoveDefinition {
	return []game.MoveDefinition{
		{ID: "strike", Name: "Strike", Type: game.TypeReasoning, Category: game.CategoryPhysical, Power: 80, Accuracy: 100, PP: 10},
		{ID: "guard", Name: "Guard", Type: game.TypeReasoning, Category: game.CategoryStatus, Accuracy: 100, PP: 5, Effect: game.EffectBoostsDefense},
		{ID: "quick", Name: "Quick Reply", Type: game.TypeSpeed, Category: game.CategoryPhysical, Power: 40, Accuracy: 100, PP: 20, Effect: game.EffectPriority},
		{ID: "reckless", Name: "Reckless", Type: game.TypeEdgy, Category: game.CategorySpecial, Power: 100, Accuracy: 100, PP: 5, Effect: game.EffectRecoil},
	}
}

func testCharacter(id string, t game.ElementType, hp, speed int) game.CharacterDefinition {
	return game.CharacterDefinition{
		ID:      id,
		Name:    id,
		Company: "Test Labs",
		Type:    t,
		Stats: game.StatBlock{
			HP: hp, Attack: 100, Defense: 100, SpecialAttack: 100, SpecialDefense: 100, Speed: speed,
		},
		Moves: testMoves(),
	}
}

func newTestBattle(a, b game.CharacterDefinition, r Rand) *Battle {
	return NewBattle("battle-1", a, b, DefaultTypeChart(), r)
}
