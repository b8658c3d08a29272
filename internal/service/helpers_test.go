package service

import (
	"sync"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/session"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/storage"
)

type mockArchive struct {
	mu      sync.Mutex
	records []*storage.BattleRecord
	err     error
}

func (m *mockArchive) SaveRecord(rec *storage.BattleRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *mockArchive) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

type fixedRand struct{ n int }

func (r fixedRand) Float64() float64 { return 0 }
func (r fixedRand) Intn(n int) int   { return r.n % n }

func testCharacter(id, company string, t game.ElementType, stats game.StatBlock) game.CharacterDefinition {
	return game.CharacterDefinition{
		ID:      id,
		Name:    "LLM " + id,
		Company: company,
		Type:    t,
		Stats:   stats,
		Moves: []game.MoveDefinition{
			{ID: id + "-hit", Name: "Hit", Type: t, Category: game.CategoryPhysical, Power: 60, Accuracy: 100, PP: 30},
			{ID: id + "-wait", Name: "Wait", Type: t, Category: game.CategoryStatus, Accuracy: 100, PP: 30},
		},
	}
}

func testCatalog() *game.Catalog {
	return game.NewCatalog([]game.CharacterDefinition{
		testCharacter("alpha", "Acme", game.TypeReasoning, game.StatBlock{HP: 40, Attack: 90, Defense: 80, SpecialAttack: 90, SpecialDefense: 80, Speed: 120}),
		testCharacter("beta", "Acme", game.TypeCreative, game.StatBlock{HP: 100, Attack: 100, Defense: 70, SpecialAttack: 120, SpecialDefense: 70, Speed: 60}),
		testCharacter("gamma", "Globex", game.TypeEdgy, game.StatBlock{HP: 45, Attack: 110, Defense: 60, SpecialAttack: 70, SpecialDefense: 60, Speed: 90}),
	})
}

func fixedSeed() (int64, error) { return 7, nil }

func newTestStore() *session.Store {
	return session.NewStore(session.Options{LogTail: 5, Seed: fixedSeed})
}
