package session

import (
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/engine"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
)

// Chooser picks a move ID for one side from its move list.
type Chooser func(moves []game.MoveDefinition, rng engine.Rand) string

// RandomChooser picks uniformly among the legal moves.
func RandomChooser(moves []game.MoveDefinition, rng engine.Rand) string {
	if len(moves) == 0 {
		return ""
	}
	return moves[rng.Intn(len(moves))].ID
}

// Simulate plays a battle to the end, or until maxTurns turns have been
// played, with both sides driven by choose. The battle is only stored once
// the run is over, so nobody can submit turns to it while it plays.
func (s *Store) Simulate(defA, defB game.CharacterDefinition, maxTurns int, choose Chooser) (engine.Snapshot, error) {
	if choose == nil {
		choose = RandomChooser
	}
	e, err := s.newEntry(defA, defB)
	if err != nil {
		return engine.Snapshot{}, err
	}
	b := e.battle
	for !b.Finished() && b.Turn() < maxTurns {
		moveA := choose(b.Moves(engine.SideA), e.rng)
		moveB := choose(b.Moves(engine.SideB), e.rng)
		if _, err := b.ResolveTurn(moveA, moveB); err != nil {
			return engine.Snapshot{}, err
		}
	}
	e.lastActivity = s.now()
	s.insert(e)
	return b.Snapshot(s.logTail), nil
}
