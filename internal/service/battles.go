package service

import (
	"fmt"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/constants"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/engine"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/logging"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/session"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/storage"
)

// BattleStore is the part of session.Store the use cases need.
type BattleStore interface {
	Create(defA, defB game.CharacterDefinition) (string, error)
	Get(id string) (engine.Snapshot, error)
	SubmitTurn(id, moveA, moveB string) (engine.TurnResult, engine.Snapshot, error)
	List() []engine.Summary
	Simulate(defA, defB game.CharacterDefinition, maxTurns int, choose session.Chooser) (engine.Snapshot, error)
}

// RecordArchive stores finished battles. A nil archive disables archiving.
type RecordArchive interface {
	SaveRecord(rec *storage.BattleRecord) error
}

// StartBattle creates a battle between two catalog characters. Unknown IDs
// are reported as ErrInvalidCharacters wrapping the lookup error.
func StartBattle(cat *game.Catalog, store BattleStore, player1ID, player2ID string) (engine.Snapshot, error) {
	defA, err := cat.Get(player1ID)
	if err != nil {
		return engine.Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidCharacters, err)
	}
	defB, err := cat.Get(player2ID)
	if err != nil {
		return engine.Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidCharacters, err)
	}
	id, err := store.Create(defA, defB)
	if err != nil {
		return engine.Snapshot{}, err
	}
	logging.Info("battle started", logging.Fields{
		constants.LogFieldBattleID:    id,
		constants.LogFieldCharacterID: defA.ID,
		constants.LogFieldOpponentID:  defB.ID,
	})
	return store.Get(id)
}

// SubmitTurn resolves a turn and archives the battle when it ends.
func SubmitTurn(store BattleStore, archive RecordArchive, battleID, move1ID, move2ID string) (engine.TurnResult, engine.Snapshot, error) {
	res, snap, err := store.SubmitTurn(battleID, move1ID, move2ID)
	if err != nil {
		return engine.TurnResult{}, engine.Snapshot{}, err
	}
	if res.Status == engine.BattleFinished {
		logging.Info("battle finished", logging.Fields{
			constants.LogFieldBattleID: battleID,
			constants.LogFieldTurn:     res.Turn,
			constants.LogFieldWinner:   string(res.Winner),
		})
		archiveBattle(archive, snap, storage.SourceManual)
	}
	return res, snap, nil
}

// RunAIBattle plays a full battle with random moves on both sides. A missing
// or unknown ID is replaced by a random character. rng drives those picks;
// the battle itself uses its own seeded source.
func RunAIBattle(cat *game.Catalog, store BattleStore, archive RecordArchive, llm1ID, llm2ID string, maxTurns int, rng engine.Rand) (engine.Snapshot, error) {
	if cat.Len() == 0 {
		return engine.Snapshot{}, ErrEmptyCatalog
	}
	if rng == nil {
		rng = engine.DefaultRand()
	}
	if maxTurns <= 0 {
		maxTurns = constants.DefaultAIMaxTurns
	}
	defA := pickOrRandom(cat, llm1ID, rng)
	defB := pickOrRandom(cat, llm2ID, rng)
	snap, err := store.Simulate(defA, defB, maxTurns, session.RandomChooser)
	if err != nil {
		return engine.Snapshot{}, err
	}
	logging.Info("ai battle completed", logging.Fields{
		constants.LogFieldBattleID: snap.ID,
		constants.LogFieldTurn:     snap.TurnCount,
		constants.LogFieldWinner:   string(snap.Winner),
	})
	archiveBattle(archive, snap, storage.SourceAI)
	return snap, nil
}

func pickOrRandom(cat *game.Catalog, id string, rng engine.Rand) game.CharacterDefinition {
	if id != "" {
		if def, err := cat.Get(id); err == nil {
			return def
		}
	}
	all := cat.All()
	return all[rng.Intn(len(all))]
}

func recordFromSnapshot(snap engine.Snapshot, source string) *storage.BattleRecord {
	rec := &storage.BattleRecord{
		BattleID:    snap.ID,
		Player1ID:   snap.Player1.ID,
		Player1Name: snap.Player1.Name,
		Player2ID:   snap.Player2.ID,
		Player2Name: snap.Player2.Name,
		WinnerSide:  string(snap.Winner),
		Turns:       snap.TurnCount,
		Source:      source,
		StartedAt:   snap.CreatedAt,
	}
	switch snap.Winner {
	case engine.SideA:
		rec.WinnerID = snap.Player1.ID
	case engine.SideB:
		rec.WinnerID = snap.Player2.ID
	}
	return rec
}

// archiveBattle failures are logged, never returned: the battle itself
// already finished and the caller still gets its result.
func archiveBattle(archive RecordArchive, snap engine.Snapshot, source string) {
	if archive == nil {
		return
	}
	if err := archive.SaveRecord(recordFromSnapshot(snap, source)); err != nil {
		logging.Error("failed to archive battle", err, logging.Fields{constants.LogFieldBattleID: snap.ID})
	}
}
