package service

import (
	"errors"
	"testing"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/engine"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/storage"
)

func TestStartBattle_UnknownCharacter(t *testing.T) {
	_, err := StartBattle(testCatalog(), newTestStore(), "alpha", "nobody")
	if !errors.Is(err, ErrInvalidCharacters) {
		t.Fatalf("expected ErrInvalidCharacters, got %v", err)
	}
	var nf *game.NotFoundError
	if !errors.As(err, &nf) || nf.ID != "nobody" {
		t.Fatalf("expected wrapped NotFoundError, got %v", err)
	}
}

func TestSubmitTurn_ArchivesFinishedBattleOnce(t *testing.T) {
	store := newTestStore()
	archive := &mockArchive{}
	snap, err := StartBattle(testCatalog(), store, "alpha", "gamma")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if snap.Status != engine.BattleActive {
		t.Fatalf("new battle should be active, got %s", snap.Status)
	}

	var last engine.Snapshot
	for i := 0; i < 50; i++ {
		res, s, err := SubmitTurn(store, archive, snap.ID, "alpha-hit", "gamma-hit")
		if err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
		last = s
		if res.Status == engine.BattleFinished {
			break
		}
	}
	if last.Status != engine.BattleFinished {
		t.Fatalf("battle did not finish")
	}
	if archive.count() != 1 {
		t.Fatalf("expected 1 archived record, got %d", archive.count())
	}
	rec := archive.records[0]
	if rec.BattleID != snap.ID || rec.Source != storage.SourceManual || rec.WinnerID == "" {
		t.Fatalf("unexpected record %+v", rec)
	}

	_, _, err = SubmitTurn(store, archive, snap.ID, "alpha-hit", "gamma-hit")
	if !errors.Is(err, engine.ErrInactiveSession) {
		t.Fatalf("expected ErrInactiveSession, got %v", err)
	}
	if archive.count() != 1 {
		t.Fatalf("rejected turn must not archive again")
	}
}

func TestSubmitTurn_ArchiveFailureIsNotReturned(t *testing.T) {
	store := newTestStore()
	archive := &mockArchive{err: errors.New("disk full")}
	snap, err := StartBattle(testCatalog(), store, "alpha", "gamma")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 50; i++ {
		res, _, err := SubmitTurn(store, archive, snap.ID, "alpha-hit", "gamma-hit")
		if err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
		if res.Status == engine.BattleFinished {
			return
		}
	}
	t.Fatalf("battle did not finish")
}

func TestRunAIBattle_RandomCharacterForUnknownID(t *testing.T) {
	store := newTestStore()
	archive := &mockArchive{}
	snap, err := RunAIBattle(testCatalog(), store, archive, "alpha", "ghost", 50, fixedRand{n: 1})
	if err != nil {
		t.Fatalf("ai battle: %v", err)
	}
	if snap.Player1.ID != "alpha" || snap.Player2.ID != "beta" {
		t.Fatalf("unexpected players %s vs %s", snap.Player1.ID, snap.Player2.ID)
	}
	if snap.TurnCount < 1 || snap.TurnCount > 50 {
		t.Fatalf("turn count out of range: %d", snap.TurnCount)
	}
	if _, err := store.Get(snap.ID); err != nil {
		t.Fatalf("ai battle should be stored: %v", err)
	}
	if archive.count() != 1 || archive.records[0].Source != storage.SourceAI {
		t.Fatalf("expected one ai record, got %+v", archive.records)
	}
}

func TestRunAIBattle_TurnCeilingIsDraw(t *testing.T) {
	archive := &mockArchive{}
	snap, err := RunAIBattle(testCatalog(), newTestStore(), archive, "beta", "beta", 1, nil)
	if err != nil {
		t.Fatalf("ai battle: %v", err)
	}
	if snap.TurnCount != 1 {
		t.Fatalf("expected the run to stop after 1 turn, got %d", snap.TurnCount)
	}
	if snap.Status == engine.BattleActive && archive.records[0].WinnerID != "" {
		t.Fatalf("unfinished battle must be archived without a winner")
	}
}

func TestRunAIBattle_EmptyCatalog(t *testing.T) {
	_, err := RunAIBattle(game.NewCatalog(nil), newTestStore(), nil, "", "", 10, nil)
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}
