package service

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/constants"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/dedupe"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/engine"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/keys"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/logging"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/session"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/storage"
)

// TournamentStanding is one character's tally across a tournament.
type TournamentStanding struct {
	CharacterID string `json:"characterId"`
	Name        string `json:"name"`
	Played      int    `json:"played"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Draws       int    `json:"draws"`
}

type TournamentResult struct {
	Rounds    int                  `json:"rounds"`
	Battles   int                  `json:"battles"`
	Draws     int                  `json:"draws"`
	Champion  string               `json:"champion,omitempty"`
	Standings []TournamentStanding `json:"standings"`
}

// RunTournament plays every pairing of the catalog rounds times with random
// moves. Battles run concurrently; identical requests made while one is in
// flight share its result. A caller whose ctx ends gets ctx.Err() while the
// run itself keeps going for the others.
func RunTournament(ctx context.Context, cat *game.Catalog, store BattleStore, archive RecordArchive, rounds, maxTurns int) (*TournamentResult, error) {
	if rounds < 1 || rounds > constants.MaxTournamentRounds {
		return nil, fmt.Errorf("%w: must be between 1 and %d", ErrInvalidRounds, constants.MaxTournamentRounds)
	}
	roster := cat.All()
	if len(roster) < 2 {
		return nil, ErrEmptyCatalog
	}
	ids := make([]string, len(roster))
	for i, c := range roster {
		ids[i] = c.ID
	}
	key := fmt.Sprintf("%d|%s", rounds, keys.RosterKey(ids))
	// The shared run outlives any single caller; each caller stops waiting
	// when its own context ends.
	runCtx := context.WithoutCancel(ctx)
	ch := dedupe.TournamentGroup.DoChan(key, func() (interface{}, error) {
		return playTournament(runCtx, roster, store, archive, rounds, maxTurns)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		if r.Shared {
			logging.Info("tournament result shared", logging.Fields{constants.LogFieldKey: key})
		}
		return r.Val.(*TournamentResult), nil
	}
}

func playTournament(ctx context.Context, roster []game.CharacterDefinition, store BattleStore, archive RecordArchive, rounds, maxTurns int) (*TournamentResult, error) {
	if maxTurns <= 0 {
		maxTurns = constants.DefaultAIMaxTurns
	}
	var mu sync.Mutex
	table := make(map[string]*TournamentStanding, len(roster))
	for _, c := range roster {
		table[c.ID] = &TournamentStanding{CharacterID: c.ID, Name: c.Name}
	}
	res := &TournamentResult{Rounds: rounds}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for r := 0; r < rounds; r++ {
		for i := 0; i < len(roster); i++ {
			for j := i + 1; j < len(roster); j++ {
				a, b := roster[i], roster[j]
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					snap, err := store.Simulate(a, b, maxTurns, session.RandomChooser)
					if err != nil {
						return err
					}
					archiveBattle(archive, snap, storage.SourceTournament)

					mu.Lock()
					defer mu.Unlock()
					res.Battles++
					sa, sb := table[a.ID], table[b.ID]
					sa.Played++
					sb.Played++
					switch snap.Winner {
					case engine.SideA:
						sa.Wins++
						sb.Losses++
					case engine.SideB:
						sb.Wins++
						sa.Losses++
					default:
						sa.Draws++
						sb.Draws++
						res.Draws++
					}
					return nil
				})
			}
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.Standings = make([]TournamentStanding, 0, len(table))
	for _, c := range roster {
		res.Standings = append(res.Standings, *table[c.ID])
	}
	sort.SliceStable(res.Standings, func(i, j int) bool {
		si, sj := res.Standings[i], res.Standings[j]
		if si.Wins != sj.Wins {
			return si.Wins > sj.Wins
		}
		return si.Losses < sj.Losses
	})
	if len(res.Standings) > 0 && res.Standings[0].Wins > 0 {
		res.Champion = res.Standings[0].Name
	}
	logging.Info("tournament completed", logging.Fields{
		constants.LogFieldRounds: rounds,
		constants.LogFieldCount:  res.Battles,
	})
	return res, nil
}
