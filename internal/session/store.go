package session

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/engine"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
)

// Options configures a Store. Zero values pick sensible defaults.
type Options struct {
	Chart *engine.TypeChart
	// LogTail is how many log lines snapshots carry; 0 means all.
	LogTail int
	Policy  ExpiryPolicy
	Seed    SeedSource
	Now     func() time.Time
}

type entry struct {
	mu           sync.Mutex
	battle       *engine.Battle
	rng          engine.Rand
	lastActivity time.Time
}

// Store owns every live battle. Turns on one battle are serialized by that
// battle's own lock, so different battles never wait on each other.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	chart   *engine.TypeChart
	logTail int
	policy  ExpiryPolicy
	seed    SeedSource
	now     func() time.Time
}

func NewStore(opts Options) *Store {
	s := &Store{
		entries: make(map[string]*entry),
		chart:   opts.Chart,
		logTail: opts.LogTail,
		policy:  opts.Policy,
		seed:    opts.Seed,
		now:     opts.Now,
	}
	if s.chart == nil {
		s.chart = engine.DefaultTypeChart()
	}
	if s.policy == nil {
		s.policy = NeverExpire{}
	}
	if s.seed == nil {
		s.seed = NewSeed
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func notFound(id string) error { return &game.NotFoundError{Kind: "battle", ID: id} }

func (s *Store) newEntry(defA, defB game.CharacterDefinition) (*entry, error) {
	seed, err := s.seed()
	if err != nil {
		return nil, err
	}
	rng := engine.NewRand(seed)
	return &entry{
		battle:       engine.NewBattle(uuid.NewString(), defA, defB, s.chart, rng),
		rng:          rng,
		lastActivity: s.now(),
	}, nil
}

func (s *Store) insert(e *entry) {
	s.mu.Lock()
	s.entries[e.battle.ID()] = e
	s.mu.Unlock()
}

func (s *Store) lookup(id string) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	return e, ok
}

// Create starts a battle between two characters and returns its ID.
func (s *Store) Create(defA, defB game.CharacterDefinition) (string, error) {
	e, err := s.newEntry(defA, defB)
	if err != nil {
		return "", err
	}
	s.insert(e)
	return e.battle.ID(), nil
}

// Get returns a snapshot of the battle with the given ID.
func (s *Store) Get(id string) (engine.Snapshot, error) {
	e, ok := s.lookup(id)
	if !ok {
		return engine.Snapshot{}, notFound(id)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.battle.Snapshot(s.logTail), nil
}

// SubmitTurn resolves one turn and returns its result with the snapshot
// taken right after it, both under the same lock.
func (s *Store) SubmitTurn(id, moveA, moveB string) (engine.TurnResult, engine.Snapshot, error) {
	e, ok := s.lookup(id)
	if !ok {
		return engine.TurnResult{}, engine.Snapshot{}, notFound(id)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	res, err := e.battle.ResolveTurn(moveA, moveB)
	if err != nil {
		return engine.TurnResult{}, engine.Snapshot{}, err
	}
	e.lastActivity = s.now()
	return res, e.battle.Snapshot(s.logTail), nil
}

// List returns a summary of every stored battle, oldest first.
func (s *Store) List() []engine.Summary {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	out := make([]engine.Summary, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		out = append(out, e.battle.Summary())
		e.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Delete removes a battle and reports whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return false
	}
	delete(s.entries, id)
	return true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
