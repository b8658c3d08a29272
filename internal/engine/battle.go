package engine

import (
	"time"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
)

// Side identifies one of the two combatants in a battle.
type Side string

const (
	SideA Side = "player1"
	SideB Side = "player2"
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Phase is where a battle is in its turn cycle.
type Phase string

const (
	PhaseAwaitingMoves Phase = "awaiting_moves"
	PhaseResolving     Phase = "resolving"
	PhaseFinished      Phase = "finished"
)

// BattleStatus is the externally visible lifecycle state.
type BattleStatus string

const (
	BattleActive   BattleStatus = "active"
	BattleFinished BattleStatus = "finished"
)

// Battle is a single two-sided fight. It is not safe for concurrent use;
// callers serialize access (see the session store).
type Battle struct {
	id        string
	a, b      *Combatant
	turn      int
	phase     Phase
	status    BattleStatus
	winner    Side
	log       []string
	createdAt time.Time
	chart     *TypeChart
	rng       Rand
}

// NewBattle sets up a fresh battle between two character definitions. A nil
// chart means the stock chart and a nil rng the shared global source.
func NewBattle(id string, defA, defB game.CharacterDefinition, chart *TypeChart, rng Rand) *Battle {
	if chart == nil {
		chart = DefaultTypeChart()
	}
	if rng == nil {
		rng = DefaultRand()
	}
	return &Battle{
		id:        id,
		a:         NewCombatant(defA),
		b:         NewCombatant(defB),
		phase:     PhaseAwaitingMoves,
		status:    BattleActive,
		log:       make([]string, 0, 32),
		createdAt: time.Now().UTC(),
		chart:     chart,
		rng:       rng,
	}
}

func (b *Battle) ID() string           { return b.id }
func (b *Battle) Turn() int            { return b.turn }
func (b *Battle) Phase() Phase         { return b.phase }
func (b *Battle) Status() BattleStatus { return b.status }
func (b *Battle) Winner() Side         { return b.winner }
func (b *Battle) CreatedAt() time.Time { return b.createdAt }
func (b *Battle) Finished() bool       { return b.status == BattleFinished }

// Moves lists the moves available to a side, in authored order.
func (b *Battle) Moves(s Side) []game.MoveDefinition {
	return b.side(s).Moves()
}

// Log returns a copy of the full event log.
func (b *Battle) Log() []string {
	return append([]string(nil), b.log...)
}

func (b *Battle) side(s Side) *Combatant {
	if s == SideB {
		return b.b
	}
	return b.a
}

// declareWinner finishes the battle. The first call wins; later calls are
// ignored so the recorded winner never changes.
func (b *Battle) declareWinner(s Side) {
	if b.winner != "" {
		return
	}
	b.winner = s
	b.status = BattleFinished
	b.phase = PhaseFinished
}

type battleState struct {
	a, b   *Combatant
	status BattleStatus
	phase  Phase
	winner Side
}

func (b *Battle) save() battleState {
	return battleState{a: b.a.clone(), b: b.b.clone(), status: b.status, phase: b.phase, winner: b.winner}
}

func (b *Battle) restore(s battleState) {
	b.a, b.b = s.a, s.b
	b.status, b.phase, b.winner = s.status, s.phase, s.winner
}
