package engine

import (
	"time"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
)

// ActionResult describes one side's action within a turn.
type ActionResult struct {
	Side              Side    `json:"player"`
	Character         string  `json:"llm"`
	Move              string  `json:"move"`
	MoveID            string  `json:"moveId"`
	Damage            int     `json:"damage"`
	Effectiveness     float64 `json:"effectiveness,omitempty"`
	Effect            string  `json:"effect,omitempty"`
	DefenderHP        int     `json:"defenderHP"`
	DefenderHPPercent float64 `json:"defenderHPPercent"`
	Fainted           bool    `json:"fainted"`
}

// TurnResult is the outcome of ResolveTurn. Second is nil when the turn
// ended after the first action.
type TurnResult struct {
	Turn   int           `json:"turnNumber"`
	First  ActionResult  `json:"firstMove"`
	Second *ActionResult `json:"secondMove"`
	Status BattleStatus  `json:"battleStatus"`
	Winner Side          `json:"winner,omitempty"`
}

type MoveState struct {
	game.MoveDefinition
	RemainingPP int `json:"remainingPP"`
}

type CombatantState struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Company       string           `json:"company"`
	Type          game.ElementType `json:"type"`
	SecondaryType game.ElementType `json:"secondaryType,omitempty"`
	CurrentHP     int              `json:"currentHP"`
	MaxHP         int              `json:"maxHP"`
	HPPercent     float64          `json:"hpPercentage"`
	Stats         Stats            `json:"stats"`
	BaseStats     game.StatBlock   `json:"baseStats"`
	Statuses      []StatusEffect   `json:"statusEffects"`
	Moves         []MoveState      `json:"moves"`
	Fainted       bool             `json:"fainted"`
	Sprite        string           `json:"sprite,omitempty"`
}

// Snapshot is a read-only view of a battle.
type Snapshot struct {
	ID        string         `json:"id"`
	Player1   CombatantState `json:"player1"`
	Player2   CombatantState `json:"player2"`
	Phase     Phase          `json:"phase"`
	TurnCount int            `json:"turnCount"`
	Status    BattleStatus   `json:"status"`
	Winner    Side           `json:"winner,omitempty"`
	Log       []string       `json:"battleLog"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Summary is the short listing form of a battle.
type Summary struct {
	ID        string       `json:"id"`
	Player1   string       `json:"player1"`
	Player2   string       `json:"player2"`
	Status    BattleStatus `json:"status"`
	TurnCount int          `json:"turnCount"`
	Winner    Side         `json:"winner,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Snapshot returns the current state with the last tail log lines. A tail of
// zero or less returns the whole log.
func (b *Battle) Snapshot(tail int) Snapshot {
	log := b.log
	if tail > 0 && len(log) > tail {
		log = log[len(log)-tail:]
	}
	return Snapshot{
		ID:        b.id,
		Player1:   stateOf(b.a),
		Player2:   stateOf(b.b),
		Phase:     b.phase,
		TurnCount: b.turn,
		Status:    b.status,
		Winner:    b.winner,
		Log:       append([]string{}, log...),
		CreatedAt: b.createdAt,
	}
}

func (b *Battle) Summary() Summary {
	return Summary{
		ID:        b.id,
		Player1:   b.a.Name(),
		Player2:   b.b.Name(),
		Status:    b.status,
		TurnCount: b.turn,
		Winner:    b.winner,
		CreatedAt: b.createdAt,
	}
}

func stateOf(c *Combatant) CombatantState {
	moves := make([]MoveState, 0, len(c.def.Moves))
	for _, m := range c.def.Moves {
		moves = append(moves, MoveState{MoveDefinition: m, RemainingPP: c.pp[m.ID]})
	}
	return CombatantState{
		ID:            c.def.ID,
		Name:          c.def.Name,
		Company:       c.def.Company,
		Type:          c.typ,
		SecondaryType: c.def.SecondaryType,
		CurrentHP:     c.hp,
		MaxHP:         c.def.Stats.HP,
		HPPercent:     c.HPPercent(),
		Stats:         c.current,
		BaseStats:     c.def.Stats,
		Statuses:      append([]StatusEffect{}, c.statuses...),
		Moves:         moves,
		Fainted:       c.Fainted(),
		Sprite:        c.def.Sprite,
	}
}
