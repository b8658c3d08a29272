package engine

import (
	"math"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
)

// Stats is the working stat line of a combatant. Effects scale these values
// for the rest of the battle, so they are kept as floats.
type Stats struct {
	Attack         float64 `json:"attack"`
	Defense        float64 `json:"defense"`
	SpecialAttack  float64 `json:"specialAttack"`
	SpecialDefense float64 `json:"specialDefense"`
	Speed          float64 `json:"speed"`
	Accuracy       float64 `json:"accuracy"`
}

func statsFrom(b game.StatBlock) Stats {
	return Stats{
		Attack:         float64(b.Attack),
		Defense:        float64(b.Defense),
		SpecialAttack:  float64(b.SpecialAttack),
		SpecialDefense: float64(b.SpecialDefense),
		Speed:          float64(b.Speed),
		Accuracy:       100,
	}
}

// StatusKind names a timed condition on a combatant.
type StatusKind string

const (
	StatusConfusion   StatusKind = "confusion"
	StatusToxicShield StatusKind = "toxic_immunity"
	StatusShielded    StatusKind = "status_immunity"
	StatusRestricted  StatusKind = "restricted"
	StatusEfficient   StatusKind = "efficient"
)

// harmful statuses are the ones a shield blocks.
func (k StatusKind) harmful() bool {
	return k == StatusConfusion || k == StatusRestricted
}

// StatusEffect is an active condition with the number of turns it has left.
type StatusEffect struct {
	Kind      StatusKind `json:"type"`
	Remaining int        `json:"duration"`
}

// Combatant is one side of a battle: a private copy of a character
// definition plus everything that changes while the battle runs.
type Combatant struct {
	def      game.CharacterDefinition
	hp       int
	current  Stats
	typ      game.ElementType
	statuses []StatusEffect
	pp       map[string]int
}

// NewCombatant snapshots def. The definition is deep-copied so nothing done
// to the combatant leaks back into the catalog.
func NewCombatant(def game.CharacterDefinition) *Combatant {
	d := def.Clone()
	pp := make(map[string]int, len(d.Moves))
	for _, m := range d.Moves {
		pp[m.ID] = m.PP
	}
	return &Combatant{
		def:     d,
		hp:      d.Stats.HP,
		current: statsFrom(d.Stats),
		typ:     d.Type,
		pp:      pp,
	}
}

func (c *Combatant) ID() string                           { return c.def.ID }
func (c *Combatant) Name() string                         { return c.def.Name }
func (c *Combatant) Definition() game.CharacterDefinition { return c.def.Clone() }
func (c *Combatant) HP() int                              { return c.hp }
func (c *Combatant) MaxHP() int                           { return c.def.Stats.HP }
func (c *Combatant) Stats() Stats                         { return c.current }
func (c *Combatant) Type() game.ElementType               { return c.typ }
func (c *Combatant) Fainted() bool                        { return c.hp <= 0 }

// HPPercent is current health as a percentage of base health.
func (c *Combatant) HPPercent() float64 {
	if c.def.Stats.HP <= 0 {
		return 0
	}
	return float64(c.hp) / float64(c.def.Stats.HP) * 100
}

// TakeDamage lowers health, never below zero, and reports whether the
// combatant fainted.
func (c *Combatant) TakeDamage(n int) bool {
	if n > 0 {
		c.hp = max(0, c.hp-n)
	}
	return c.Fainted()
}

// Heal raises health up to base health.
func (c *Combatant) Heal(n int) {
	if n > 0 {
		c.hp = min(c.def.Stats.HP, c.hp+n)
	}
}

// Move looks up a move in this combatant's own move list.
func (c *Combatant) Move(id string) (game.MoveDefinition, bool) {
	return c.def.Move(id)
}

// Moves returns the move list in authored order.
func (c *Combatant) Moves() []game.MoveDefinition {
	return append([]game.MoveDefinition(nil), c.def.Moves...)
}

// PP returns the remaining power points for a move.
func (c *Combatant) PP(moveID string) int { return c.pp[moveID] }

func (c *Combatant) spendPP(moveID string) {
	if c.HasStatus(StatusEfficient) {
		return
	}
	if c.pp[moveID] > 0 {
		c.pp[moveID]--
	}
}

func (c *Combatant) restorePP() {
	for _, m := range c.def.Moves {
		c.pp[m.ID] = m.PP
	}
}

// Statuses returns a copy of the active statuses.
func (c *Combatant) Statuses() []StatusEffect {
	return append([]StatusEffect(nil), c.statuses...)
}

func (c *Combatant) HasStatus(kind StatusKind) bool {
	for _, s := range c.statuses {
		if s.Kind == kind {
			return true
		}
	}
	return false
}

func (c *Combatant) shielded() bool {
	return c.HasStatus(StatusShielded) || c.HasStatus(StatusToxicShield)
}

// inflict adds a status or refreshes its duration. Harmful statuses are
// refused while a shield is up; the return value reports whether it landed.
func (c *Combatant) inflict(kind StatusKind, turns int) bool {
	if kind.harmful() && c.shielded() {
		return false
	}
	for i := range c.statuses {
		if c.statuses[i].Kind == kind {
			c.statuses[i].Remaining = max(c.statuses[i].Remaining, turns)
			return true
		}
	}
	c.statuses = append(c.statuses, StatusEffect{Kind: kind, Remaining: turns})
	return true
}

func (c *Combatant) clearStatuses() int {
	n := len(c.statuses)
	c.statuses = nil
	return n
}

// tickStatuses counts every status down by one turn and drops expired ones.
func (c *Combatant) tickStatuses() {
	kept := c.statuses[:0]
	for _, s := range c.statuses {
		s.Remaining--
		if s.Remaining > 0 {
			kept = append(kept, s)
		}
	}
	c.statuses = kept
}

// offense returns the attack and defense stats a move of category cat uses
// when c attacks target.
func (c *Combatant) offense(cat game.Category, target *Combatant) (atk, def float64) {
	if cat == game.CategoryPhysical {
		return c.current.Attack, target.current.Defense
	}
	return c.current.SpecialAttack, target.current.SpecialDefense
}

// validStats reports the first non-positive working stat, if any.
func (c *Combatant) validStats() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"attack", c.current.Attack},
		{"defense", c.current.Defense},
		{"specialAttack", c.current.SpecialAttack},
		{"specialDefense", c.current.SpecialDefense},
	}
	for _, ch := range checks {
		if ch.v <= 0 || math.IsNaN(ch.v) {
			return &InvalidStatError{Stat: ch.name, Value: ch.v}
		}
	}
	return nil
}

// clone is used to roll a turn back if resolution fails half way.
func (c *Combatant) clone() *Combatant {
	cp := *c
	cp.statuses = append([]StatusEffect(nil), c.statuses...)
	cp.pp = make(map[string]int, len(c.pp))
	for k, v := range c.pp {
		cp.pp[k] = v
	}
	return &cp
}
