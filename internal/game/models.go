package game

// StatBlock is the base stat line of a character.
type StatBlock struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"specialAttack"`
	SpecialDefense int `json:"specialDefense"`
	Speed          int `json:"speed"`
}

// Total is the sum of all six stats. It is used by the leaderboard and the
// matchup predictor.
func (s StatBlock) Total() int {
	return s.HP + s.Attack + s.Defense + s.SpecialAttack + s.SpecialDefense + s.Speed
}

// Named returns the stats keyed by their JSON names, in declaration order.
func (s StatBlock) Named() []NamedStat {
	return []NamedStat{
		{StatHP, s.HP},
		{StatAttack, s.Attack},
		{StatDefense, s.Defense},
		{StatSpecialAttack, s.SpecialAttack},
		{StatSpecialDefense, s.SpecialDefense},
		{StatSpeed, s.Speed},
	}
}

// Value returns the stat named name and whether the name is known.
func (s StatBlock) Value(name string) (int, bool) {
	for _, ns := range s.Named() {
		if ns.Stat == name {
			return ns.Value, true
		}
	}
	return 0, false
}

// Stat names as exposed by the API.
const (
	StatHP             = "hp"
	StatAttack         = "attack"
	StatDefense        = "defense"
	StatSpecialAttack  = "specialAttack"
	StatSpecialDefense = "specialDefense"
	StatSpeed          = "speed"
)

type NamedStat struct {
	Stat  string `json:"stat"`
	Value int    `json:"value"`
}

// MoveDefinition is one authored move. Moves belong to a single character.
type MoveDefinition struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        ElementType `json:"type"`
	Category    Category    `json:"category"`
	Power       int         `json:"power"`
	Accuracy    int         `json:"accuracy"`
	PP          int         `json:"pp"`
	Effect      EffectTag   `json:"effect,omitempty"`
	Description string      `json:"description"`
}

// CharacterDefinition is the immutable authored data for one character.
// Values are copied into battles; nothing mutates a definition after load.
type CharacterDefinition struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Company       string           `json:"company"`
	Type          ElementType      `json:"type"`
	SecondaryType ElementType      `json:"secondaryType,omitempty"`
	Stats         StatBlock        `json:"stats"`
	Moves         []MoveDefinition `json:"moves"`
	Abilities     []string         `json:"abilities"`
	Description   string           `json:"description"`
	Sprite        string           `json:"sprite,omitempty"`
}

// Move returns the move with the given ID from this character's move list.
func (c CharacterDefinition) Move(id string) (MoveDefinition, bool) {
	for _, m := range c.Moves {
		if m.ID == id {
			return m, true
		}
	}
	return MoveDefinition{}, false
}

// HasEffectMoves reports whether any move carries an effect tag.
func (c CharacterDefinition) HasEffectMoves() bool {
	for _, m := range c.Moves {
		if m.Effect != EffectNone {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can hand definitions out without
// sharing the backing slices.
func (c CharacterDefinition) Clone() CharacterDefinition {
	out := c
	out.Moves = append([]MoveDefinition(nil), c.Moves...)
	out.Abilities = append([]string(nil), c.Abilities...)
	return out
}
