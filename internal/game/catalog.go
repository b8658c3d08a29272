package game

import "strings"

// Catalog is the read-only roster of characters. It is built once at
// startup and shared by every battle.
type Catalog struct {
	list []CharacterDefinition
	byID map[string]int
}

// NewCatalog indexes defs by lowercase ID. Duplicate IDs are expected to be
// rejected by the config loader; the last one wins here.
func NewCatalog(defs []CharacterDefinition) *Catalog {
	c := &Catalog{list: make([]CharacterDefinition, 0, len(defs)), byID: make(map[string]int, len(defs))}
	for _, d := range defs {
		c.byID[strings.ToLower(d.ID)] = len(c.list)
		c.list = append(c.list, d.Clone())
	}
	return c
}

// Get returns a copy of the character with the given ID.
func (c *Catalog) Get(id string) (CharacterDefinition, error) {
	i, ok := c.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return CharacterDefinition{}, &NotFoundError{Kind: "character", ID: id}
	}
	return c.list[i].Clone(), nil
}

// All returns copies of every character in catalog order.
func (c *Catalog) All() []CharacterDefinition {
	out := make([]CharacterDefinition, len(c.list))
	for i := range c.list {
		out[i] = c.list[i].Clone()
	}
	return out
}

// ByType returns characters whose primary or secondary type matches t.
func (c *Catalog) ByType(t ElementType) []CharacterDefinition {
	out := make([]CharacterDefinition, 0)
	for i := range c.list {
		if c.list[i].Type == t || (c.list[i].SecondaryType != "" && c.list[i].SecondaryType == t) {
			out = append(out, c.list[i].Clone())
		}
	}
	return out
}

func (c *Catalog) Len() int { return len(c.list) }
