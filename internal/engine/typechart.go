package engine

import (
	"sort"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
)

// Neutral is the multiplier for any pair the chart does not mention.
const Neutral = 1.0

// TypeChart maps (attacking type, defending type) to a damage multiplier.
// It is directional: Lookup(x, y) is unrelated to Lookup(y, x).
type TypeChart struct {
	cells map[game.ElementType]map[game.ElementType]float64
}

// NewTypeChart copies cells into a read-only chart.
func NewTypeChart(cells map[game.ElementType]map[game.ElementType]float64) *TypeChart {
	tc := &TypeChart{cells: make(map[game.ElementType]map[game.ElementType]float64, len(cells))}
	for att, row := range cells {
		r := make(map[game.ElementType]float64, len(row))
		for def, m := range row {
			r[def] = m
		}
		tc.cells[att] = r
	}
	return tc
}

// DefaultTypeChart is the stock eight-type table.
func DefaultTypeChart() *TypeChart {
	return NewTypeChart(map[game.ElementType]map[game.ElementType]float64{
		game.TypeReasoning: {
			game.TypeConversational: 1.2, game.TypeCreative: 1.0, game.TypeMultimodal: 0.8, game.TypeEdgy: 1.5,
			game.TypeOpenSource: 1.0, game.TypeEfficient: 1.1, game.TypeSpeed: 0.9,
		},
		game.TypeConversational: {
			game.TypeReasoning: 0.8, game.TypeCreative: 1.2, game.TypeMultimodal: 1.0, game.TypeEdgy: 0.7,
			game.TypeOpenSource: 1.1, game.TypeEfficient: 1.0, game.TypeSpeed: 1.0,
		},
		game.TypeCreative: {
			game.TypeReasoning: 1.0, game.TypeConversational: 0.8, game.TypeMultimodal: 1.3, game.TypeEdgy: 1.0,
			game.TypeOpenSource: 1.0, game.TypeEfficient: 0.9, game.TypeSpeed: 0.8,
		},
		game.TypeMultimodal: {
			game.TypeReasoning: 1.2, game.TypeConversational: 1.0, game.TypeCreative: 0.7, game.TypeEdgy: 1.0,
			game.TypeOpenSource: 0.9, game.TypeEfficient: 1.0, game.TypeSpeed: 1.1,
		},
		game.TypeEdgy: {
			game.TypeReasoning: 0.7, game.TypeConversational: 1.3, game.TypeCreative: 1.0, game.TypeMultimodal: 1.0,
			game.TypeOpenSource: 0.8, game.TypeEfficient: 1.0, game.TypeSpeed: 1.2,
		},
		game.TypeOpenSource: {
			game.TypeReasoning: 1.0, game.TypeConversational: 0.9, game.TypeCreative: 1.0, game.TypeMultimodal: 1.1,
			game.TypeEdgy: 1.2, game.TypeEfficient: 1.0, game.TypeSpeed: 0.9,
		},
		game.TypeEfficient: {
			game.TypeReasoning: 0.9, game.TypeConversational: 1.0, game.TypeCreative: 1.1, game.TypeMultimodal: 1.0,
			game.TypeEdgy: 1.0, game.TypeOpenSource: 1.0, game.TypeSpeed: 1.3,
		},
		game.TypeSpeed: {
			game.TypeReasoning: 1.1, game.TypeConversational: 1.0, game.TypeCreative: 1.2, game.TypeMultimodal: 0.9,
			game.TypeEdgy: 0.8, game.TypeOpenSource: 1.1, game.TypeEfficient: 0.7,
		},
	})
}

// Lookup returns the multiplier for attacking vs defending, or Neutral.
func (t *TypeChart) Lookup(attacking, defending game.ElementType) float64 {
	if t == nil {
		return Neutral
	}
	if row, ok := t.cells[attacking]; ok {
		if m, ok := row[defending]; ok {
			return m
		}
	}
	return Neutral
}

// Cells returns a copy of the table for rendering.
func (t *TypeChart) Cells() map[game.ElementType]map[game.ElementType]float64 {
	return NewTypeChart(t.cells).cells
}

// Types lists every type that appears in the chart, sorted.
func (t *TypeChart) Types() []game.ElementType {
	seen := map[game.ElementType]struct{}{}
	for att, row := range t.cells {
		seen[att] = struct{}{}
		for def := range row {
			seen[def] = struct{}{}
		}
	}
	out := make([]game.ElementType, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// EffectivenessLegend labels the multipliers the stock chart uses.
var EffectivenessLegend = map[string]string{
	"2.0": "Super Effective",
	"1.5": "Very Effective",
	"1.2": "Effective",
	"1.0": "Normal Damage",
	"0.8": "Not Very Effective",
	"0.7": "Weak",
	"0.5": "Barely Effective",
}
