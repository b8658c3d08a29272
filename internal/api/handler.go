package api

import (
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/constants"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/engine"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/service"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/storage"
)

// Handler groups all HTTP handlers. It holds no battle state of its own:
// live battles sit in the store and finished ones in the archive.
type Handler struct {
	catalog    *game.Catalog
	chart      *engine.TypeChart
	store      service.BattleStore
	archive    storage.Repository
	aiMaxTurns int
	rng        engine.Rand
}

// Options wires a Handler. Archive may be nil, in which case finished
// battles are not recorded and the records endpoints return empty lists.
type Options struct {
	Catalog    *game.Catalog
	Chart      *engine.TypeChart
	Store      service.BattleStore
	Archive    storage.Repository
	AIMaxTurns int
	Rand       engine.Rand
}

func NewHandler(opts Options) *Handler {
	h := &Handler{
		catalog:    opts.Catalog,
		chart:      opts.Chart,
		store:      opts.Store,
		archive:    opts.Archive,
		aiMaxTurns: opts.AIMaxTurns,
		rng:        opts.Rand,
	}
	if h.chart == nil {
		h.chart = engine.DefaultTypeChart()
	}
	if h.aiMaxTurns <= 0 {
		h.aiMaxTurns = constants.DefaultAIMaxTurns
	}
	if h.rng == nil {
		h.rng = engine.DefaultRand()
	}
	return h
}

// recordArchive hides a nil repository behind a nil interface so the
// service layer can tell "no archive" apart from a typed nil.
func (h *Handler) recordArchive() service.RecordArchive {
	if h.archive == nil {
		return nil
	}
	return h.archive
}
