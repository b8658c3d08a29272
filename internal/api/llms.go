package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/constants"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/service"
)

// ListLLMs returns the whole roster.
func (h *Handler) ListLLMs(c *gin.Context) {
	all := h.catalog.All()
	respondList(c, len(all), all)
}

// GetLLM returns one character by ID.
func (h *Handler) GetLLM(c *gin.Context) {
	def, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, constants.ErrLLMNotFound)
		return
	}
	respondData(c, def)
}

// ListLLMsByType returns characters whose primary or secondary type matches.
func (h *Handler) ListLLMsByType(c *gin.Context) {
	t := game.ElementType(strings.ToLower(c.Param("type")))
	out := h.catalog.ByType(t)
	respondList(c, len(out), out)
}

// RandomLLMs returns up to :count distinct characters in random order.
func (h *Handler) RandomLLMs(c *gin.Context) {
	n, ok := positiveParam(c.Param("count"))
	if !ok {
		n = 1
	}
	out, err := service.RandomCharacters(h.catalog, n, h.rng)
	if err != nil {
		respondError(c, http.StatusBadRequest, constants.ErrInvalidCount)
		return
	}
	respondList(c, len(out), out)
}

// CompareLLMs reports type advantage in both directions.
func (h *Handler) CompareLLMs(c *gin.Context) {
	cmp, err := service.Compare(h.catalog, h.chart, c.Param("id1"), c.Param("id2"))
	if err != nil {
		respondError(c, http.StatusNotFound, constants.ErrLLMsNotFound)
		return
	}
	respondData(c, cmp)
}
