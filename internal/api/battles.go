package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/constants"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/service"
)

type StartBattleRequest struct {
	Player1ID string `json:"player1Id" binding:"required"`
	Player2ID string `json:"player2Id" binding:"required"`
}

type TurnRequest struct {
	Move1ID string `json:"move1Id" binding:"required"`
	Move2ID string `json:"move2Id" binding:"required"`
}

type AIBattleRequest struct {
	LLM1ID string `json:"llm1Id"`
	LLM2ID string `json:"llm2Id"`
}

// StartBattle creates a new battle between two characters.
func (h *Handler) StartBattle(c *gin.Context) {
	var req StartBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, constants.ErrInvalidLLMIDs)
		return
	}
	snap, err := service.StartBattle(h.catalog, h.store, req.Player1ID, req.Player2ID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCharacters) {
			respondError(c, http.StatusBadRequest, constants.ErrInvalidLLMIDs)
			return
		}
		respondBattleError(c, err, constants.ErrFailedStartBattle)
		return
	}
	respondMessage(c, constants.MsgBattleStarted, snap)
}

// SubmitTurn resolves one turn of a battle.
func (h *Handler) SubmitTurn(c *gin.Context) {
	var req TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, constants.ErrInvalidMoveIDs)
		return
	}
	res, snap, err := service.SubmitTurn(h.store, h.recordArchive(), c.Param("battleId"), req.Move1ID, req.Move2ID)
	if err != nil {
		respondBattleError(c, err, constants.ErrFailedProcessTurn)
		return
	}
	respondData(c, gin.H{"turnResult": res, "battleState": snap})
}

// GetBattle returns the current state of a battle.
func (h *Handler) GetBattle(c *gin.Context) {
	snap, err := h.store.Get(c.Param("battleId"))
	if err != nil {
		respondBattleError(c, err, constants.ErrInternal)
		return
	}
	respondData(c, snap)
}

// ListBattles returns a summary of every live battle.
func (h *Handler) ListBattles(c *gin.Context) {
	out := h.store.List()
	respondList(c, len(out), out)
}

// AIBattle plays a whole battle with random moves. Both IDs are optional.
func (h *Handler) AIBattle(c *gin.Context) {
	var req AIBattleRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, constants.ErrInvalidRequest)
			return
		}
	}
	snap, err := service.RunAIBattle(h.catalog, h.store, h.recordArchive(), req.LLM1ID, req.LLM2ID, h.aiMaxTurns, h.rng)
	if err != nil {
		respondBattleError(c, err, constants.ErrFailedAIBattle)
		return
	}
	respondMessage(c, constants.MsgAIBattleCompleted, snap)
}
