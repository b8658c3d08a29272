package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/constants"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/engine"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/logging"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/service"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/storage"
)

type TournamentRequest struct {
	Rounds int `json:"rounds"`
}

// GameStats returns roster-wide aggregates.
func (h *Handler) GameStats(c *gin.Context) {
	respondData(c, service.ComputeGameStats(h.catalog))
}

// TypeChart returns the effectiveness table and its legend.
func (h *Handler) TypeChart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeySuccess: true,
		constants.JSONKeyData:    h.chart.Cells(),
		"legend":                 engine.EffectivenessLegend,
	})
}

// Leaderboard ranks the roster by ?stat= (total by default).
func (h *Handler) Leaderboard(c *gin.Context) {
	stat := c.DefaultQuery("stat", constants.LeaderboardDefaultKey)
	board, err := service.Leaderboard(h.catalog, stat)
	if err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf(constants.ErrInvalidStat, strings.Join(service.LeaderboardStats, ", ")))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeySuccess: true,
		constants.JSONKeyData:    board,
		"sortedBy":               stat,
	})
}

// Matchup predicts the winner of two characters.
func (h *Handler) Matchup(c *gin.Context) {
	m, err := service.PredictMatchup(h.catalog, h.chart, c.Param("id1"), c.Param("id2"))
	if err != nil {
		respondError(c, http.StatusNotFound, constants.ErrLLMsNotFound)
		return
	}
	respondData(c, m)
}

// Tips returns strategy hints for one character.
func (h *Handler) Tips(c *gin.Context) {
	tips, err := service.StrategyTips(h.catalog, c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, constants.ErrLLMNotFound)
		return
	}
	respondData(c, tips)
}

// ListRecords returns archived finished battles, newest first.
func (h *Handler) ListRecords(c *gin.Context) {
	limit, ok := limitQuery(c)
	if !ok {
		respondError(c, http.StatusBadRequest, constants.ErrInvalidLimit)
		return
	}
	if h.archive == nil {
		respondList(c, 0, []storage.BattleRecord{})
		return
	}
	records, err := h.archive.ListRecords(limit)
	if err != nil {
		logging.Error("failed to list battle records", err, nil)
		respondError(c, http.StatusInternalServerError, constants.ErrFailedFetchRecords)
		return
	}
	respondList(c, len(records), records)
}

// ListStandings returns archived win/loss totals per character.
func (h *Handler) ListStandings(c *gin.Context) {
	limit, ok := limitQuery(c)
	if !ok {
		respondError(c, http.StatusBadRequest, constants.ErrInvalidLimit)
		return
	}
	if h.archive == nil {
		respondList(c, 0, []storage.CharacterStanding{})
		return
	}
	standings, err := h.archive.Standings(limit)
	if err != nil {
		logging.Error("failed to list standings", err, nil)
		respondError(c, http.StatusInternalServerError, constants.ErrFailedFetchRecords)
		return
	}
	respondList(c, len(standings), standings)
}

// Tournament runs a round-robin of AI battles across the roster.
func (h *Handler) Tournament(c *gin.Context) {
	req := TournamentRequest{Rounds: 1}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, constants.ErrInvalidRequest)
			return
		}
	}
	res, err := service.RunTournament(c.Request.Context(), h.catalog, h.store, h.recordArchive(), req.Rounds, h.aiMaxTurns)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRounds) {
			respondError(c, http.StatusBadRequest, fmt.Sprintf(constants.ErrInvalidRounds, constants.MaxTournamentRounds))
			return
		}
		respondBattleError(c, err, constants.ErrFailedRunTournament)
		return
	}
	respondMessage(c, constants.MsgTournamentDone, res)
}

// limitQuery reads ?limit=, defaulting and capping it.
func limitQuery(c *gin.Context) (int, bool) {
	s := c.Query("limit")
	if s == "" {
		return constants.DefaultRecordsLimit, true
	}
	n, ok := positiveParam(s)
	if !ok {
		return 0, false
	}
	if n > constants.MaxRecordsLimit {
		n = constants.MaxRecordsLimit
	}
	return n, true
}
