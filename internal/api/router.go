package api

import (
	"github.com/gin-gonic/gin"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/constants"
)

// NewRouter builds the gin engine with every API route registered.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), noCache())

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteHealth, Health)
		apiRoutes.GET(constants.RouteVersion, Version)

		apiRoutes.GET(constants.RouteLLMs, h.ListLLMs)
		apiRoutes.GET(constants.RouteLLMsByType, h.ListLLMsByType)
		apiRoutes.GET(constants.RouteLLMsRandom, h.RandomLLMs)
		apiRoutes.GET(constants.RouteLLMsCompare, h.CompareLLMs)
		apiRoutes.GET(constants.RouteLLMByID, h.GetLLM)

		apiRoutes.GET(constants.RouteBattles, h.ListBattles)
		apiRoutes.POST(constants.RouteBattleStart, h.StartBattle)
		apiRoutes.POST(constants.RouteAIBattle, h.AIBattle)
		apiRoutes.GET(constants.RouteBattleByID, h.GetBattle)
		apiRoutes.POST(constants.RouteBattleTurn, h.SubmitTurn)

		apiRoutes.GET(constants.RouteGameStats, h.GameStats)
		apiRoutes.GET(constants.RouteGameTypeChart, h.TypeChart)
		apiRoutes.GET(constants.RouteGameLeaderboard, h.Leaderboard)
		apiRoutes.GET(constants.RouteGameMatchup, h.Matchup)
		apiRoutes.GET(constants.RouteGameTips, h.Tips)
		apiRoutes.GET(constants.RouteGameRecords, h.ListRecords)
		apiRoutes.GET(constants.RouteGameStandings, h.ListStandings)
		apiRoutes.POST(constants.RouteGameTournament, h.Tournament)
	}
	router.NoRoute(NotFound)
	return router
}
