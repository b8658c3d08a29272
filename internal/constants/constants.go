package constants

// Environment variable keys
const (
	EnvConfigPath = "LLM_BATTLE_CONFIG"
	EnvDatabase   = "LLM_BATTLE_DB"
	EnvAddress    = "LLM_BATTLE_ADDR"
	EnvGinMode    = "GIN_MODE"
)

// Defaults used when neither the config file nor the environment say otherwise.
const (
	DefaultAddress        = ":3001"
	DefaultDatabaseDSN    = "file::memory:?cache=shared"
	DefaultLogTail        = 10
	DefaultAIMaxTurns     = 50
	DefaultSessionTTL     = "1h"
	DefaultIdleTTL        = "30m"
	DefaultReapInterval   = "1m"
	DefaultRecordsLimit   = 20
	MaxRecordsLimit       = 200
	MaxTournamentRounds   = 10
	MaxTipsPerCharacter   = 3
	LeaderboardDefaultKey = "total"
)

// HTTP headers
const (
	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"
	RouteHealth    = "/health"
	RouteVersion   = "/version"

	RouteLLMs        = "/llms"
	RouteLLMByID     = "/llms/:id"
	RouteLLMsByType  = "/llms/type/:type"
	RouteLLMsRandom  = "/llms/random/:count"
	RouteLLMsCompare = "/llms/compare/:id1/:id2"

	RouteBattles     = "/battle"
	RouteBattleStart = "/battle/start"
	RouteBattleByID  = "/battle/:battleId"
	RouteBattleTurn  = "/battle/:battleId/turn"
	RouteAIBattle    = "/battle/ai-battle"

	RouteGameStats       = "/game/stats"
	RouteGameTypeChart   = "/game/type-chart"
	RouteGameLeaderboard = "/game/leaderboard"
	RouteGameMatchup     = "/game/matchup/:id1/:id2"
	RouteGameTips        = "/game/tips/:id"
	RouteGameRecords     = "/game/records"
	RouteGameStandings   = "/game/records/standings"
	RouteGameTournament  = "/game/tournament"
)

// Common JSON response keys
const (
	JSONKeySuccess = "success"
	JSONKeyData    = "data"
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyCount   = "count"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrInvalidLLMIDs       = "Invalid LLM IDs provided"
	ErrInvalidMoveIDs      = "Invalid move IDs provided"
	ErrLLMNotFound         = "LLM not found"
	ErrLLMsNotFound        = "One or both LLMs not found"
	ErrBattleNotFound      = "Battle not found"
	ErrBattleNotActive     = "Battle is not active"
	ErrInvalidCount        = "Count must be a positive number"
	ErrInvalidStat         = "Invalid stat. Valid stats: %s"
	ErrInvalidLimit        = "Limit must be a positive number"
	ErrInvalidRounds       = "Rounds must be between 1 and %d"
	ErrFailedStartBattle   = "Failed to start battle"
	ErrFailedProcessTurn   = "Failed to process turn"
	ErrFailedAIBattle      = "Failed to run AI battle"
	ErrFailedFetchRecords  = "Failed to fetch battle records"
	ErrFailedRunTournament = "Failed to run tournament"
	ErrInternal            = "Internal server error"
	ErrRouteNotFound       = "Route not found"
)

// Response messages
const (
	MsgBattleStarted     = "Battle started!"
	MsgAIBattleCompleted = "AI battle completed!"
	MsgTournamentDone    = "Tournament completed!"
	MsgHealthy           = "LLM Pokemon Battle API is running!"
)

// Logging field names
const (
	LogFieldBattleID    = "battle_id"
	LogFieldCharacterID = "character_id"
	LogFieldOpponentID  = "opponent_id"
	LogFieldTurn        = "turn"
	LogFieldWinner      = "winner"
	LogFieldCount       = "count"
	LogFieldRounds      = "rounds"
	LogFieldSource      = "source"
	LogFieldPath        = "path"
	LogFieldMethod      = "method"
	LogFieldStatus      = "status"
	LogFieldLatencyMS   = "latency_ms"
	LogFieldKey         = "key"
	LogFieldAddr        = "addr"
	LogFieldDSN         = "dsn"
)
