package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/constants"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/engine"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/logging"
)

func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{constants.JSONKeySuccess: true, constants.JSONKeyData: data})
}

func respondList(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeySuccess: true,
		constants.JSONKeyCount:   count,
		constants.JSONKeyData:    data,
	})
}

func respondMessage(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeySuccess: true,
		constants.JSONKeyMessage: msg,
		constants.JSONKeyData:    data,
	})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{constants.JSONKeySuccess: false, constants.JSONKeyError: msg})
}

// respondBattleError maps engine and store errors to HTTP responses.
// Anything not recognized is logged and reported as fallback with a 500.
func respondBattleError(c *gin.Context, err error, fallback string) {
	var nf *game.NotFoundError
	var im *engine.InvalidMoveError
	switch {
	case errors.As(err, &nf) && nf.Kind == "battle":
		respondError(c, http.StatusNotFound, constants.ErrBattleNotFound)
	case errors.As(err, &nf):
		respondError(c, http.StatusNotFound, constants.ErrLLMNotFound)
	case errors.As(err, &im):
		respondError(c, http.StatusBadRequest, constants.ErrInvalidMoveIDs)
	case errors.Is(err, engine.ErrInactiveSession):
		respondError(c, http.StatusConflict, constants.ErrBattleNotActive)
	default:
		logging.Error(fallback, err, logging.Fields{constants.LogFieldPath: c.FullPath()})
		respondError(c, http.StatusInternalServerError, fallback)
	}
}

// positiveParam parses s as an integer greater than zero.
func positiveParam(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
