package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/constants"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/version"
)

// Health reports that the server is up.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":                 "OK",
		constants.JSONKeyMessage: constants.MsgHealthy,
		"timestamp":              time.Now().UTC().Format(time.RFC3339),
	})
}

// Version returns build and VCS metadata injected at build time.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, version.Get())
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, constants.ErrRouteNotFound)
}
