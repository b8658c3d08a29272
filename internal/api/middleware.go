package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/constants"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/logging"
)

// requestLogger writes one structured line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Info("request", logging.Fields{
			constants.LogFieldMethod:    c.Request.Method,
			constants.LogFieldPath:      c.Request.URL.Path,
			constants.LogFieldStatus:    c.Writer.Status(),
			constants.LogFieldLatencyMS: time.Since(start).Milliseconds(),
		})
	}
}

// noCache marks every API response as uncacheable.
func noCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(constants.CacheControlHeader, constants.CacheControlNoCache)
		c.Next()
	}
}
