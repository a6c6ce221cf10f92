package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RequestLogger logs method, path, status, response size and duration of every request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		event := log.Info()
		if c.Writer.Status() >= 500 {
			event = log.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.RequestURI()).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Dur("dur", time.Since(start)).
			Msg("request")
	}
}
