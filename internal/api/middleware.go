package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"study-assistant/internal/helper"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id and logs it once it completes
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := helper.RequestID(c.GetHeader(requestIDHeader))
		c.Header(requestIDHeader, reqID)

		c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("Request handled")
	}
}
