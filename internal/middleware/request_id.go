package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const RequestIDKey = "request_id"

// RequestID tags every request with an id (honoring an incoming
// X-Request-ID header) and logs request start/completion with it.
func RequestID(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Header("X-Request-ID", requestID)
		c.Set(RequestIDKey, requestID)

		loggerWithID := logger.With().Str("request_id", requestID).Logger()
		c.Request = c.Request.WithContext(loggerWithID.WithContext(c.Request.Context()))

		loggerWithID.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("remote_addr", c.ClientIP()).
			Msg("request started")

		c.Next()

		duration := time.Since(start)
		loggerWithID.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", duration).
			Msg("request completed")
	}
}
