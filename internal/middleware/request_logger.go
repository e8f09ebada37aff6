package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/logger"
)

// RequestLogger logs every request to the console and, when recorder is
// set, to the journal. Paths in skip are neither logged nor journaled.
func RequestLogger(recorder EntryRecorder, skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skipped[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		level := levelForStatus(statusCode)

		log := logger.Logger().With().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Logger()

		switch level {
		case "error":
			log.Error().Msg("HTTP request")
		case "warn":
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if recorder == nil {
			return
		}
		recorder.Log(&model.LogEntry{
			Timestamp:  time.Now().UTC(),
			Level:      level,
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: statusCode,
			DurationMS: latency.Milliseconds(),
			ClientIP:   c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		})
	}
}

func levelForStatus(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
