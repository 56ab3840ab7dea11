package monitoring

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware records per-request metrics and writes one structured log line
// per completed request.
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		metrics.RecordRequest(status, duration)

		logger := slog.With(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", duration.Milliseconds(),
			"ip", c.ClientIP(),
		)

		switch {
		case status >= 500:
			logger.Error("Request failed")
		case status >= 400:
			logger.Warn("Request rejected")
		default:
			logger.Info("Request completed")
		}
	}
}
