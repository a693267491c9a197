package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Logger writes one line per request. Server errors log at error level, client errors
// at warn, everything else at info.
func Logger(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		lvl := level.Info
		switch {
		case status >= 500:
			lvl = level.Error
		case status >= 400:
			lvl = level.Warn
		}
		_ = lvl(logger).Log(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
			"status", status,
			"latency", time.Since(start).String(),
			"request_id", c.GetString(RequestIDKey),
		)
	}
}
