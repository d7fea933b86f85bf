package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccessLog writes one line per request.
func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", max(c.Writer.Size(), 0)),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.String("request_id", GetRequestID(c)),
		}

		if status >= http.StatusInternalServerError {
			logger.Error("http_request", fields...)

			return
		}

		logger.Info("http_request", fields...)
	}
}
