package plugins

import (
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tinyfox/internal/adapters/httpapi/middleware"
)

func RequestID() func(*gin.Engine) {
	return func(r *gin.Engine) {
		r.Use(middleware.RequestID())
	}
}

func AccessLog(logger *zap.Logger) func(*gin.Engine) {
	return func(r *gin.Engine) {
		r.Use(middleware.AccessLog(logger))
	}
}

func Recovery(logger *zap.Logger) func(*gin.Engine) {
	return func(r *gin.Engine) {
		r.Use(middleware.Recovery(logger))
	}
}

// Sentry must run inside Recovery so repanics are captured before the
// problem response is written.
func Sentry(timeout time.Duration) func(*gin.Engine) {
	return func(r *gin.Engine) {
		r.Use(sentrygin.New(sentrygin.Options{
			Repanic: true,
			Timeout: timeout,
		}))
	}
}

func RequestTimeout(d time.Duration) func(*gin.Engine) {
	return func(r *gin.Engine) {
		if d > 0 {
			r.Use(middleware.RequestTimeout(d))
		}
	}
}

func CORS(origins []string) func(*gin.Engine) {
	return func(r *gin.Engine) {
		if len(origins) > 0 {
			r.Use(middleware.CORS(origins))
		}
	}
}
