package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tinyfox/internal/adapters/httpapi/problems"
)

func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", GetRequestID(c)),
			zap.Stack("stack"),
		)

		problems.WriteProblem(c, problems.Problem{
			Type:   problems.ProblemTypeInternal,
			Title:  problems.TitleInternalError,
			Status: http.StatusInternalServerError,
			Detail: problems.DetailInternalError,
		})
	})
}
