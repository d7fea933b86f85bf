package handlers

import (
	"errors"
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tinyfox/internal/adapters/httpapi/problems"
	"tinyfox/internal/app/links"
)

// QRRenderer renders a short URL as a PNG QR code.
type QRRenderer interface {
	PNG(content string) ([]byte, error)
	DataURI(content string) (string, error)
}

type Handler struct {
	svc    links.UseCase
	qr     QRRenderer
	logger *zap.Logger
}

func New(svc links.UseCase, qr QRRenderer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{svc: svc, qr: qr, logger: logger}
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, links.ErrInvalidSort) {
		writeInvalidSort(c)

		return
	}

	p := problemFromError(err)
	h.report(c, p.Status, err)
	problems.WriteProblem(c, p)
}

// report logs server side failures and forwards them to the request hub.
func (h *Handler) report(c *gin.Context, status int, err error) {
	if status < http.StatusInternalServerError {
		return
	}

	h.logger.Error("request failed",
		zap.Error(err),
		zap.Int("status", status),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	)

	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
}

func (h *Handler) NotFound(c *gin.Context) {
	problems.WriteProblem(c, problems.Problem{
		Type:   problems.ProblemTypeNotFound,
		Title:  problems.TitleNotFound,
		Status: http.StatusNotFound,
		Detail: problems.DetailNotFound,
	})
}
