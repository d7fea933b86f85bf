package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tinyfox/internal/adapters/httpapi/handlers"
	"tinyfox/internal/adapters/httpapi/web"
	"tinyfox/internal/app/links"
)

const codePath = "/:code"

type RouterDeps struct {
	Links  links.UseCase
	QR     handlers.QRRenderer
	Logger *zap.Logger
}

type EnginePlugin func(*gin.Engine)

// NewEngine creates a bare gin.Engine and applies plugins in order.
func NewEngine(plugins ...EnginePlugin) *gin.Engine {
	r := gin.New()

	for _, p := range plugins {
		p(r)
	}

	return r
}

// RegisterRoutes attaches the HTML pages, the JSON API and the root
// redirect to an existing engine. Codes that would shadow these routes
// are reserved at allocation time.
func RegisterRoutes(r *gin.Engine, deps RouterDeps) {
	h := handlers.New(deps.Links, deps.QR, deps.Logger)

	r.SetHTMLTemplate(web.Templates())
	r.NoRoute(h.NotFound)

	r.GET("/ping", h.Ping)
	r.GET("/healthz", h.Ping)

	r.GET("/", h.Home)
	r.POST("/shorten", h.Shorten)
	r.GET("/stats"+codePath, h.Stats)

	api := r.Group("/api")
	{
		api.POST("/shorten", h.CreateLink)
		api.GET("/info"+codePath, h.Info)
		api.GET("/links", h.ListLinks)
		api.PATCH("/links"+codePath, h.UpdateNote)
		api.GET("/qr"+codePath, h.QRCode)
	}

	r.GET(codePath, h.Redirect)
}
