package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const contentTypePNG = "image/png"

// QRCode serves the short URL of an existing link as a PNG.
func (h *Handler) QRCode(c *gin.Context) {
	link, err := h.svc.Info(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.fail(c, err)

		return
	}

	png, err := h.qr.PNG(h.svc.ShortURL(link.Code))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, contentTypePNG, png)
}
