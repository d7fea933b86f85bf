package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Redirect resolves a short code and counts the visit. Unknown codes are
// 404 and expired ones 410.
func (h *Handler) Redirect(c *gin.Context) {
	url, err := h.svc.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.Header("Cache-Control", "no-store")
	c.Redirect(http.StatusTemporaryRedirect, url)
}
