package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tinyfox/internal/adapters/httpapi/dto"
	"tinyfox/internal/app/links"
)

type CreateLinkRequest struct {
	URL           string  `json:"url" binding:"required" example:"https://example.com"`
	CustomCode    *string `json:"custom_code,omitempty" example:"hello"`
	ExpiresInDays *int    `json:"expires_in_days,omitempty" example:"7"`
	Note          *string `json:"note,omitempty" example:"demo"`
}

type UpdateNoteRequest struct {
	Note *string `json:"note" example:"campaign"`
}

func (h *Handler) CreateLink(c *gin.Context) {
	var req CreateLinkRequest

	if err := bindJSONStrict(c, &req); err != nil {
		badJSON(c)

		return
	}

	if errs, ok := validateStruct(req); ok {
		writeValidationErrors(c, errs)

		return
	}

	link, err := h.svc.Create(c.Request.Context(), links.CreateInput{
		URL:           req.URL,
		CustomCode:    req.CustomCode,
		ExpiresInDays: req.ExpiresInDays,
		Note:          req.Note,
	})
	if err != nil {
		h.fail(c, err)

		return
	}

	c.Header("Location", "/api/info/"+link.Code)
	c.JSON(http.StatusCreated, dto.CreatedFromDomain(link, h.svc.ShortURL(link.Code)))
}

func (h *Handler) Info(c *gin.Context) {
	link, err := h.svc.Info(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.InfoFromDomain(link, h.svc.ShortURL(link.Code)))
}

func (h *Handler) ListLinks(c *gin.Context) {
	rng, hasRange, err := parseRangeFromRequest(c)
	if err != nil {
		writeInvalidRange(c)

		return
	}

	rawSort, ok := parseReactAdminSort(c.Query("sort"))
	if !ok {
		h.fail(c, links.ErrInvalidSort)

		return
	}

	sort, err := links.NormalizeAndValidateSort(rawSort, links.DefaultLinksSort, links.AllowedLinksSortFields())
	if err != nil {
		h.fail(c, err)

		return
	}

	query := links.LinksQuery{Sort: sort}
	if hasRange {
		query.Range = &rng
	}

	items, total, err := h.svc.ListLinks(c.Request.Context(), query)
	if err != nil {
		h.fail(c, err)

		return
	}

	resp := make([]dto.LinkInfoResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, dto.InfoFromDomain(it, h.svc.ShortURL(it.Code)))
	}

	if hasRange {
		if len(items) == 0 {
			c.Header("Content-Range", fmt.Sprintf("links */%d", total))
		} else {
			end := rng.Start + len(items) - 1
			c.Header("Content-Range", fmt.Sprintf("links %d-%d/%d", rng.Start, end, total))
		}
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateNote replaces the note of a link; a null or blank note clears it.
func (h *Handler) UpdateNote(c *gin.Context) {
	var req UpdateNoteRequest

	if err := bindJSONStrict(c, &req); err != nil {
		badJSON(c)

		return
	}

	link, err := h.svc.UpdateNote(c.Request.Context(), c.Param("code"), req.Note)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.InfoFromDomain(link, h.svc.ShortURL(link.Code)))
}
