package handlers

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tinyfox/internal/app/links"
	"tinyfox/internal/domain"
)

const (
	recentLinksLimit = 10

	pageIndex    = "index.html"
	pageCreated  = "created.html"
	pageStats    = "stats.html"
	pageNotFound = "notfound.html"
)

type shortenForm struct {
	URL           string
	CustomCode    string
	ExpiresInDays string
	Note          string
}

type linkView struct {
	Code           string
	ShortURL       string
	DestinationURL string
	CreatedAt      time.Time
	ExpiresAt      *time.Time
	ClickCount     int64
	LastAccessedAt *time.Time
	Note           string
	Expired        bool
	QR             template.URL
}

func (h *Handler) Home(c *gin.Context) {
	h.renderHome(c, http.StatusOK, shortenForm{}, "")
}

// Shorten handles the HTML form. Empty optional fields are treated as absent.
func (h *Handler) Shorten(c *gin.Context) {
	form := shortenForm{
		URL:           strings.TrimSpace(c.PostForm("url")),
		CustomCode:    strings.TrimSpace(c.PostForm("custom_code")),
		ExpiresInDays: strings.TrimSpace(c.PostForm("expires_in_days")),
		Note:          strings.TrimSpace(c.PostForm("note")),
	}

	in := links.CreateInput{URL: form.URL}
	if form.CustomCode != "" {
		in.CustomCode = &form.CustomCode
	}

	if form.Note != "" {
		in.Note = &form.Note
	}

	if form.ExpiresInDays != "" {
		days, err := strconv.Atoi(form.ExpiresInDays)
		if err != nil {
			h.renderFormError(c, form, domain.ErrInvalidExpiry)

			return
		}

		in.ExpiresInDays = &days
	}

	link, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.renderFormError(c, form, err)

		return
	}

	c.HTML(http.StatusCreated, pageCreated, gin.H{"Link": h.view(link, true)})
}

func (h *Handler) Stats(c *gin.Context) {
	link, err := h.svc.Info(c.Request.Context(), c.Param("code"))
	if err != nil {
		p := problemFromError(err)
		h.report(c, p.Status, err)

		c.HTML(p.Status, pageNotFound, gin.H{"Message": p.Detail})

		return
	}

	c.HTML(http.StatusOK, pageStats, gin.H{"Link": h.view(link, true)})
}

func (h *Handler) renderFormError(c *gin.Context, form shortenForm, err error) {
	p := problemFromError(err)
	h.report(c, p.Status, err)

	h.renderHome(c, p.Status, form, p.Detail)
}

func (h *Handler) renderHome(c *gin.Context, status int, form shortenForm, msg string) {
	recent, err := h.svc.Recent(c.Request.Context(), recentLinksLimit)
	if err != nil {
		h.logger.Warn("load recent links", zap.Error(err))
	}

	views := make([]linkView, 0, len(recent))
	for _, l := range recent {
		views = append(views, h.view(l, false))
	}

	c.HTML(status, pageIndex, gin.H{
		"Form":   form,
		"Error":  msg,
		"Recent": views,
	})
}

func (h *Handler) view(l domain.Link, withQR bool) linkView {
	v := linkView{
		Code:           l.Code,
		ShortURL:       h.svc.ShortURL(l.Code),
		DestinationURL: l.DestinationURL,
		CreatedAt:      l.CreatedAt,
		ExpiresAt:      l.ExpiresAt,
		ClickCount:     l.ClickCount,
		LastAccessedAt: l.LastAccessedAt,
		Expired:        h.svc.Expired(l),
	}

	if l.Note != nil {
		v.Note = *l.Note
	}

	if withQR && h.qr != nil {
		uri, err := h.qr.DataURI(v.ShortURL)
		if err != nil {
			h.logger.Warn("render qr code", zap.String("code", l.Code), zap.Error(err))
		} else {
			v.QR = template.URL(uri) //nolint:gosec // generated base64 png data uri
		}
	}

	return v
}
