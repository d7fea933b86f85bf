package dto

import (
	"time"

	"tinyfox/internal/domain"
)

type CreateLinkResponse struct {
	Code           string     `json:"code"`
	ShortURL       string     `json:"short_url"`
	DestinationURL string     `json:"destination_url"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

type LinkInfoResponse struct {
	Code           string     `json:"code"`
	ShortURL       string     `json:"short_url"`
	DestinationURL string     `json:"destination_url"`
	CreatedAt      time.Time  `json:"created_at"`
	ExpiresAt      *time.Time `json:"expires_at"`
	ClickCount     int64      `json:"click_count"`
	LastAccessedAt *time.Time `json:"last_accessed_at"`
	Note           *string    `json:"note"`
}

func CreatedFromDomain(l domain.Link, shortURL string) CreateLinkResponse {
	return CreateLinkResponse{
		Code:           l.Code,
		ShortURL:       shortURL,
		DestinationURL: l.DestinationURL,
		ExpiresAt:      l.ExpiresAt,
	}
}

func InfoFromDomain(l domain.Link, shortURL string) LinkInfoResponse {
	return LinkInfoResponse{
		Code:           l.Code,
		ShortURL:       shortURL,
		DestinationURL: l.DestinationURL,
		CreatedAt:      l.CreatedAt,
		ExpiresAt:      l.ExpiresAt,
		ClickCount:     l.ClickCount,
		LastAccessedAt: l.LastAccessedAt,
		Note:           l.Note,
	}
}
