package links

import (
	"context"

	"tinyfox/internal/domain"
)

// UseCase is an input port for the links application.
type UseCase interface {
	Create(ctx context.Context, in CreateInput) (domain.Link, error)
	Resolve(ctx context.Context, code string) (string, error)
	Info(ctx context.Context, code string) (domain.Link, error)
	ListLinks(ctx context.Context, query LinksQuery) ([]domain.Link, int64, error)
	Recent(ctx context.Context, limit int) ([]domain.Link, error)
	UpdateNote(ctx context.Context, code string, note *string) (domain.Link, error)
	ShortURL(code string) string
	Expired(link domain.Link) bool
}
