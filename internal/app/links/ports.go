package links

import (
	"context"
	"time"

	"tinyfox/internal/domain"
)

// Repo is the link store. Implementations must enforce code uniqueness
// at the storage layer and report a collision as domain.ErrCodeAlreadyExists.
type Repo interface {
	Create(ctx context.Context, link domain.NewLink) (domain.Link, error)
	GetByCode(ctx context.Context, code string) (domain.Link, error)

	// RecordClick atomically increments click_count and sets last_accessed_at
	// for a link that is not expired at `at`. It returns domain.ErrNotFound or
	// domain.ErrExpired without counting anything otherwise.
	RecordClick(ctx context.Context, code string, at time.Time) (domain.Link, error)

	UpdateNote(ctx context.Context, code string, note *string) (domain.Link, error)
	List(ctx context.Context, sort Sort, page *Range) ([]domain.Link, error)
	Count(ctx context.Context) (int64, error)
}
