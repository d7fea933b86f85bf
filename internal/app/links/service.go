package links

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tinyfox/internal/domain"
)

const (
	DefaultCodeLength         = 6
	DefaultAllocationAttempts = 5

	createErrWrapFmt = "links create: %w"

	day = 24 * time.Hour
)

// Config is the process configuration the core needs; it is passed in
// at construction and never read from the environment here.
type Config struct {
	BaseURL            string
	CodeLength         int
	AllocationAttempts int
}

type Option func(*Service)

// WithClock overrides the time source used for created_at, expiry and clicks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithCodeGenerator overrides the random code source.
func WithCodeGenerator(gen CodeGenerator) Option {
	return func(s *Service) {
		s.gen = gen
	}
}

type Service struct {
	repo    Repo
	alloc   *Allocator
	gen     CodeGenerator
	logger  Logger
	baseURL string
	now     func() time.Time
}

func New(repo Repo, cfg Config, logger Logger, opts ...Option) *Service {
	if logger == nil {
		logger = NopLogger{}
	}

	codeLen := cfg.CodeLength
	if codeLen <= 0 {
		codeLen = DefaultCodeLength
	}

	s := &Service{
		repo:    repo,
		gen:     NewRandomCodeGenerator(codeLen),
		logger:  logger,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.alloc = NewAllocator(s.gen, cfg.AllocationAttempts, logger)

	return s
}

var _ UseCase = (*Service)(nil)

func (s *Service) ShortURL(code string) string {
	return s.baseURL + "/" + code
}

// Expired reports whether the link has expired by the service clock.
func (s *Service) Expired(link domain.Link) bool {
	return link.ExpiredAt(s.clock())
}

func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Link, error) {
	destination := strings.TrimSpace(in.URL)
	if err := domain.ValidateDestinationURL(destination); err != nil {
		return domain.Link{}, err
	}

	note, err := normalizeNote(in.Note)
	if err != nil {
		return domain.Link{}, err
	}

	now := s.clock()

	var expiresAt *time.Time
	if in.ExpiresInDays != nil {
		if err := domain.ValidateExpiresInDays(*in.ExpiresInDays); err != nil {
			return domain.Link{}, err
		}

		t := now.Add(time.Duration(*in.ExpiresInDays) * day)
		expiresAt = &t
	}

	insert := func(ctx context.Context, code string) (domain.Link, error) {
		return s.repo.Create(ctx, domain.NewLink{
			Code:           code,
			DestinationURL: destination,
			CreatedAt:      now,
			ExpiresAt:      expiresAt,
			Note:           note,
		})
	}

	link, err := s.alloc.Allocate(ctx, in.CustomCode, insert)
	if err != nil {
		return domain.Link{}, fmt.Errorf(createErrWrapFmt, err)
	}

	s.logger.Info("link created", "code", link.Code, "custom", in.CustomCode != nil)

	return link, nil
}

// Resolve returns the destination for code and counts the visit.
// Expired and unknown codes are never counted.
func (s *Service) Resolve(ctx context.Context, code string) (string, error) {
	if err := domain.ValidateCode(code); err != nil {
		return "", domain.ErrNotFound
	}

	link, err := s.repo.RecordClick(ctx, code, s.clock())
	if err != nil {
		return "", fmt.Errorf("links resolve: %w", err)
	}

	return link.DestinationURL, nil
}

func (s *Service) Info(ctx context.Context, code string) (domain.Link, error) {
	if err := domain.ValidateCode(code); err != nil {
		return domain.Link{}, domain.ErrNotFound
	}

	link, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return domain.Link{}, fmt.Errorf("links info: %w", err)
	}

	return link, nil
}

func (s *Service) ListLinks(ctx context.Context, query LinksQuery) ([]domain.Link, int64, error) {
	items, err := s.repo.List(ctx, query.Sort, query.Range)
	if err != nil {
		return nil, 0, fmt.Errorf("links list: %w", err)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("links count: %w", err)
	}

	return items, total, nil
}

func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Link, error) {
	items, err := s.repo.List(ctx, RecentLinksSort, &Range{Start: 0, Count: limit})
	if err != nil {
		return nil, fmt.Errorf("links recent: %w", err)
	}

	return items, nil
}

// UpdateNote replaces the note; nil or blank clears it.
func (s *Service) UpdateNote(ctx context.Context, code string, note *string) (domain.Link, error) {
	if err := domain.ValidateCode(code); err != nil {
		return domain.Link{}, domain.ErrNotFound
	}

	normalized, err := normalizeNote(note)
	if err != nil {
		return domain.Link{}, err
	}

	link, err := s.repo.UpdateNote(ctx, code, normalized)
	if err != nil {
		return domain.Link{}, fmt.Errorf("links update note: %w", err)
	}

	return link, nil
}

// clock truncates to microseconds so values survive a postgres round trip.
func (s *Service) clock() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func normalizeNote(note *string) (*string, error) {
	if note == nil {
		return nil, nil
	}

	v := strings.TrimSpace(*note)
	if v == "" {
		return nil, nil
	}

	if err := domain.ValidateNote(v); err != nil {
		return nil, err
	}

	return &v, nil
}
