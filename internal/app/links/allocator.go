package links

import (
	"context"
	"errors"
	"fmt"

	"tinyfox/internal/domain"
)

// InsertFunc persists a link under code. It is the uniqueness check:
// a taken code must come back as domain.ErrCodeAlreadyExists.
type InsertFunc func(ctx context.Context, code string) (domain.Link, error)

// Allocator picks the code for a new link. Custom codes get exactly one
// insert attempt; generated codes are retried up to attempts times.
type Allocator struct {
	gen      CodeGenerator
	attempts int
	logger   Logger
}

func NewAllocator(gen CodeGenerator, attempts int, logger Logger) *Allocator {
	if logger == nil {
		logger = NopLogger{}
	}

	if attempts <= 0 {
		attempts = DefaultAllocationAttempts
	}

	return &Allocator{gen: gen, attempts: attempts, logger: logger}
}

func (a *Allocator) Allocate(ctx context.Context, customCode *string, insert InsertFunc) (domain.Link, error) {
	if customCode != nil {
		return a.allocateCustom(ctx, *customCode, insert)
	}

	return a.allocateGenerated(ctx, insert)
}

func (a *Allocator) allocateCustom(ctx context.Context, code string, insert InsertFunc) (domain.Link, error) {
	if err := domain.ValidateCode(code); err != nil {
		return domain.Link{}, err
	}

	return insert(ctx, code)
}

func (a *Allocator) allocateGenerated(ctx context.Context, insert InsertFunc) (domain.Link, error) {
	for attempt := 1; attempt <= a.attempts; attempt++ {
		code, err := a.gen.Generate()
		if err != nil {
			return domain.Link{}, fmt.Errorf("generate code: %w", err)
		}

		if domain.IsReservedCode(code) {
			continue
		}

		link, err := insert(ctx, code)
		if errors.Is(err, domain.ErrCodeAlreadyExists) {
			a.logger.Warn("generated code collided", "attempt", attempt, "max_attempts", a.attempts)

			continue
		}

		if err != nil {
			return domain.Link{}, err
		}

		return link, nil
	}

	return domain.Link{}, domain.ErrAllocationExhausted
}
