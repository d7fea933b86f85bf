package sqlstore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tinyfox/internal/adapters/sqlstore"
	"tinyfox/internal/app/links"
	"tinyfox/internal/domain"
	"tinyfox/internal/testutils"
)

var baseTime = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) *sqlstore.Repo {
	t.Helper()

	return sqlstore.NewRepo(testutils.NewSQLiteDB(t))
}

func mustCreate(t *testing.T, repo *sqlstore.Repo, l domain.NewLink) domain.Link {
	t.Helper()

	if l.CreatedAt.IsZero() {
		l.CreatedAt = baseTime
	}

	out, err := repo.Create(context.Background(), l)
	require.NoError(t, err)

	return out
}

func TestRepo_CreateAndGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	expires := baseTime.Add(7 * 24 * time.Hour)
	note := "demo"

	created := mustCreate(t, repo, domain.NewLink{
		Code:           "hello",
		DestinationURL: "https://example.com",
		CreatedAt:      baseTime.Add(123456 * time.Microsecond),
		ExpiresAt:      &expires,
		Note:           &note,
	})
	require.NotZero(t, created.ID)
	require.Equal(t, "hello", created.Code)
	require.Equal(t, baseTime.Add(123456*time.Microsecond), created.CreatedAt)
	require.Zero(t, created.ClickCount)
	require.Nil(t, created.LastAccessedAt)

	got, err := repo.GetByCode(ctx, "hello")
	require.NoError(t, err)
	require.Equal(t, created, got)
	require.Equal(t, "https://example.com", got.DestinationURL)
	require.Equal(t, expires, *got.ExpiresAt)
	require.Equal(t, "demo", *got.Note)
}

func TestRepo_GetByCode_NotFound(t *testing.T) {
	_, err := newRepo(t).GetByCode(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_CodesAreCaseSensitive(t *testing.T) {
	repo := newRepo(t)

	mustCreate(t, repo, domain.NewLink{Code: "Hello", DestinationURL: "https://a.test"})
	mustCreate(t, repo, domain.NewLink{Code: "hello", DestinationURL: "https://b.test"})

	got, err := repo.GetByCode(context.Background(), "Hello")
	require.NoError(t, err)
	require.Equal(t, "https://a.test", got.DestinationURL)
}

func TestRepo_CreateDuplicateCode(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	original := mustCreate(t, repo, domain.NewLink{Code: "taken", DestinationURL: "https://a.test"})

	_, err := repo.Create(ctx, domain.NewLink{
		Code:           "taken",
		DestinationURL: "https://b.test",
		CreatedAt:      baseTime,
	})
	require.ErrorIs(t, err, domain.ErrCodeAlreadyExists)

	got, err := repo.GetByCode(ctx, "taken")
	require.NoError(t, err)
	require.Equal(t, original, got)
}

func TestRepo_RecordClick(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	mustCreate(t, repo, domain.NewLink{Code: "abc", DestinationURL: "https://example.com"})

	at := baseTime.Add(time.Hour)
	got, err := repo.RecordClick(ctx, "abc", at)
	require.NoError(t, err)
	require.EqualValues(t, 1, got.ClickCount)
	require.Equal(t, "https://example.com", got.DestinationURL)
	require.NotNil(t, got.LastAccessedAt)
	require.Equal(t, at, *got.LastAccessedAt)

	later := at.Add(time.Minute)
	got, err = repo.RecordClick(ctx, "abc", later)
	require.NoError(t, err)
	require.EqualValues(t, 2, got.ClickCount)
	require.Equal(t, later, *got.LastAccessedAt)
}

func TestRepo_RecordClick_NotFound(t *testing.T) {
	_, err := newRepo(t).RecordClick(context.Background(), "missing", baseTime)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_RecordClick_ExpiredIsNotCounted(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	expires := baseTime.Add(time.Hour)
	mustCreate(t, repo, domain.NewLink{Code: "old", DestinationURL: "https://example.com", ExpiresAt: &expires})

	_, err := repo.RecordClick(ctx, "old", baseTime.Add(30*time.Minute))
	require.NoError(t, err)

	// expiry is inclusive
	_, err = repo.RecordClick(ctx, "old", expires)
	require.ErrorIs(t, err, domain.ErrExpired)

	_, err = repo.RecordClick(ctx, "old", expires.Add(24*time.Hour))
	require.ErrorIs(t, err, domain.ErrExpired)

	got, err := repo.GetByCode(ctx, "old")
	require.NoError(t, err)
	require.EqualValues(t, 1, got.ClickCount)
	require.Equal(t, baseTime.Add(30*time.Minute), *got.LastAccessedAt)
}

func TestRepo_RecordClick_ConcurrentNoLostUpdates(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	mustCreate(t, repo, domain.NewLink{Code: "hot", DestinationURL: "https://example.com"})

	const n = 50

	stamps := make(map[time.Time]struct{}, n)

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := range n {
		at := baseTime.Add(time.Duration(i+1) * time.Second)
		stamps[at] = struct{}{}

		wg.Add(1)
		go func() {
			defer wg.Done()

			if _, err := repo.RecordClick(ctx, "hot", at); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	got, err := repo.GetByCode(ctx, "hot")
	require.NoError(t, err)
	require.EqualValues(t, n, got.ClickCount)
	require.NotNil(t, got.LastAccessedAt)
	require.Contains(t, stamps, *got.LastAccessedAt)
}

func TestRepo_UpdateNote(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created := mustCreate(t, repo, domain.NewLink{Code: "n1", DestinationURL: "https://example.com"})

	note := "hello"
	got, err := repo.UpdateNote(ctx, "n1", &note)
	require.NoError(t, err)
	require.Equal(t, "hello", *got.Note)
	require.Equal(t, created.DestinationURL, got.DestinationURL)

	got, err = repo.UpdateNote(ctx, "n1", nil)
	require.NoError(t, err)
	require.Nil(t, got.Note)

	_, err = repo.UpdateNote(ctx, "missing", &note)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_ListAndCount(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	for i := range 5 {
		mustCreate(t, repo, domain.NewLink{
			Code:           fmt.Sprintf("code%d", i),
			DestinationURL: fmt.Sprintf("https://example.com/%d", i),
			CreatedAt:      baseTime.Add(time.Duration(i) * time.Minute),
		})
	}

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)

	all, err := repo.List(ctx, links.DefaultLinksSort, nil)
	require.NoError(t, err)
	require.Len(t, all, 5)
	require.Equal(t, "code0", all[0].Code)

	recent, err := repo.List(ctx, links.RecentLinksSort, &links.Range{Start: 0, Count: 2})
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "code4", recent[0].Code)
	require.Equal(t, "code3", recent[1].Code)

	page, err := repo.List(ctx, links.Sort{Field: links.SortFieldCode, Order: links.SortAsc}, &links.Range{Start: 3, Count: 10})
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "code3", page[0].Code)

	_, err = repo.List(ctx, links.Sort{Field: "nope", Order: links.SortAsc}, nil)
	require.ErrorIs(t, err, links.ErrInvalidSort)
}

func TestRepo_ListEmpty(t *testing.T) {
	items, err := newRepo(t).List(context.Background(), links.DefaultLinksSort, nil)
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}
