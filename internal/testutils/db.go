package testutils

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tinyfox/internal/platform/sqldb"
)

type DBRetryConfig struct {
	Timeout time.Duration
	Backoff time.Duration
}

func DefaultDBRetryConfig() DBRetryConfig {
	return DBRetryConfig{
		Timeout: 10 * time.Second,
		Backoff: 200 * time.Millisecond,
	}
}

func OpenDBWithRetry(ctx context.Context, cfg sqldb.OpenConfig, rc DBRetryConfig) (*sqldb.DB, error) {
	deadline := time.Now().Add(rc.Timeout)

	var lastErr error

	for time.Now().Before(deadline) {
		db, err := sqldb.Open(ctx, cfg)
		if err == nil {
			return db, nil
		}

		lastErr = err
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("open db with retry: %w", ctx.Err())
		case <-time.After(rc.Backoff):
		}
	}

	return nil, fmt.Errorf("open db with retry (timeout=%s): %w", rc.Timeout, lastErr)
}

// NewSQLiteDB returns a migrated, private in-memory database closed on cleanup.
func NewSQLiteDB(t testing.TB) *sqldb.DB {
	t.Helper()

	ctx := context.Background()

	db, err := sqldb.Open(ctx, sqldb.OpenConfig{DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqldb.Migrate(ctx, db))

	return db
}
