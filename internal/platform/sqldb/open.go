package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

var ErrUnsupportedDSN = errors.New("unsupported database url")

// sqlitePragmas are appended to local sqlite DSNs.
const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

type OpenConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB is a pool together with the SQL dialect spoken on it.
type DB struct {
	*sql.DB
	Dialect Dialect
}

type target struct {
	driver  string
	dsn     string
	dialect Dialect
	local   bool
}

// Open picks the driver from the DSN:
//
//	postgres://, postgresql://  -> pgx
//	libsql://, wss://, ws://    -> libsql (remote sqlite)
//	sqlite://path, file:, :memory: -> modernc sqlite
func Open(ctx context.Context, cfg OpenConfig) (*DB, error) {
	t, err := resolve(cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(t.driver, t.dsn)
	if err != nil {
		return nil, err
	}

	if t.local {
		// one connection serializes writers and keeps :memory: databases alive
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &DB{DB: db, Dialect: t.dialect}, nil
}

// DialectOf reports the dialect a DSN would be opened with.
func DialectOf(dsn string) (Dialect, error) {
	t, err := resolve(dsn)
	if err != nil {
		return "", err
	}

	return t.dialect, nil
}

func resolve(dsn string) (target, error) {
	dsn = strings.TrimSpace(dsn)

	switch {
	case dsn == "":
		return target{}, ErrUnsupportedDSN
	case hasPrefix(dsn, "postgres://", "postgresql://"):
		return target{driver: "pgx", dsn: dsn, dialect: DialectPostgres}, nil
	case hasPrefix(dsn, "libsql://", "wss://", "ws://"):
		return target{driver: "libsql", dsn: dsn, dialect: DialectSQLite}, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return localSQLite(strings.TrimPrefix(dsn, "sqlite://")), nil
	case hasPrefix(dsn, "file:", ":memory:"):
		return localSQLite(dsn), nil
	default:
		return target{}, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redact(dsn))
	}
}

func localSQLite(path string) target {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	return target{
		driver:  "sqlite",
		dsn:     path + sep + sqlitePragmas,
		dialect: DialectSQLite,
		local:   true,
	}
}

func hasPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}

	return false
}

// redact keeps the scheme only; DSNs may carry credentials.
func redact(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}

	if len(dsn) > 8 {
		return dsn[:8] + "..."
	}

	return dsn
}
