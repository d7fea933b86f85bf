package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"tinyfox/internal/app/links"
	"tinyfox/internal/domain"
	"tinyfox/internal/platform/sqldb"
)

type rowScanner interface {
	Scan(dest ...any) error
}

type Repo struct {
	db         *sql.DB
	sb         sq.StatementBuilderType
	encodeTime timeEncoder
}

func NewRepo(db *sqldb.DB) *Repo {
	r := &Repo{
		db:         db.DB,
		sb:         sq.StatementBuilder.PlaceholderFormat(sq.Question),
		encodeTime: encodeSQLiteText,
	}

	if db.Dialect == sqldb.DialectPostgres {
		r.sb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		r.encodeTime = encodeNative
	}

	return r
}

var _ links.Repo = (*Repo)(nil)

// Create inserts the link in one statement; the unique index on code is
// the only collision check.
func (r *Repo) Create(ctx context.Context, link domain.NewLink) (domain.Link, error) {
	query, args, err := r.sb.Insert(sqlTableLinks).
		Columns(sqlColCode, sqlColDestinationURL, sqlColCreatedAt, sqlColExpiresAt, sqlColNote).
		Values(link.Code, link.DestinationURL, r.encodeTime(link.CreatedAt), r.optionalTime(link.ExpiresAt), nullString(link.Note)).
		Suffix(sqlReturningLinkCols).
		ToSql()
	if err != nil {
		return domain.Link{}, fmt.Errorf("sqlstore: build create link: %w", err)
	}

	out, err := scanLink(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Link{}, domain.ErrCodeAlreadyExists
		}

		return domain.Link{}, fmt.Errorf(errOpFmt, "create link", err)
	}

	return out, nil
}

func (r *Repo) GetByCode(ctx context.Context, code string) (domain.Link, error) {
	query, args, err := r.sb.Select(sqlLinksSelectCols...).
		From(sqlTableLinks + " " + sqlAliasLinks).
		Where(sq.Eq{qualify(sqlAliasLinks, sqlColCode): code}).
		ToSql()
	if err != nil {
		return domain.Link{}, fmt.Errorf("sqlstore: build get link by code: %w", err)
	}

	out, err := scanLink(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Link{}, domain.ErrNotFound
		}

		return domain.Link{}, fmt.Errorf(errOpFmt, "get link by code", err)
	}

	return out, nil
}

// RecordClick counts a visit with a single conditional UPDATE so that
// concurrent redirects never lose increments and expired links are never
// counted. When nothing matched, a follow-up read tells missing from expired.
func (r *Repo) RecordClick(ctx context.Context, code string, at time.Time) (domain.Link, error) {
	query, args, err := r.sb.Update(sqlTableLinks).
		Set(sqlColClickCount, sq.Expr(sqlColClickCount+" + 1")).
		Set(sqlColLastAccessedAt, r.encodeTime(at)).
		Where(sq.Eq{sqlColCode: code}).
		Where(sq.Or{
			sq.Eq{sqlColExpiresAt: nil},
			sq.Gt{sqlColExpiresAt: r.encodeTime(at)},
		}).
		Suffix(sqlReturningLinkCols).
		ToSql()
	if err != nil {
		return domain.Link{}, fmt.Errorf("sqlstore: build record click: %w", err)
	}

	out, err := scanLink(r.db.QueryRowContext(ctx, query, args...))
	if err == nil {
		return out, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return domain.Link{}, fmt.Errorf(errOpFmt, "record click", err)
	}

	if _, err := r.GetByCode(ctx, code); err != nil {
		return domain.Link{}, err
	}

	return domain.Link{}, domain.ErrExpired
}

func (r *Repo) UpdateNote(ctx context.Context, code string, note *string) (domain.Link, error) {
	query, args, err := r.sb.Update(sqlTableLinks).
		Set(sqlColNote, nullString(note)).
		Where(sq.Eq{sqlColCode: code}).
		Suffix(sqlReturningLinkCols).
		ToSql()
	if err != nil {
		return domain.Link{}, fmt.Errorf("sqlstore: build update note: %w", err)
	}

	out, err := scanLink(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Link{}, domain.ErrNotFound
		}

		return domain.Link{}, fmt.Errorf(errOpFmt, "update note", err)
	}

	return out, nil
}

func (r *Repo) List(ctx context.Context, sort links.Sort, page *links.Range) ([]domain.Link, error) {
	orderBy, err := orderByLinks(sort)
	if err != nil {
		return nil, err
	}

	builder := r.sb.Select(sqlLinksSelectCols...).
		From(sqlTableLinks + " " + sqlAliasLinks).
		OrderBy(orderBy)

	if page != nil {
		builder = builder.Limit(uint64(page.Count)).Offset(uint64(page.Start))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlstore: build list links: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf(errOpFmt, "list links", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	out := make([]domain.Link, 0)
	for rows.Next() {
		item, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf(errOpFmt, "list links", err)
		}

		out = append(out, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(errOpFmt, "list links", err)
	}

	return out, nil
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	query, args, err := r.sb.Select("COUNT(*)").From(sqlTableLinks).ToSql()
	if err != nil {
		return 0, fmt.Errorf("sqlstore: build count links: %w", err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf(errOpFmt, "count links", err)
	}

	return total, nil
}

func (r *Repo) optionalTime(t *time.Time) any {
	if t == nil {
		return nil
	}

	return r.encodeTime(*t)
}

func scanLink(row rowScanner) (domain.Link, error) {
	var (
		link           domain.Link
		createdAt      dbTime
		expiresAt      dbTime
		note           sql.NullString
		lastAccessedAt dbTime
	)

	err := row.Scan(
		&link.ID,
		&link.Code,
		&link.DestinationURL,
		&createdAt,
		&expiresAt,
		&note,
		&link.ClickCount,
		&lastAccessedAt,
	)
	if err != nil {
		return domain.Link{}, err
	}

	link.CreatedAt = createdAt.Time
	link.ExpiresAt = expiresAt.ptr()
	link.LastAccessedAt = lastAccessedAt.ptr()

	if note.Valid {
		v := note.String
		link.Note = &v
	}

	return link, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}
