package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/xavierca1/inbox-crm/internal/entity"
)

// Querier is satisfied by both *sql.DB and *sql.Tx, so the same repositories
// serve standalone reads and the intake transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// mapError translates driver errors into the entity sentinels the use cases
// branch on. 23505 is unique_violation.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return entity.ErrDuplicate
	}

	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fromNull(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
