// Package repository handles all interactions with the database.
//
// Each repository owns the SQL for one table. Statements are built with
// squirrel and rows are scanned into model structs by their `db` tags.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/school-personnel/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

// DBTX is the subset of *pgxpool.Pool the repositories use. A pgx.Tx
// satisfies it as well.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// builder renders PostgreSQL ($1, $2, ...) placeholders.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// queryOne runs q and scans exactly one row. An empty result is reported
// as sqlerr.NotFound(table).
func queryOne[T any](ctx context.Context, db DBTX, table string, q squirrel.Sqlizer) (T, error) {
	var zero T

	query, args, err := q.ToSql()
	if err != nil {
		return zero, fmt.Errorf("building %s query: %w", table, err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, fmt.Errorf("querying %s: %w", table, err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, sqlerr.NotFound(table)
		}
		return zero, fmt.Errorf("scanning %s: %w", table, err)
	}

	return item, nil
}

// queryAll runs q and scans every row. It never returns a nil slice so
// empty results encode as [].
func queryAll[T any](ctx context.Context, db DBTX, table string, q squirrel.Sqlizer) ([]T, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building %s query: %w", table, err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", table, err)
	}

	if items == nil {
		items = []T{}
	}
	return items, nil
}
