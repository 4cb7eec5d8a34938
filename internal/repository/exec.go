package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/vibe-gaming/geo-api/internal/repository/shape"
)

// fetcher runs one statement and returns its raw rows.
type fetcher func(ctx context.Context) ([]shape.Row, error)

// operation is a fetcher whose rows were already shaped into records.
type operation[T any] func(ctx context.Context) ([]T, error)

// withShaping applies s to the rows returned by fetch.
func withShaping[T any](s shape.Shape, fetch fetcher) operation[T] {
	return func(ctx context.Context) ([]T, error) {
		rows, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		return shape.Collect[T](s, rows)
	}
}

// withClassifiedErrors passes every failure of op through c.
func withClassifiedErrors[T any](c *Classifier, op operation[T]) operation[T] {
	return func(ctx context.Context) ([]T, error) {
		out, err := op(ctx)
		if err != nil {
			return nil, c.Classify(err)
		}
		return out, nil
	}
}

func single[T any](out []T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, shape.ErrEmptyResult
	}
	return &out[0], nil
}

func optional[T any](out []T, err error) (*T, error) {
	if err != nil || len(out) == 0 {
		return nil, err
	}
	return &out[0], nil
}

type executor struct {
	db *sqlx.DB
}

// named binds :name parameters from the db tags of arg.
func (e executor) named(query string, arg any) fetcher {
	return func(ctx context.Context) ([]shape.Row, error) {
		rows, err := sqlx.NamedQueryContext(ctx, e.db, query, arg)
		if err != nil {
			return nil, err
		}
		return scanRows(rows)
	}
}

func (e executor) query(query string, args ...any) fetcher {
	return func(ctx context.Context) ([]shape.Row, error) {
		rows, err := e.db.QueryxContext(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		return scanRows(rows)
	}
}

func scanRows(rows *sqlx.Rows) ([]shape.Row, error) {
	defer rows.Close()

	var out []shape.Row
	for rows.Next() {
		row := make(shape.Row)
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
