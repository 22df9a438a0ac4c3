package selector

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"mergington.dev/backend/internal/pkg/apierr"
)

type S[T any] struct {
	DB *bun.DB
}

func New[T any](db *bun.DB) S[T] {
	return S[T]{
		DB: db,
	}
}

// SelectOne scans a single row into a new T, returning apierr.ErrNotFound when no row matches.
func (r S[T]) SelectOne(ctx context.Context, fn func(q *bun.SelectQuery) *bun.SelectQuery) (*T, error) {
	var model T
	err := fn(r.DB.NewSelect().Model(&model)).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apierr.ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return &model, nil
}

// SelectMany scans every matching row. No match yields an empty slice.
func (r S[T]) SelectMany(ctx context.Context, fn func(q *bun.SelectQuery) *bun.SelectQuery) ([]*T, error) {
	models := []*T{}
	err := fn(r.DB.NewSelect().Model(&models)).Scan(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return models, nil
}

func (r S[T]) Count(ctx context.Context) (int, error) {
	return r.DB.NewSelect().Model((*T)(nil)).Count(ctx)
}
