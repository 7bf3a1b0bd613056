package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/triviaworks/trivia-api/internal/question"
)

// CategoryRepository runs category queries against Postgres.
type CategoryRepository struct {
	db DBTX
}

// NewCategoryRepository wraps a pgx pool (or transaction) for category access.
func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns all categories ordered by their display label.
func (r *CategoryRepository) List(ctx context.Context) ([]question.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, type FROM categories ORDER BY type`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := []question.Category{}
	for rows.Next() {
		var c question.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return out, nil
}

// GetByID fetches one category, returning question.ErrNotFound when absent so
// callers can gate category-scoped operations on existence.
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (question.Category, error) {
	var c question.Category
	err := r.db.QueryRow(ctx, `SELECT id, type FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Type)
	if errors.Is(err, pgx.ErrNoRows) {
		return question.Category{}, question.ErrNotFound
	}
	if err != nil {
		return question.Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return c, nil
}
