package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/triviaworks/trivia-api/internal/question"
)

// QuestionRepository runs question queries against Postgres. Ordering is by
// id ascending everywhere so pagination stays stable across calls.
type QuestionRepository struct {
	db DBTX
}

// NewQuestionRepository wraps a pgx pool (or transaction) for question access.
func NewQuestionRepository(db DBTX) *QuestionRepository {
	return &QuestionRepository{db: db}
}

const questionColumns = `id, question, answer, category, difficulty`

func scanQuestions(rows pgx.Rows) ([]question.Question, error) {
	defer rows.Close()

	out := []question.Question{}
	for rows.Next() {
		var q question.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Answer, &q.CategoryID, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return out, nil
}

// List returns every question ordered by id.
func (r *QuestionRepository) List(ctx context.Context) ([]question.Question, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+questionColumns+` FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return scanQuestions(rows)
}

// ListByCategory returns every question in one category ordered by id. An
// empty slice means the category has no questions; category existence is the
// caller's check.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]question.Question, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE category = $1 ORDER BY id`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list questions by category: %w", err)
	}
	return scanQuestions(rows)
}

// Search returns questions whose text contains term, case-insensitively,
// ordered by id.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]question.Question, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE question ILIKE '%' || $1 || '%' ORDER BY id`, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return scanQuestions(rows)
}

// Insert stores a new question and returns it with the assigned id.
func (r *QuestionRepository) Insert(ctx context.Context, nq question.NewQuestion) (question.Question, error) {
	var q question.Question
	err := r.db.QueryRow(ctx,
		`INSERT INTO questions (question, answer, category, difficulty)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+questionColumns,
		nq.Text, nq.Answer, nq.CategoryID, nq.Difficulty,
	).Scan(&q.ID, &q.Text, &q.Answer, &q.CategoryID, &q.Difficulty)
	if err != nil {
		return question.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return q, nil
}

// Delete removes a question by id and reports whether a row was deleted.
func (r *QuestionRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete question: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
