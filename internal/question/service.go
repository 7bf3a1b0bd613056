package question

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// questionStore is the question access the service needs, implemented by the
// Postgres repository.
type questionStore interface {
	List(ctx context.Context) ([]Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)
	Search(ctx context.Context, term string) ([]Question, error)
	Insert(ctx context.Context, nq NewQuestion) (Question, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// categoryStore is the category access the service needs.
type categoryStore interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int) (Category, error)
}

// Service answers listing-style requests: it orchestrates repository reads,
// pagination and filtering. Every call works on a fresh snapshot from the
// store; the service keeps no state between requests.
type Service struct {
	questions  questionStore
	categories categoryStore
	paginator  Paginator
}

// NewService wires the stores with a paginator carrying the configured page
// size.
func NewService(questions questionStore, categories categoryStore, paginator Paginator) *Service {
	return &Service{
		questions:  questions,
		categories: categories,
		paginator:  paginator,
	}
}

// ListCategories returns all categories ordered by label. Zero categories is
// ErrNotFound, matching the public contract.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if len(cats) == 0 {
		return nil, ErrNotFound
	}
	return cats, nil
}

// ListQuestions returns one page of all questions plus the category list. An
// empty page is ErrNotFound, whether no questions exist or the page number
// runs past the data.
func (s *Service) ListQuestions(ctx context.Context, page int) (ListResult, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return ListResult{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	current := s.paginator.Page(all, page)
	if len(current) == 0 {
		return ListResult{}, ErrNotFound
	}

	cats, err := s.categories.List(ctx)
	if err != nil {
		return ListResult{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	return ListResult{
		Questions:  current,
		Total:      len(all),
		Categories: cats,
	}, nil
}

// Search returns one page of questions whose text contains term. Zero matches
// is a success with an empty page, never ErrNotFound.
func (s *Service) Search(ctx context.Context, term string, page int) (SearchResult, error) {
	matches, err := s.questions.Search(ctx, term)
	if err != nil {
		return SearchResult{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return SearchResult{
		Questions: s.paginator.Page(matches, page),
		Total:     len(matches),
	}, nil
}

// ListByCategory returns one page of a category's questions. A category that
// does not exist is ErrNotFound; an existing category with no questions is a
// success with an empty page.
func (s *Service) ListByCategory(ctx context.Context, categoryID, page int) (CategoryResult, error) {
	cat, err := s.categories.GetByID(ctx, categoryID)
	if errors.Is(err, ErrNotFound) {
		return CategoryResult{}, ErrNotFound
	}
	if err != nil {
		return CategoryResult{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	qs, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return CategoryResult{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	return CategoryResult{
		Questions: s.paginator.Page(qs, page),
		Total:     len(qs),
		Category:  cat,
	}, nil
}

// Create validates and inserts a question, then returns the refreshed first
// page of the listing.
func (s *Service) Create(ctx context.Context, nq NewQuestion) (CreateResult, error) {
	if strings.TrimSpace(nq.Text) == "" {
		return CreateResult{}, fmt.Errorf("%w: question text is required", ErrInvalidInput)
	}
	if strings.TrimSpace(nq.Answer) == "" {
		return CreateResult{}, fmt.Errorf("%w: answer is required", ErrInvalidInput)
	}
	if nq.Difficulty == 0 {
		return CreateResult{}, fmt.Errorf("%w: difficulty is required", ErrInvalidInput)
	}

	created, err := s.questions.Insert(ctx, nq)
	if err != nil {
		return CreateResult{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	all, err := s.questions.List(ctx)
	if err != nil {
		return CreateResult{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	cats, err := s.categories.List(ctx)
	if err != nil {
		return CreateResult{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	return CreateResult{
		Created:    created,
		Questions:  s.paginator.Page(all, 1),
		Total:      len(all),
		Categories: cats,
	}, nil
}

// Delete removes a question by id and returns the refreshed first page.
// Deleting an id that does not exist is ErrNotFound; a store failure after
// the row was seen is ErrStore.
func (s *Service) Delete(ctx context.Context, id int) (DeleteResult, error) {
	deleted, err := s.questions.Delete(ctx, id)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if !deleted {
		return DeleteResult{}, ErrNotFound
	}

	all, err := s.questions.List(ctx)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	cats, err := s.categories.List(ctx)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	return DeleteResult{
		Deleted:    id,
		Questions:  s.paginator.Page(all, 1),
		Total:      len(all),
		Categories: cats,
	}, nil
}
