package quiz

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/triviaworks/trivia-api/internal/question"
)

// ScopeAll is the wire label selecting the unfiltered question pool.
const ScopeAll = "ALL"

// Scope names the pool a quiz draws from: every question, or one category.
type Scope struct {
	All        bool
	CategoryID int
}

// AllScope selects the unfiltered pool.
func AllScope() Scope {
	return Scope{All: true}
}

// CategoryScope selects one category's pool.
func CategoryScope(id int) Scope {
	return Scope{CategoryID: id}
}

// poolStore is the read access the selector needs.
type poolStore interface {
	List(ctx context.Context) ([]question.Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]question.Question, error)
}

// Selector picks the next quiz question from a scoped pool, excluding
// already-asked ids. It holds no session state: the asked history arrives
// from the caller on every call and goes back updated for the caller to
// resend.
type Selector struct {
	store     poolStore
	paginator question.Paginator

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector builds a Selector. The rand source is injected so tests can
// seed it; concurrent calls share it under a mutex.
func NewSelector(store poolStore, paginator question.Paginator, rng *rand.Rand) *Selector {
	return &Selector{store: store, paginator: paginator, rng: rng}
}

// Next returns one not-yet-asked question from the scoped pool together with
// the updated asked list, or (nil, nil, nil) when the pool is exhausted.
//
// Draws come only from the first page of the scoped pool: the playable pool
// for a quiz is capped at one page regardless of how many questions the
// scope holds. Asked ids that fall outside the pool are dropped, never an
// error; when dropping them empties the remaining set while the asked count
// still differs from the pool size, the draw falls back to the full page.
func (s *Selector) Next(ctx context.Context, scope Scope, askedIDs []int) (*question.Question, []int, error) {
	var (
		candidates []question.Question
		err        error
	)
	if scope.All {
		candidates, err = s.store.List(ctx)
	} else {
		candidates, err = s.store.ListByCategory(ctx, scope.CategoryID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", question.ErrStore, err)
	}

	pool := s.paginator.Page(candidates, 1)
	if len(pool) == 0 {
		return nil, nil, question.ErrNotFound
	}

	if len(askedIDs) == len(pool) {
		// Exhaustion: every pool question has been asked. The asked
		// history is not updated.
		return nil, nil, nil
	}

	asked := make(map[int]struct{}, len(askedIDs))
	for _, id := range askedIDs {
		asked[id] = struct{}{}
	}

	poolIDs := make([]int, 0, len(pool))
	remaining := make([]int, 0, len(pool))
	for _, q := range pool {
		poolIDs = append(poolIDs, q.ID)
		if _, ok := asked[q.ID]; !ok {
			remaining = append(remaining, q.ID)
		}
	}
	if len(remaining) == 0 {
		remaining = poolIDs
	}

	s.mu.Lock()
	pickedID := remaining[s.rng.Intn(len(remaining))]
	s.mu.Unlock()

	for i := range pool {
		if pool[i].ID == pickedID {
			picked := pool[i]
			return &picked, append(append([]int{}, askedIDs...), pickedID), nil
		}
	}

	// Unreachable: pickedID always comes from pool ids.
	return nil, nil, fmt.Errorf("%w: picked id %d missing from pool", question.ErrStore, pickedID)
}
