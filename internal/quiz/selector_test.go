package quiz

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triviaworks/trivia-api/internal/question"
)

type stubPoolStore struct {
	all     []question.Question
	byCat   map[int][]question.Question
	listErr error
}

func (s *stubPoolStore) List(_ context.Context) ([]question.Question, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.all, nil
}

func (s *stubPoolStore) ListByCategory(_ context.Context, categoryID int) ([]question.Question, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.byCat[categoryID], nil
}

func poolOf(ids ...int) []question.Question {
	qs := make([]question.Question, 0, len(ids))
	for _, id := range ids {
		qs = append(qs, question.Question{ID: id, Text: "q", Answer: "a", Difficulty: 1})
	}
	return qs
}

func newTestSelector(store *stubPoolStore, pageSize int) *Selector {
	return NewSelector(store, question.NewPaginator(pageSize), rand.New(rand.NewSource(1)))
}

func TestNextDrawsFromPool(t *testing.T) {
	store := &stubPoolStore{all: poolOf(1, 2, 3)}
	sel := newTestSelector(store, 10)

	picked, updated, err := sel.Next(context.Background(), AllScope(), nil)
	require.NoError(t, err)
	require.NotNil(t, picked)
	assert.Contains(t, []int{1, 2, 3}, picked.ID)
	assert.Equal(t, []int{picked.ID}, updated)
}

func TestNextNeverRepeatsWithinSession(t *testing.T) {
	store := &stubPoolStore{all: poolOf(1, 2, 3, 4, 5)}
	sel := newTestSelector(store, 10)

	seen := map[int]bool{}
	var asked []int
	for i := 0; i < 5; i++ {
		picked, updated, err := sel.Next(context.Background(), AllScope(), asked)
		require.NoError(t, err)
		require.NotNil(t, picked, "draw %d should yield a question", i+1)
		assert.False(t, seen[picked.ID], "id %d repeated", picked.ID)
		seen[picked.ID] = true
		asked = updated
	}
	assert.Len(t, asked, 5)
}

func TestNextReportsExhaustion(t *testing.T) {
	store := &stubPoolStore{all: poolOf(1, 2, 3)}
	sel := newTestSelector(store, 10)

	var asked []int
	for i := 0; i < 3; i++ {
		_, updated, err := sel.Next(context.Background(), AllScope(), asked)
		require.NoError(t, err)
		asked = updated
	}

	picked, updated, err := sel.Next(context.Background(), AllScope(), asked)
	require.NoError(t, err)
	assert.Nil(t, picked, "4th draw over a pool of 3 is exhaustion")
	assert.Nil(t, updated, "asked history is not updated on exhaustion")
}

func TestNextScopesByCategory(t *testing.T) {
	store := &stubPoolStore{
		all:   poolOf(1, 2, 3, 4),
		byCat: map[int][]question.Question{7: poolOf(3, 4)},
	}
	sel := newTestSelector(store, 10)

	for i := 0; i < 10; i++ {
		picked, _, err := sel.Next(context.Background(), CategoryScope(7), nil)
		require.NoError(t, err)
		require.NotNil(t, picked)
		assert.Contains(t, []int{3, 4}, picked.ID)
	}
}

func TestNextCapsPoolAtFirstPage(t *testing.T) {
	// 15 candidates, page size 10: only ids 1..10 are playable and the 11th
	// draw reports exhaustion even though questions remain in the scope.
	store := &stubPoolStore{all: poolOf(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)}
	sel := newTestSelector(store, 10)

	var asked []int
	for i := 0; i < 10; i++ {
		picked, updated, err := sel.Next(context.Background(), AllScope(), asked)
		require.NoError(t, err)
		require.NotNil(t, picked)
		assert.LessOrEqual(t, picked.ID, 10, "draws stay on the first page")
		asked = updated
	}

	picked, updated, err := sel.Next(context.Background(), AllScope(), asked)
	require.NoError(t, err)
	assert.Nil(t, picked)
	assert.Nil(t, updated)
}

func TestNextDropsAskedIDsOutsidePool(t *testing.T) {
	store := &stubPoolStore{all: poolOf(1, 2, 3)}
	sel := newTestSelector(store, 10)

	// 90 and 91 belong to another scope's history; they are ignored.
	picked, updated, err := sel.Next(context.Background(), AllScope(), []int{1, 90})
	require.NoError(t, err)
	require.NotNil(t, picked)
	assert.Contains(t, []int{2, 3}, picked.ID)
	assert.Equal(t, []int{1, 90, picked.ID}, updated)
}

func TestNextFallsBackToFullPoolOnForeignHistory(t *testing.T) {
	// The whole pool was asked plus a foreign id, so the counts differ and
	// the remaining set is empty: the draw falls back to the full candidate
	// id list instead of failing.
	store := &stubPoolStore{all: poolOf(1, 2)}
	sel := newTestSelector(store, 10)

	picked, updated, err := sel.Next(context.Background(), AllScope(), []int{1, 2, 90})
	require.NoError(t, err)
	require.NotNil(t, picked)
	assert.Contains(t, []int{1, 2}, picked.ID)
	assert.Len(t, updated, 4)
}

func TestNextEmptyPoolIsNotFound(t *testing.T) {
	store := &stubPoolStore{byCat: map[int][]question.Question{}}
	sel := newTestSelector(store, 10)

	_, _, err := sel.Next(context.Background(), CategoryScope(3), nil)
	assert.ErrorIs(t, err, question.ErrNotFound)
}

func TestNextWrapsStoreFailure(t *testing.T) {
	store := &stubPoolStore{listErr: errors.New("db down")}
	sel := newTestSelector(store, 10)

	_, _, err := sel.Next(context.Background(), AllScope(), nil)
	assert.ErrorIs(t, err, question.ErrStore)
}

func TestNextDoesNotMutateAskedSlice(t *testing.T) {
	store := &stubPoolStore{all: poolOf(1, 2, 3)}
	sel := newTestSelector(store, 10)

	asked := []int{1}
	_, updated, err := sel.Next(context.Background(), AllScope(), asked)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, asked, "caller's slice stays untouched")
	assert.Len(t, updated, 2)
}
