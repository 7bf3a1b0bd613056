package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{ID: i + 1, Text: "q", Answer: "a", Difficulty: 1}
	}
	return qs
}

func TestPaginatorPartitionsSequence(t *testing.T) {
	p := NewPaginator(10)
	seq := makeQuestions(25)

	var collected []Question
	for page := 1; page <= 3; page++ {
		collected = append(collected, p.Page(seq, page)...)
	}

	assert.Equal(t, seq, collected, "pages 1..3 should partition all 25 questions")
	assert.Len(t, p.Page(seq, 1), 10)
	assert.Len(t, p.Page(seq, 2), 10)
	assert.Len(t, p.Page(seq, 3), 5, "last page is shorter")
}

func TestPaginatorOutOfRangeIsEmpty(t *testing.T) {
	p := NewPaginator(10)
	seq := makeQuestions(25)

	assert.Empty(t, p.Page(seq, 4))
	assert.Empty(t, p.Page(seq, 100))
	assert.NotNil(t, p.Page(seq, 100), "overflow page is empty, not nil")
	assert.Empty(t, p.Page([]Question{}, 1))
}

func TestPaginatorClampsLowPageNumbers(t *testing.T) {
	p := NewPaginator(10)
	seq := makeQuestions(12)

	assert.Equal(t, p.Page(seq, 1), p.Page(seq, 0))
	assert.Equal(t, p.Page(seq, 1), p.Page(seq, -3))
}

func TestPaginatorIsDeterministic(t *testing.T) {
	p := NewPaginator(3)
	seq := makeQuestions(7)

	first := p.Page(seq, 2)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, p.Page(seq, 2))
	}
}

func TestNewPaginatorDefaultsPageSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NewPaginator(0).PageSize())
	assert.Equal(t, DefaultPageSize, NewPaginator(-1).PageSize())
	assert.Equal(t, 5, NewPaginator(5).PageSize())
}
