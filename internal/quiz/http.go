package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/triviaworks/trivia-api/internal/question"
	httperrors "github.com/triviaworks/trivia-api/pkg/http/errors"
)

// categoryGetter gates category-scoped quizzes on category existence.
type categoryGetter interface {
	GetByID(ctx context.Context, id int) (question.Category, error)
}

// HTTPHandler serves the quiz endpoint.
type HTTPHandler struct {
	selector   *Selector
	categories categoryGetter
	logger     zerolog.Logger
}

// NewHTTPHandler creates the HTTP handler for quiz play.
func NewHTTPHandler(selector *Selector, categories categoryGetter, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		selector:   selector,
		categories: categories,
		logger:     logger.With().Str("component", "quiz_http").Logger(),
	}
}

// playRequest is the POST /v1/quizzes body. A quizCategory with type "ALL"
// or a null id selects the unfiltered pool; any other id selects that
// category's pool.
type playRequest struct {
	PreviousQuestions []int `json:"previousQuestions"`
	QuizCategory      *struct {
		ID   *int   `json:"id"`
		Type string `json:"type"`
	} `json:"quizCategory"`
}

// HandlePlay handles POST /v1/quizzes: one random, not-yet-asked question
// from the requested scope, or null question and history on exhaustion.
func (h *HTTPHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var req playRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeUnprocessable, "Invalid JSON payload")
		return
	}
	if req.QuizCategory == nil {
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeUnprocessable, "quizCategory is required")
		return
	}

	scope := AllScope()
	if req.QuizCategory.Type != ScopeAll && req.QuizCategory.ID != nil {
		id := *req.QuizCategory.ID
		if _, err := h.categories.GetByID(r.Context(), id); err != nil {
			if errors.Is(err, question.ErrNotFound) {
				httperrors.RespondNotFound(w, httperrors.ErrCodeCategoryNotFound, "Category not found")
				return
			}
			h.logger.Error().Err(err).Int("category_id", id).Msg("category lookup failed")
			httperrors.RespondUnprocessable(w, httperrors.ErrCodeUnprocessable, "Request could not be processed")
			return
		}
		scope = CategoryScope(id)
	}

	picked, updated, err := h.selector.Next(r.Context(), scope, req.PreviousQuestions)
	if err != nil {
		if errors.Is(err, question.ErrNotFound) {
			httperrors.RespondNotFound(w, httperrors.ErrCodeNotFound, "No questions in the requested scope")
			return
		}
		h.logger.Error().Err(err).Msg("quiz selection failed")
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeUnprocessable, "Request could not be processed")
		return
	}

	// Exhaustion leaves both fields null; the client starts a fresh session.
	payload := map[string]interface{}{
		"success":           true,
		"question":          nil,
		"previousQuestions": nil,
	}
	if picked != nil {
		payload["question"] = picked
		payload["previousQuestions"] = updated
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}
