package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/triviaworks/trivia-api/pkg/http/errors"
)

// HTTPHandlers provides the REST endpoints for questions and categories.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for question endpoints.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// createQuestionRequest is the POST /v1/questions body. A non-empty
// searchTerm turns the request into a search; otherwise it is an insert.
type createQuestionRequest struct {
	Text       string `json:"question"`
	Answer     string `json:"answer"`
	CategoryID *int   `json:"category"`
	Difficulty int    `json:"difficulty"`
	SearchTerm string `json:"searchTerm"`
}

// HandleCategories handles GET /v1/categories
func (h *HTTPHandlers) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "list categories")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"categories":      cats,
		"totalCategories": len(cats),
	})
}

// HandleQuestions handles GET /v1/questions (paginated listing) and
// POST /v1/questions (create, or search when searchTerm is present).
func (h *HTTPHandlers) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listQuestions(w, r)
	case http.MethodPost:
		h.createOrSearch(w, r)
	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

func (h *HTTPHandlers) listQuestions(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListQuestions(r.Context(), pageParam(r))
	if err != nil {
		h.respondServiceError(w, err, "list questions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"totalQuestions":  result.Total,
		"currentCategory": nil,
		"categories":      result.Categories,
	})
}

func (h *HTTPHandlers) createOrSearch(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeUnprocessable, "Invalid JSON payload")
		return
	}

	if req.SearchTerm != "" {
		result, err := h.svc.Search(r.Context(), req.SearchTerm, pageParam(r))
		if err != nil {
			h.respondServiceError(w, err, "search questions")
			return
		}
		h.respondJSON(w, http.StatusOK, map[string]interface{}{
			"success":         true,
			"questions":       result.Questions,
			"totalQuestions":  result.Total,
			"currentCategory": nil,
		})
		return
	}

	result, err := h.svc.Create(r.Context(), NewQuestion{
		Text:       req.Text,
		Answer:     req.Answer,
		CategoryID: req.CategoryID,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			httperrors.RespondUnprocessable(w, httperrors.ErrCodeCreateFailed, err.Error())
			return
		}
		h.respondServiceError(w, err, "create question")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success":         true,
		"created":         result.Created.ID,
		"questions":       result.Questions,
		"totalQuestions":  result.Total,
		"currentCategory": result.Created.CategoryID,
		"categories":      result.Categories,
	})
}

// HandleQuestionByID handles DELETE /v1/questions/{id}
func (h *HTTPHandlers) HandleQuestionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Question id must be an integer")
		return
	}

	result, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w, httperrors.ErrCodeQuestionNotFound, "Question not found")
			return
		}
		h.respondServiceError(w, err, "delete question")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"deleted":        result.Deleted,
		"questions":      result.Questions,
		"totalQuestions": result.Total,
		"categories":     result.Categories,
	})
}

// HandleCategoryQuestions handles GET /v1/categories/{id}/questions
func (h *HTTPHandlers) HandleCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Category id must be an integer")
		return
	}

	result, err := h.svc.ListByCategory(r.Context(), id, pageParam(r))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w, httperrors.ErrCodeCategoryNotFound, "Category not found")
			return
		}
		h.respondServiceError(w, err, "list questions by category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"totalQuestions":  result.Total,
		"currentCategory": result.Category.Type,
	})
}

// pageParam reads the 1-based page query parameter; absent or non-numeric
// values default to page 1.
func pageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (h *HTTPHandlers) respondServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeNotFound, "Resource not found")
	case errors.Is(err, ErrInvalidInput):
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeUnprocessable, err.Error())
	default:
		h.logger.Error().Err(err).Str("op", op).Msg("service call failed")
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeUnprocessable, "Request could not be processed")
	}
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}
