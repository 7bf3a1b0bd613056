//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestListCategories(t *testing.T) {
	status, body := getJSON(t, "/v1/categories")
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d", status)
	}
	if body["success"] != true {
		t.Fatalf("expected success response, got %v", body)
	}
	if body["totalCategories"].(float64) < 1 {
		t.Fatalf("expected seeded categories, got %v", body["totalCategories"])
	}
}

func TestListQuestionsFirstPage(t *testing.T) {
	status, body := getJSON(t, "/v1/questions")
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d", status)
	}
	questions := body["questions"].([]interface{})
	if len(questions) == 0 || len(questions) > 10 {
		t.Fatalf("expected 1..10 questions on the first page, got %d", len(questions))
	}
	if body["currentCategory"] != nil {
		t.Fatalf("expected null currentCategory on unfiltered listing")
	}
}

func TestListQuestionsPageBeyondRange(t *testing.T) {
	status, body := getJSON(t, "/v1/questions?page=100000")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for page beyond range, got %d: %v", status, body)
	}
	if body["error"] != "not_found" {
		t.Fatalf("expected not_found code, got %v", body["error"])
	}
}

func TestCreateSearchDeleteRoundTrip(t *testing.T) {
	marker := fmt.Sprintf("integration-marker-%d", time.Now().UnixNano())
	id := createQuestion(t, "Question "+marker, "Answer", 1, 2)

	status, body := postJSON(t, "/v1/questions", map[string]interface{}{"searchTerm": marker})
	if status != http.StatusOK {
		t.Fatalf("search returned %d", status)
	}
	if body["totalQuestions"].(float64) != 1 {
		t.Fatalf("expected exactly one match for %q, got %v", marker, body["totalQuestions"])
	}

	status, body = deleteJSON(t, fmt.Sprintf("/v1/questions/%d", id))
	if status != http.StatusOK {
		t.Fatalf("delete returned %d: %v", status, body)
	}
	if int(body["deleted"].(float64)) != id {
		t.Fatalf("expected deleted=%d, got %v", id, body["deleted"])
	}

	status, body = postJSON(t, "/v1/questions", map[string]interface{}{"searchTerm": marker})
	if status != http.StatusOK || body["totalQuestions"].(float64) != 0 {
		t.Fatalf("expected zero matches after delete, got %d %v", status, body)
	}
}

func TestSearchNoMatchIsSuccess(t *testing.T) {
	status, body := postJSON(t, "/v1/questions", map[string]interface{}{"searchTerm": "zzz-no-match"})
	if status != http.StatusOK {
		t.Fatalf("expected success for empty search, got %d", status)
	}
	if body["totalQuestions"].(float64) != 0 {
		t.Fatalf("expected zero matches, got %v", body["totalQuestions"])
	}
}

func TestDeleteAbsentQuestion(t *testing.T) {
	status, body := deleteJSON(t, "/v1/questions/999999999")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %v", status, body)
	}
}

func TestListByAbsentCategory(t *testing.T) {
	status, body := getJSON(t, "/v1/categories/999999/questions")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %v", status, body)
	}
	if body["error"] != "category_not_found" {
		t.Fatalf("expected category_not_found code, got %v", body["error"])
	}
}
