//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
)

func baseURL() string {
	if val := os.Getenv("INTEGRATION_BASE_URL"); val != "" {
		return val
	}
	return "http://localhost:8080"
}

func getJSON(t *testing.T, path string) (int, map[string]interface{}) {
	t.Helper()

	resp, err := http.Get(baseURL() + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode GET %s response: %v", path, err)
	}
	return resp.StatusCode, body
}

func postJSON(t *testing.T, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload for %s: %v", path, err)
	}

	resp, err := http.Post(baseURL()+path, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode POST %s response: %v", path, err)
	}
	return resp.StatusCode, body
}

func deleteJSON(t *testing.T, path string) (int, map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, baseURL()+path, nil)
	if err != nil {
		t.Fatalf("build DELETE %s: %v", path, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode DELETE %s response: %v", path, err)
	}
	return resp.StatusCode, body
}

func createQuestion(t *testing.T, text, answer string, category, difficulty int) int {
	t.Helper()

	status, body := postJSON(t, "/v1/questions", map[string]interface{}{
		"question":   text,
		"answer":     answer,
		"category":   category,
		"difficulty": difficulty,
	})
	if status != http.StatusCreated {
		t.Fatalf("create question returned status %d: %v", status, body)
	}
	created, ok := body["created"].(float64)
	if !ok {
		t.Fatalf("create response missing created id: %v", body)
	}
	return int(created)
}
