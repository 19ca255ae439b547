package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := New(Options{})
	if err != ErrMissingAPIKey {
		t.Errorf("Expected ErrMissingAPIKey, got %v", err)
	}
}

func TestNewRejectsInvalidLanguage(t *testing.T) {
	_, err := New(Options{APIKey: "test-key", Language: "not a language tag"})
	if err == nil {
		t.Error("Expected error for invalid language tag")
	}
}

func TestNewReadsKeyFromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")

	client, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if client.apiKey != "env-key" {
		t.Errorf("Expected API key from environment, got '%s'", client.apiKey)
	}
	if client.model != DefaultModel {
		t.Errorf("Expected default model '%s', got '%s'", DefaultModel, client.model)
	}
}

func TestTranslateAndSummarise(t *testing.T) {
	var captured chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Unexpected Authorization header: %s", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "  摘要文本  "}},
			},
		})
	}))
	defer server.Close()

	client, err := New(Options{
		APIKey:      "test-key",
		Model:       "gpt-4o-mini",
		Temperature: 0.5,
		Endpoint:    server.URL,
	})
	if err != nil {
		t.Fatal(err)
	}

	result, err := client.TranslateAndSummarise(context.Background(),
		"Model launch", "A big launch", "https://example.com/launch")
	if err != nil {
		t.Fatal(err)
	}

	if result != "摘要文本" {
		t.Errorf("Expected trimmed summary, got '%s'", result)
	}
	if captured.Model != "gpt-4o-mini" {
		t.Errorf("Expected model 'gpt-4o-mini', got '%s'", captured.Model)
	}
	if captured.Temperature != 0.5 {
		t.Errorf("Expected temperature 0.5, got %f", captured.Temperature)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(captured.Messages))
	}

	user := captured.Messages[1].Content
	if !strings.Contains(user, "Model launch") || !strings.Contains(user, "A big launch") ||
		!strings.Contains(user, "https://example.com/launch") {
		t.Errorf("User message missing entry fields: %s", user)
	}

	system := captured.Messages[0].Content
	if !strings.Contains(system, "Simplified Chinese") {
		t.Errorf("Expected default language name in system prompt: %s", system)
	}
}

func TestTranslateAndSummariseEmptySummaryPlaceholder(t *testing.T) {
	var captured chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "ok"}},
			},
		})
	}))
	defer server.Close()

	client, err := New(Options{APIKey: "test-key", Endpoint: server.URL})
	if err != nil {
		t.Fatal(err)
	}

	_, err = client.TranslateAndSummarise(context.Background(), "Title", "", "https://example.com")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(captured.Messages[1].Content, emptySummaryPlaceholder) {
		t.Errorf("Expected placeholder for empty summary in: %s", captured.Messages[1].Content)
	}
}

func TestTranslateAndSummariseAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "Incorrect API key provided"},
		})
	}))
	defer server.Close()

	client, err := New(Options{APIKey: "bad-key", Endpoint: server.URL})
	if err != nil {
		t.Fatal(err)
	}

	_, err = client.TranslateAndSummarise(context.Background(), "Title", "Summary", "https://example.com")
	if err == nil {
		t.Fatal("Expected error for non-200 response")
	}
	if !strings.Contains(err.Error(), "Incorrect API key provided") {
		t.Errorf("Expected API error message in error, got: %v", err)
	}
}
