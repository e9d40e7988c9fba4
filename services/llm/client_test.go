package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func completionServer(t *testing.T, content string, capture *Request) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if capture != nil {
			if err := json.NewDecoder(r.Body).Decode(capture); err != nil {
				t.Errorf("bad request body: %v", err)
			}
		}
		resp := Response{
			Choices: []Choice{
				{Message: Message{Role: "assistant", Content: content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestSimpleCompletion(t *testing.T) {
	var captured Request
	server := completionServer(t, "hello intern", &captured)
	defer server.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	got, err := c.SimpleCompletion(context.Background(), "be a mentor", "hi")
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello intern" {
		t.Errorf("got %q", got)
	}

	if captured.Model != DefaultModel {
		t.Errorf("model %q", captured.Model)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Errorf("messages %+v", captured.Messages)
	}
}

func TestJSONCompletionReinforcesPrompt(t *testing.T) {
	var captured Request
	server := completionServer(t, `{"ok": true}`, &captured)
	defer server.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	if _, err := c.JSONCompletion(context.Background(), "base prompt", "go"); err != nil {
		t.Fatal(err)
	}

	system := captured.Messages[0].Content
	if !strings.HasPrefix(system, "base prompt") {
		t.Errorf("system prompt lost: %q", system)
	}
	if !strings.Contains(system, "valid JSON only") {
		t.Errorf("system prompt missing JSON instruction: %q", system)
	}
}

func TestOptionsOverrideDefaults(t *testing.T) {
	var captured Request
	server := completionServer(t, "x", &captured)
	defer server.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, Model: "custom-model"})

	_, err := c.SimpleCompletion(context.Background(), "s", "u",
		WithTemperature(0.2), WithMaxTokens(64), WithModel("override"))
	if err != nil {
		t.Fatal(err)
	}

	if captured.Model != "override" {
		t.Errorf("model %q", captured.Model)
	}
	if captured.Temperature != 0.2 || captured.MaxTokens != 64 {
		t.Errorf("options not applied: %+v", captured)
	}
}

func TestCompletionErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	if _, err := c.SimpleCompletion(context.Background(), "s", "u"); err == nil {
		t.Error("expected error for non-2xx response")
	}
}

func TestCompletionNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{})
	}))
	defer server.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	if _, err := c.SimpleCompletion(context.Background(), "s", "u"); err == nil {
		t.Error("expected error when no choices are returned")
	}
}
