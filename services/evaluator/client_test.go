package evaluator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClientWithoutEndpoint(t *testing.T) {
	if c := NewClient(Config{}); c != nil {
		t.Error("expected nil client when no endpoint is configured")
	}
}

func TestNilClientDispatchIsNoop(t *testing.T) {
	var c *Client
	if err := c.Dispatch(context.Background(), 1); err != nil {
		t.Errorf("nil client should no-op, got %v", err)
	}
	c.DispatchAsync(1)
}

func TestDispatch(t *testing.T) {
	var gotKey string
	var gotPayload dispatchPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-functions-key")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	c := NewClient(Config{Endpoint: server.URL, APIKey: "secret"})
	if err := c.Dispatch(context.Background(), 99); err != nil {
		t.Fatal(err)
	}

	if gotKey != "secret" {
		t.Errorf("got key %q", gotKey)
	}
	if gotPayload.SubmissionID != 99 {
		t.Errorf("got submission id %d", gotPayload.SubmissionID)
	}
}

func TestDispatchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(Config{Endpoint: server.URL})
	if err := c.Dispatch(context.Background(), 1); err == nil {
		t.Error("expected an error for a 500 response")
	}
}
