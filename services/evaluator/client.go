// Package evaluator dispatches submissions to the external evaluation
// worker. Dispatch is fire and forget: failures are logged and the
// submission stays un-evaluated until the worker calls back.
package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const dispatchTimeout = 15 * time.Second

// Client posts submission ids to the evaluation endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// Config holds the evaluation endpoint settings.
type Config struct {
	Endpoint string
	APIKey   string
}

// NewClient returns a dispatch client, or nil when no endpoint is
// configured. A nil *Client is safe to call; Dispatch becomes a no-op.
func NewClient(config Config) *Client {
	if config.Endpoint == "" {
		log.Println("evaluator: no endpoint configured, submissions will not be dispatched")
		return nil
	}
	return &Client{
		endpoint: config.Endpoint,
		apiKey:   config.APIKey,
		httpClient: &http.Client{
			Timeout: dispatchTimeout,
		},
	}
}

type dispatchPayload struct {
	SubmissionID uint `json:"submission_id"`
}

// Dispatch notifies the evaluation worker about a new submission. It
// returns an error for logging only; the submission flow never fails
// on a dispatch error.
func (c *Client) Dispatch(ctx context.Context, submissionID uint) error {
	if c == nil {
		return nil
	}

	body, err := json.Marshal(dispatchPayload{SubmissionID: submissionID})
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create dispatch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-functions-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("dispatch request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("evaluator returned status %d: %s", resp.StatusCode, string(snippet))
	}

	return nil
}

// DispatchAsync runs Dispatch in a goroutine with its own timeout and
// logs any failure.
func (c *Client) DispatchAsync(submissionID uint) {
	if c == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := c.Dispatch(ctx, submissionID); err != nil {
			log.Printf("evaluator: dispatch for submission %d failed: %v", submissionID, err)
		}
	}()
}
