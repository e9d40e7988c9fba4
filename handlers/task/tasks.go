package task

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sahilchouksey/internship-simulator/utils/middleware"
	"github.com/sahilchouksey/internship-simulator/utils/response"
)

// Get returns one task with its submissions
func (h *TaskHandler) Get(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	taskID, err := c.ParamsInt("id")
	if err != nil || taskID <= 0 {
		return response.BadRequest(c, "Invalid task id")
	}

	task, err := h.service.GetTask(userID, uint(taskID))
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, task)
}

// SubmitRequest represents a task submission
type SubmitRequest struct {
	Content  string   `json:"content"`
	FileURLs []string `json:"file_urls"`
}

// Submit records a submission for a task and queues it for evaluation
func (h *TaskHandler) Submit(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	taskID, err := c.ParamsInt("id")
	if err != nil || taskID <= 0 {
		return response.BadRequest(c, "Invalid task id")
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Content) == "" {
		return response.BadRequest(c, "Submission content is required")
	}

	submission, err := h.service.SubmitTask(c.Context(), userID, uint(taskID), req.Content, req.FileURLs)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, fiber.Map{
		"submission_id": submission.ID,
		"submitted_at":  submission.SubmittedAt,
		"status":        "submitted",
	})
}

// GetSubmission returns a single submission with its evaluation state
func (h *TaskHandler) GetSubmission(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	submissionID, err := c.ParamsInt("id")
	if err != nil || submissionID <= 0 {
		return response.BadRequest(c, "Invalid submission id")
	}

	submission, err := h.service.GetSubmission(userID, uint(submissionID))
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, submission)
}

// EvaluateRequest is the callback body from the evaluation worker.
// Score and feedback are optional; missing values are generated
// server-side from the submission content.
type EvaluateRequest struct {
	Score    *float64 `json:"score"`
	Feedback *string  `json:"feedback"`
}

// Evaluate records evaluation results for a submission. Called by the
// external evaluation worker, authenticated with a shared key.
func (h *TaskHandler) Evaluate(c *fiber.Ctx) error {
	if h.webhookKey == "" {
		return response.NotFound(c, "Evaluation callback is not enabled")
	}

	key := c.Get("x-functions-key")
	if subtle.ConstantTimeCompare([]byte(key), []byte(h.webhookKey)) != 1 {
		return response.Unauthorized(c, "Invalid evaluation key")
	}

	submissionID, err := c.ParamsInt("id")
	if err != nil || submissionID <= 0 {
		return response.BadRequest(c, "Invalid submission id")
	}

	var req EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Score != nil && (*req.Score < 0 || *req.Score > 100) {
		return response.BadRequest(c, "Score must be between 0 and 100")
	}

	submission, err := h.service.EvaluateSubmission(c.Context(), uint(submissionID), req.Score, req.Feedback)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, fiber.Map{
		"submission_id": submission.ID,
		"score":         submission.Score,
		"evaluated_at":  submission.EvaluatedAt,
	})
}
