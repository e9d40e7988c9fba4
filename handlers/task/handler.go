package task

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sahilchouksey/internship-simulator/services"
	"github.com/sahilchouksey/internship-simulator/utils/response"
)

// TaskHandler handles task detail, submissions and the evaluation
// callback
type TaskHandler struct {
	service *services.InternshipService
	// Shared secret the evaluation worker presents when calling back
	// with results. Empty disables the callback endpoint.
	webhookKey string
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(service *services.InternshipService, webhookKey string) *TaskHandler {
	return &TaskHandler{
		service:    service,
		webhookKey: webhookKey,
	}
}

func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		return response.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrSubmissionNotFound):
		return response.NotFound(c, "Submission not found")
	case errors.Is(err, services.ErrNotOwner):
		return response.Forbidden(c, "You do not have access to this resource")
	case errors.Is(err, services.ErrTaskAlreadyEvaluated):
		return response.Conflict(c, "Submission has already been evaluated")
	default:
		return response.InternalServerError(c, "Something went wrong")
	}
}
