package supervisor

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sahilchouksey/internship-simulator/services"
	"github.com/sahilchouksey/internship-simulator/utils/middleware"
	"github.com/sahilchouksey/internship-simulator/utils/response"
)

// SupervisorHandler exposes the mentor chat, resource suggestions and
// certificate lookup
type SupervisorHandler struct {
	service    *services.SupervisorService
	internship *services.InternshipService
}

// NewSupervisorHandler creates a new supervisor handler
func NewSupervisorHandler(service *services.SupervisorService, internship *services.InternshipService) *SupervisorHandler {
	return &SupervisorHandler{
		service:    service,
		internship: internship,
	}
}

func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInternshipNotFound):
		return response.NotFound(c, "Internship not found")
	case errors.Is(err, services.ErrTaskNotFound):
		return response.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrCertificateNotFound):
		return response.NotFound(c, "Certificate not found")
	case errors.Is(err, services.ErrNotOwner):
		return response.Forbidden(c, "You do not have access to this resource")
	default:
		return response.InternalServerError(c, "Something went wrong")
	}
}

// AskRequest represents a question for the internship supervisor
type AskRequest struct {
	Question     string `json:"question"`
	InternshipID *uint  `json:"internship_id"`
	TaskID       *uint  `json:"task_id"`
}

// Ask answers an intern question, optionally informed by the intern's
// current internship and task
func (h *SupervisorHandler) Ask(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var req AskRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Question) == "" {
		return response.BadRequest(c, "Question is required")
	}

	answer, err := h.service.Ask(c.Context(), user, req.Question, req.InternshipID, req.TaskID)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, fiber.Map{
		"response": answer,
	})
}

// ResourcesRequest asks for learning resources for a task
type ResourcesRequest struct {
	TaskID uint `json:"task_id"`
}

// Resources suggests learning resources for one of the intern's tasks
func (h *SupervisorHandler) Resources(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var req ResourcesRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.TaskID == 0 {
		return response.BadRequest(c, "task_id is required")
	}

	resources, err := h.service.SuggestResources(c.Context(), user, req.TaskID)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, fiber.Map{
		"resources": resources,
	})
}

// GetCertificate returns one of the intern's certificates
func (h *SupervisorHandler) GetCertificate(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	certificateID, err := c.ParamsInt("id")
	if err != nil || certificateID <= 0 {
		return response.BadRequest(c, "Invalid certificate id")
	}

	certificate, err := h.internship.GetCertificate(userID, uint(certificateID))
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, certificate)
}
