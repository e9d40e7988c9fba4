package internship

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahilchouksey/internship-simulator/services"
	"github.com/sahilchouksey/internship-simulator/utils/response"
)

// InternshipHandler handles industry browsing and the internship
// lifecycle endpoints
type InternshipHandler struct {
	db      *gorm.DB
	service *services.InternshipService
}

// NewInternshipHandler creates a new internship handler
func NewInternshipHandler(db *gorm.DB, service *services.InternshipService) *InternshipHandler {
	return &InternshipHandler{
		db:      db,
		service: service,
	}
}

// serviceError maps lifecycle service errors onto HTTP responses.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrProfileIncomplete):
		return response.BadRequest(c, "Complete your profile before starting an internship")
	case errors.Is(err, services.ErrIndustryNotFound):
		return response.NotFound(c, "Industry not found")
	case errors.Is(err, services.ErrCompanyNotFound):
		return response.NotFound(c, "Company not found in this industry")
	case errors.Is(err, services.ErrInternshipNotFound):
		return response.NotFound(c, "Internship not found")
	case errors.Is(err, services.ErrTaskNotFound):
		return response.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrSubmissionNotFound):
		return response.NotFound(c, "Submission not found")
	case errors.Is(err, services.ErrCertificateNotFound):
		return response.NotFound(c, "Certificate not found")
	case errors.Is(err, services.ErrNotOwner):
		return response.Forbidden(c, "You do not have access to this resource")
	case errors.Is(err, services.ErrInternshipCompleted):
		return response.BadRequest(c, "Internship is already completed")
	default:
		return response.InternalServerError(c, "Something went wrong")
	}
}
