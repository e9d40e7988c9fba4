package internship

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sahilchouksey/internship-simulator/model"
	"github.com/sahilchouksey/internship-simulator/utils/middleware"
	"github.com/sahilchouksey/internship-simulator/utils/response"
)

// ListIndustries returns all available industries
func (h *InternshipHandler) ListIndustries(c *fiber.Ctx) error {
	var industries []model.Industry
	if err := h.db.Order("name ASC").Find(&industries).Error; err != nil {
		return response.InternalServerError(c, "Failed to load industries")
	}
	return response.Success(c, industries)
}

// ListCompanies returns companies, optionally filtered by industry
func (h *InternshipHandler) ListCompanies(c *fiber.Ctx) error {
	query := h.db.Order("name ASC")
	if industryID := c.QueryInt("industry_id"); industryID > 0 {
		query = query.Where("industry_id = ?", industryID)
	}

	var companies []model.Company
	if err := query.Find(&companies).Error; err != nil {
		return response.InternalServerError(c, "Failed to load companies")
	}
	return response.Success(c, companies)
}

// StartInternshipRequest represents a request to start an internship
type StartInternshipRequest struct {
	IndustryID uint  `json:"industry_id" validate:"required"`
	CompanyID  *uint `json:"company_id"`
}

// Start creates a new internship track with its first week of tasks
func (h *InternshipHandler) Start(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var req StartInternshipRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.IndustryID == 0 {
		return response.BadRequest(c, "industry_id is required")
	}

	track, err := h.service.StartInternship(c.Context(), user, req.IndustryID, req.CompanyID)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, fiber.Map{
		"internship_id":  track.ID,
		"title":          track.Title,
		"description":    track.Description,
		"duration_weeks": track.DurationWeeks,
		"status":         track.Status,
		"started_at":     track.StartedAt,
		"tasks":          track.Tasks,
	})
}

// List returns all of the authenticated user's internships
func (h *InternshipHandler) List(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	tracks, err := h.service.ListInternships(userID, c.Query("status"))
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, tracks)
}

// Get returns one internship with its tasks and certificate
func (h *InternshipHandler) Get(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	internshipID, err := c.ParamsInt("id")
	if err != nil || internshipID <= 0 {
		return response.BadRequest(c, "Invalid internship id")
	}

	track, err := h.service.GetInternship(userID, uint(internshipID))
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, fiber.Map{
		"internship":  track,
		"industry":    track.Industry,
		"company":     track.Company,
		"certificate": track.Certificate,
	})
}

// Complete closes an internship and returns its certificate. Calling
// it again returns the previously issued certificate.
func (h *InternshipHandler) Complete(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	internshipID, err := c.ParamsInt("id")
	if err != nil || internshipID <= 0 {
		return response.BadRequest(c, "Invalid internship id")
	}

	certificate, issued, err := h.service.CompleteInternship(c.Context(), user, uint(internshipID))
	if err != nil {
		return serviceError(c, err)
	}

	payload := fiber.Map{
		"certificate_id":  certificate.ID,
		"title":           certificate.Title,
		"description":     certificate.Description,
		"score":           certificate.Score,
		"skills_acquired": certificate.SkillsAcquired,
		"issued_at":       certificate.IssuedAt,
	}
	if issued {
		return response.Created(c, payload)
	}
	return response.Success(c, payload)
}
