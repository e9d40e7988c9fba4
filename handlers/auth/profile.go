package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahilchouksey/internship-simulator/model"
	"github.com/sahilchouksey/internship-simulator/utils/middleware"
	"github.com/sahilchouksey/internship-simulator/utils/response"
	"github.com/sahilchouksey/internship-simulator/utils/validation"
)

// UpdateProfileRequest represents a profile update request. Full name,
// major and career interests are the fields that gate internship
// eligibility.
type UpdateProfileRequest struct {
	FullName        string `json:"full_name" validate:"required,max=100"`
	Major           string `json:"major" validate:"required,max=100"`
	University      string `json:"university" validate:"max=100"`
	CareerInterests string `json:"career_interests" validate:"required,max=200"`
	GraduationYear  int    `json:"graduation_year" validate:"omitempty,min=1950,max=2100"`
	Bio             string `json:"bio" validate:"max=2000"`
}

// GetProfile returns the authenticated user's profile
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	profile := user.Profile
	if profile == nil {
		profile = &model.UserProfile{UserID: user.ID}
	}

	return response.Success(c, fiber.Map{
		"user": UserResponse{
			ID:               user.ID,
			Username:         user.Username,
			Email:            user.Email,
			ProfileCompleted: profile.ProfileCompleted,
			CreatedAt:        user.CreatedAt,
		},
		"profile": profile,
	})
}

// UpdateProfile creates or updates the authenticated user's profile.
// Once full name, major and career interests are all present the
// profile is marked completed.
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.FullName = validation.SanitizeString(req.FullName)
	req.Major = validation.SanitizeString(req.Major)
	req.University = validation.SanitizeString(req.University)
	req.CareerInterests = validation.SanitizeString(req.CareerInterests)

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", formatFirstError(err))
	}

	var profile model.UserProfile
	err := h.db.Where("user_id = ?", user.ID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.InternalServerError(c, "Failed to load profile")
	}

	profile.UserID = user.ID
	profile.FullName = req.FullName
	profile.Major = req.Major
	profile.University = req.University
	profile.CareerInterests = req.CareerInterests
	profile.GraduationYear = req.GraduationYear
	profile.Bio = req.Bio
	profile.ProfileCompleted = req.FullName != "" && req.Major != "" && req.CareerInterests != ""
	profile.UpdatedAt = time.Now()

	if err := h.db.Save(&profile).Error; err != nil {
		return response.InternalServerError(c, "Failed to save profile")
	}

	return response.SuccessWithMessage(c, "Profile updated", profile)
}
