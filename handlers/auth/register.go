package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahilchouksey/internship-simulator/model"
	"github.com/sahilchouksey/internship-simulator/utils/auth"
	"github.com/sahilchouksey/internship-simulator/utils/response"
	"github.com/sahilchouksey/internship-simulator/utils/validation"
)

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles new user registration
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Username = validation.SanitizeString(req.Username)
	req.Email = validation.SanitizeString(req.Email)

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", formatFirstError(err))
	}

	if ok, reason := validation.ValidateUsername(req.Username); !ok {
		return response.BadRequest(c, reason)
	}

	// Reject duplicates before hashing; the unique indexes still
	// backstop concurrent registrations.
	var existing model.User
	err := h.db.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error
	if err == nil {
		return response.Conflict(c, "Username or email is already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.InternalServerError(c, "Failed to check existing users")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return response.InternalServerError(c, "Failed to process password")
	}

	user := model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := h.db.Create(&user).Error; err != nil {
		return response.Conflict(c, "Username or email is already registered")
	}

	return response.Created(c, fiber.Map{
		"user_id": user.ID,
	})
}

func formatFirstError(err error) string {
	for field, msg := range validation.FormatValidationErrors(err) {
		return field + ": " + msg
	}
	return err.Error()
}
