package upload

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sahilchouksey/internship-simulator/services/storage"
	"github.com/sahilchouksey/internship-simulator/utils/middleware"
	"github.com/sahilchouksey/internship-simulator/utils/response"
)

const presignExpiry = 15 * time.Minute

// UploadHandler issues presigned URLs for submission attachments
type UploadHandler struct {
	spaces *storage.SpacesClient
}

// NewUploadHandler creates a new upload handler. A nil spaces client
// disables uploads.
func NewUploadHandler(spaces *storage.SpacesClient) *UploadHandler {
	return &UploadHandler{spaces: spaces}
}

// PresignRequest asks for an upload URL for a named file
type PresignRequest struct {
	Filename string `json:"filename"`
}

// Presign returns a presigned PUT URL the client can upload a
// submission attachment to, plus the URL to reference in file_urls.
func (h *UploadHandler) Presign(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	if h.spaces == nil {
		return response.ServiceUnavailable(c, "File uploads are not configured")
	}

	var req PresignRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Filename) == "" {
		return response.BadRequest(c, "filename is required")
	}

	uploadURL, key, fileURL, err := h.spaces.PresignUpload(userID, req.Filename, presignExpiry)
	if err != nil {
		return response.InternalServerError(c, "Failed to create upload URL")
	}

	return response.Success(c, fiber.Map{
		"upload_url":   uploadURL,
		"key":          key,
		"file_url":     fileURL,
		"content_type": storage.ContentTypeFor(req.Filename),
		"expires_in":   int(presignExpiry.Seconds()),
	})
}
