package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sahilchouksey/internship-simulator/database"
	"github.com/sahilchouksey/internship-simulator/utils/response"
)

// HealthCheck reports service and database health.
func HealthCheck(store database.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.HealthCheck(); err != nil {
			return response.ServiceUnavailable(c, "Database unavailable")
		}
		return response.Success(c, fiber.Map{
			"status": "ok",
		})
	}
}
