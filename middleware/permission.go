package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbercloud/barbercloud-api/models"
)

// RequireOwner restricts a route to the barbershop owner. Must run after
// Protected so the role local is populated.
func RequireOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role != models.RoleOwner {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Only the owner can perform this action",
			})
		}
		return c.Next()
	}
}
