package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbercloud/barbercloud-api/controllers"
	"github.com/barbercloud/barbercloud-api/middleware"
)

// SetupBlockedTimeRoutes configures the blocked-time override routes
func SetupBlockedTimeRoutes(app *fiber.App) {
	mine := app.Group("/api/blocked-times/mine", middleware.Protected(), middleware.RequireOwner())
	mine.Get("/", controllers.GetMyBlockedTimes)
	mine.Post("/", controllers.CreateMyBlockedTime)
	mine.Delete("/:id", controllers.DeleteMyBlockedTime)
}
