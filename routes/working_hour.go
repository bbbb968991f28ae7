package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbercloud/barbercloud-api/controllers"
	"github.com/barbercloud/barbercloud-api/middleware"
)

// SetupWorkingHourRoutes configures the weekly template routes
func SetupWorkingHourRoutes(app *fiber.App) {
	mine := app.Group("/api/working-hours/mine", middleware.Protected())
	mine.Get("/", controllers.GetMyWorkingHours)
	mine.Put("/", middleware.RequireOwner(), controllers.ReplaceMyWorkingHours)
}
