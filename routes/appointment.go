package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbercloud/barbercloud-api/controllers"
	"github.com/barbercloud/barbercloud-api/middleware"
)

// SetupAppointmentRoutes configures the owner's appointment panel routes
func SetupAppointmentRoutes(app *fiber.App) {
	mine := app.Group("/api/appointments/mine", middleware.Protected())
	mine.Get("/", controllers.GetMyAppointments)
	mine.Patch("/:id/status", middleware.RequireOwner(), controllers.UpdateMyAppointmentStatus)
}
