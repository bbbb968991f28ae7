package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbercloud/barbercloud-api/controllers"
)

// SetupPublicRoutes configures the customer-facing booking routes
func SetupPublicRoutes(app *fiber.App) {
	public := app.Group("/api/public")

	// registered before the :slug routes so "bookings" never matches a slug
	public.Get("/bookings/:ref", controllers.GetBookingByReference)
	public.Delete("/bookings/:ref", controllers.CancelBookingByReference)

	public.Get("/:slug/barbershop", controllers.GetPublicBarbershop)
	public.Get("/:slug/services", controllers.GetPublicServices)
	public.Get("/:slug/availability", controllers.GetAvailability)
	public.Post("/:slug/book", controllers.CreateBooking)
}
