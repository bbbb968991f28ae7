package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbercloud/barbercloud-api/controllers"
	"github.com/barbercloud/barbercloud-api/middleware"
)

// SetupBarbershopRoutes configures all barbershop related routes
func SetupBarbershopRoutes(app *fiber.App) {
	shop := app.Group("/api/barbershops")
	shop.Get("/", controllers.GetAllBarbershops)
	shop.Post("/", controllers.CreateBarbershop)
	shop.Get("/slug/:slug", controllers.GetBarbershopBySlug)

	mine := shop.Group("/mine", middleware.Protected())
	mine.Get("/", controllers.GetMyBarbershop)
	mine.Put("/", middleware.RequireOwner(), controllers.UpdateMyBarbershop)
	mine.Put("/settings", middleware.RequireOwner(), controllers.UpdateMySettings)
	mine.Put("/logo", middleware.RequireOwner(), controllers.UploadMyLogo)
}
