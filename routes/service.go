package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbercloud/barbercloud-api/controllers"
	"github.com/barbercloud/barbercloud-api/middleware"
)

func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/api/services")
	service.Get("/", controllers.GetAllServices)

	mine := service.Group("/mine", middleware.Protected(), middleware.RequireOwner())
	mine.Get("/", controllers.GetMyServices)
	mine.Post("/", controllers.CreateMyService)
	mine.Put("/:id", controllers.UpdateMyService)
	mine.Delete("/:id", controllers.DeleteMyService)
}
