package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbercloud/barbercloud-api/controllers"
	"github.com/barbercloud/barbercloud-api/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)

	// Shop + owner in one step
	app.Post("/api/onboarding/signup", controllers.Signup)
}
