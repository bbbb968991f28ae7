package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/barbercloud/barbercloud-api/cron"
	"github.com/barbercloud/barbercloud-api/db"
	"github.com/barbercloud/barbercloud-api/redis"
	"github.com/barbercloud/barbercloud-api/routes"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			db.Migrate()
			return
		case "seed":
			db.Seed()
			return
		}
	}

	db.Init()
	redis.InitRedis()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("BarberCloud API OK")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupBarbershopRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupWorkingHourRoutes(app)
	routes.SetupBlockedTimeRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupPublicRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Fatal(app.Listen(":" + port))
}
