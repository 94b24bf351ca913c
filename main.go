package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/jcastellanos/salon-reservas/cron"
	"github.com/jcastellanos/salon-reservas/db"
	"github.com/jcastellanos/salon-reservas/redis"
	"github.com/jcastellanos/salon-reservas/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("salon-reservas up")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupClientRoutes(app)
	routes.SetupLocationRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupReservationRoutes(app)
	routes.SetupPaymentRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
