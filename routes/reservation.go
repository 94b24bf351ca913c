package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/salon-reservas/controllers"
	"github.com/jcastellanos/salon-reservas/middleware"
)

// SetupReservationRoutes configures all reservation related routes
func SetupReservationRoutes(app *fiber.App) {
	reservations := app.Group("/reservations", middleware.Protected())
	reservations.Get("/", controllers.GetAllReservations)
	reservations.Get("/:id", controllers.GetReservation)
	reservations.Post("/", controllers.CreateReservation)
	reservations.Patch("/:id", controllers.UpdateReservation)
	reservations.Delete("/:id", controllers.DeleteReservation)
}
