package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/salon-reservas/controllers"
	"github.com/jcastellanos/salon-reservas/middleware"
)

// SetupPaymentRoutes configures all payment related routes
func SetupPaymentRoutes(app *fiber.App) {
	payments := app.Group("/payments", middleware.Protected())
	payments.Get("/", controllers.GetAllPayments)
	payments.Get("/:id", controllers.GetPayment)
	payments.Post("/", controllers.CreatePayment)
	payments.Patch("/:id", controllers.UpdatePayment)
	payments.Delete("/:id", controllers.DeletePayment)
}
