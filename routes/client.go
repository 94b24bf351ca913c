package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/salon-reservas/controllers"
	"github.com/jcastellanos/salon-reservas/middleware"
)

// SetupClientRoutes configures all client related routes
func SetupClientRoutes(app *fiber.App) {
	clients := app.Group("/clients", middleware.Protected())
	clients.Get("/", controllers.GetAllClients)
	clients.Get("/:id", controllers.GetClient)
	clients.Post("/", controllers.CreateClient)
	clients.Patch("/:id", controllers.UpdateClient)
	clients.Delete("/:id", controllers.DeleteClient)
}
