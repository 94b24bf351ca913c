package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/salon-reservas/controllers"
	"github.com/jcastellanos/salon-reservas/middleware"
	"github.com/jcastellanos/salon-reservas/models"
)

// SetupLocationRoutes configures all branch related routes
func SetupLocationRoutes(app *fiber.App) {
	locations := app.Group("/locations")
	locations.Get("/", controllers.GetAllLocations)
	locations.Get("/:id", controllers.GetLocation)
	locations.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateLocation)
	locations.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UpdateLocation)
	locations.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteLocation)
}
