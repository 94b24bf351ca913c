package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/salon-reservas/controllers"
	"github.com/jcastellanos/salon-reservas/middleware"
	"github.com/jcastellanos/salon-reservas/models"
)

// SetupServiceRoutes configures all service related routes
func SetupServiceRoutes(app *fiber.App) {
	services := app.Group("/services")
	services.Get("/", controllers.GetAllServices)
	services.Get("/:id", controllers.GetService)
	services.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin, models.RoleOperator), controllers.CreateService)
	services.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin, models.RoleOperator), controllers.UpdateService)
	services.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteService)
}
