package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/salon-reservas/controllers"
	"github.com/jcastellanos/salon-reservas/middleware"
	"github.com/jcastellanos/salon-reservas/models"
)

// SetupUserRoutes configures staff account management, admin only
func SetupUserRoutes(app *fiber.App) {
	users := app.Group("/users", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	users.Get("/", controllers.GetAllUsers)
	users.Get("/:id", controllers.GetUserByID)
	users.Post("/", controllers.CreateUser)
	users.Patch("/:id", controllers.UpdateUser)
	users.Post("/:id/image", controllers.UploadUserImage)
	users.Delete("/:id", controllers.DeleteUser)
}
