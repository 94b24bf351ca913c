package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/salon-reservas/db"
	"github.com/jcastellanos/salon-reservas/models"
	"github.com/jcastellanos/salon-reservas/utils"
)

// CreateClient creates a new client, enforcing unique phone numbers
func CreateClient(c *fiber.Ctx) error {
	client := new(models.Client)
	if err := c.BodyParser(client); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if client.Name == "" || client.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	var existing models.Client
	if db.DB.Where("phone = ?", client.Phone).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Phone number is already registered",
		})
	}

	if err := db.DB.Create(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create client",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(client)
}

// GetAllClients returns all clients
func GetAllClients(c *fiber.Ctx) error {
	var clients []models.Client
	if err := db.DB.Find(&clients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get clients",
		})
	}
	return c.JSON(clients)
}

// GetClient returns a client by ID
func GetClient(c *fiber.Ctx) error {
	id := c.Params("id")
	var client models.Client
	if err := db.DB.First(&client, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}
	return c.JSON(client)
}

// UpdateClient applies the supplied fields to a client
func UpdateClient(c *fiber.Ctx) error {
	id := c.Params("id")

	var client models.Client
	if err := db.DB.First(&client, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}

	input := new(models.Client)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Phone != "" {
		var existing models.Client
		if db.DB.Where("phone = ? AND id <> ?", input.Phone, client.ID).First(&existing).RowsAffected > 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Phone number is already registered",
			})
		}
		client.Phone = input.Phone
	}
	if input.Name != "" {
		client.Name = input.Name
	}

	if err := db.DB.Save(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update client",
		})
	}

	return c.JSON(client)
}

// DeleteClient removes a client
func DeleteClient(c *fiber.Ctx) error {
	id := c.Params("id")
	var client models.Client
	if db.DB.First(&client, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}
	if err := db.DB.Delete(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete client",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
