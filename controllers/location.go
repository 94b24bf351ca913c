package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/salon-reservas/db"
	"github.com/jcastellanos/salon-reservas/models"
	"github.com/jcastellanos/salon-reservas/utils"
)

type locationInput struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	OpensAt  string `json:"opens_at"`
	ClosesAt string `json:"closes_at"`
}

// CreateLocation creates a new branch
func CreateLocation(c *fiber.Ctx) error {
	input := new(locationInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	opensAt, err := utils.ParseWallClock(input.OpensAt)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid opens_at",
			Error:   err.Error(),
		})
	}
	closesAt, err := utils.ParseWallClock(input.ClosesAt)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid closes_at",
			Error:   err.Error(),
		})
	}

	location := models.Location{
		Name:     input.Name,
		Status:   input.Status,
		OpensAt:  opensAt,
		ClosesAt: closesAt,
	}

	if err := db.DB.Create(&location).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create location",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(location)
}

// GetAllLocations returns all branches
func GetAllLocations(c *fiber.Ctx) error {
	var locations []models.Location
	if err := db.DB.Find(&locations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get locations",
		})
	}
	return c.JSON(locations)
}

// GetLocation returns a branch by ID
func GetLocation(c *fiber.Ctx) error {
	id := c.Params("id")
	var location models.Location
	if err := db.DB.First(&location, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Location not found",
		})
	}
	return c.JSON(location)
}

// UpdateLocation applies the supplied fields to a branch
func UpdateLocation(c *fiber.Ctx) error {
	id := c.Params("id")

	var location models.Location
	if err := db.DB.First(&location, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Location not found",
		})
	}

	input := new(locationInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Name != "" {
		location.Name = input.Name
	}
	if input.Status != "" {
		location.Status = input.Status
	}
	if input.OpensAt != "" {
		opensAt, err := utils.ParseWallClock(input.OpensAt)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid opens_at",
				Error:   err.Error(),
			})
		}
		location.OpensAt = opensAt
	}
	if input.ClosesAt != "" {
		closesAt, err := utils.ParseWallClock(input.ClosesAt)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid closes_at",
				Error:   err.Error(),
			})
		}
		location.ClosesAt = closesAt
	}

	if err := db.DB.Save(&location).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update location",
		})
	}

	return c.JSON(location)
}

// DeleteLocation removes a branch
func DeleteLocation(c *fiber.Ctx) error {
	id := c.Params("id")
	var location models.Location
	if db.DB.First(&location, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Location not found",
		})
	}
	if err := db.DB.Delete(&location).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete location",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
