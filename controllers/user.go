package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellanos/salon-reservas/db"
	"github.com/jcastellanos/salon-reservas/models"
	"github.com/jcastellanos/salon-reservas/utils"
)

// GetAllUsers returns all staff accounts, without password hashes
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := db.DB.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get users",
		})
	}
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

// GetUserByID returns a staff account by ID
func GetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")
	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	user.Password = ""
	return c.JSON(user)
}

type userInput struct {
	Username   string            `json:"username"`
	Password   string            `json:"password"`
	Name       string            `json:"name"`
	Role       models.UserRole   `json:"role"`
	Status     models.UserStatus `json:"status"`
	Image      string            `json:"image"`
	BirthDate  string            `json:"birth_date"`
	LocationID *uint             `json:"location_id"`
}

// CreateUser creates a staff account (admin only)
func CreateUser(c *fiber.Ctx) error {
	input := new(userInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Username == "" || input.Password == "" || input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}
	if !models.ValidRole(input.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid role",
		})
	}
	if !models.ValidUserStatus(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status",
		})
	}

	var existing models.User
	if db.DB.Where("username = ?", input.Username).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "User with this username already exists",
		})
	}

	if input.LocationID != nil {
		var location models.Location
		if err := db.DB.First(&location, *input.LocationID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Location not found",
			})
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	user := models.User{
		Username:   input.Username,
		Password:   string(hashedPassword),
		Name:       input.Name,
		Role:       input.Role,
		Status:     input.Status,
		Image:      input.Image,
		LocationID: input.LocationID,
	}

	if input.BirthDate != "" {
		birthDate, err := utils.ParseDate(input.BirthDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid birth_date",
				Error:   err.Error(),
			})
		}
		user.BirthDate = &birthDate
	}

	if err := db.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create user",
			Error:   err.Error(),
		})
	}

	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser applies the supplied fields to a staff account
func UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	input := new(userInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Username != "" {
		var existing models.User
		if db.DB.Where("username = ? AND id <> ?", input.Username, user.ID).First(&existing).RowsAffected > 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "User with this username already exists",
			})
		}
		user.Username = input.Username
	}
	if input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to hash password",
			})
		}
		user.Password = string(hashedPassword)
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Role != "" {
		if !models.ValidRole(input.Role) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid role",
			})
		}
		user.Role = input.Role
	}
	if input.Status != "" {
		if !models.ValidUserStatus(input.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid status",
			})
		}
		user.Status = input.Status
	}
	if input.Image != "" {
		user.Image = input.Image
	}
	if input.BirthDate != "" {
		birthDate, err := utils.ParseDate(input.BirthDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid birth_date",
				Error:   err.Error(),
			})
		}
		user.BirthDate = &birthDate
	}
	if input.LocationID != nil {
		var location models.Location
		if err := db.DB.First(&location, *input.LocationID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Location not found",
			})
		}
		user.LocationID = input.LocationID
	}

	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update user",
			Error:   err.Error(),
		})
	}

	user.Password = ""
	return c.JSON(user)
}

// UploadUserImage stores a profile picture and saves its URL on the account
func UploadUserImage(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing image file",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot read image file",
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("user-%s", user.PublicID), "profiles")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&user).Update("image", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save image URL",
		})
	}

	return c.JSON(fiber.Map{"image": url})
}

// DeleteUser removes a staff account
func DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	var user models.User
	if db.DB.First(&user, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	if err := db.DB.Delete(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete user",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
