package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/salon-reservas/db"
	"github.com/jcastellanos/salon-reservas/models"
	"github.com/jcastellanos/salon-reservas/utils"
)

// paymentInput carries only the scalar payment fields. Binding the body
// into models.Payment directly would let a nested user or reservation
// object create rows through gorm's association handling.
type paymentInput struct {
	UserID        uint                 `json:"user_id"`
	ReservationID uint                 `json:"reservation_id"`
	Amount        float64              `json:"monto"`
	Status        models.PaymentStatus `json:"status"`
	Receipt       string               `json:"receipt"`
}

func paymentFromInput(input *paymentInput) models.Payment {
	return models.Payment{
		UserID:        input.UserID,
		ReservationID: input.ReservationID,
		Amount:        input.Amount,
		Status:        input.Status,
		Receipt:       input.Receipt,
	}
}

// CreatePayment records a standalone payment against a reservation
func CreatePayment(c *fiber.Ctx) error {
	input := new(paymentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.UserID == 0 || input.ReservationID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_id and reservation_id are required",
		})
	}
	if input.Status != "" && !models.ValidPaymentStatus(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid payment status",
		})
	}

	var user models.User
	if err := db.DB.First(&user, input.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	var reservation models.Reservation
	if err := db.DB.First(&reservation, input.ReservationID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Reservation not found",
		})
	}

	payment := paymentFromInput(input)
	if err := db.DB.Create(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create payment",
			Error:   err.Error(),
		})
	}

	sendReceipt(&user, &payment)

	return c.Status(fiber.StatusCreated).JSON(payment)
}

// GetAllPayments returns all payments with their user and reservation
func GetAllPayments(c *fiber.Ctx) error {
	var payments []models.Payment
	if err := db.DB.Preload("User").Preload("Reservation").Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch payments",
			Error:   err.Error(),
		})
	}
	for i := range payments {
		payments[i].User.Password = ""
	}
	return c.JSON(payments)
}

// GetPayment returns a payment by ID with its user and reservation
func GetPayment(c *fiber.Ctx) error {
	id := c.Params("id")
	var payment models.Payment
	if err := db.DB.Preload("User").Preload("Reservation").First(&payment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Payment not found",
		})
	}
	payment.User.Password = ""
	return c.JSON(payment)
}

// UpdatePayment applies the supplied fields to a payment
func UpdatePayment(c *fiber.Ctx) error {
	id := c.Params("id")

	var payment models.Payment
	if err := db.DB.First(&payment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Payment not found",
		})
	}

	type paymentPatch struct {
		UserID        *uint                `json:"user_id"`
		ReservationID *uint                `json:"reservation_id"`
		Amount        *float64             `json:"monto"`
		Status        models.PaymentStatus `json:"status"`
		Receipt       *string              `json:"receipt"`
	}

	patch := new(paymentPatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if patch.UserID != nil {
		var user models.User
		if err := db.DB.First(&user, *patch.UserID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		payment.UserID = *patch.UserID
	}
	if patch.ReservationID != nil {
		var reservation models.Reservation
		if err := db.DB.First(&reservation, *patch.ReservationID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Reservation not found",
			})
		}
		payment.ReservationID = *patch.ReservationID
	}
	if patch.Amount != nil {
		payment.Amount = *patch.Amount
	}
	if patch.Status != "" {
		if !models.ValidPaymentStatus(patch.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid payment status",
			})
		}
		payment.Status = patch.Status
	}
	if patch.Receipt != nil {
		payment.Receipt = *patch.Receipt
	}

	if err := db.DB.Save(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update payment",
			Error:   err.Error(),
		})
	}

	return c.JSON(payment)
}

// DeletePayment removes a payment
func DeletePayment(c *fiber.Ctx) error {
	id := c.Params("id")
	var payment models.Payment
	if db.DB.First(&payment, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Payment not found",
		})
	}
	if err := db.DB.Delete(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete payment",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func sendReceipt(user *models.User, payment *models.Payment) {
	if user.Email == "" {
		return
	}
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Payment #%d for %.2f was recorded against reservation #%d with status %s.</p>
	`, user.Name, payment.ID, payment.Amount, payment.ReservationID, payment.Status)

	if err := utils.SendEmail(user.Email, "Payment recorded", body); err != nil {
		log.Printf("Failed to send payment receipt for %d: %v", payment.ID, err)
	}
}
