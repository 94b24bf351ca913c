package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jcastellanos/salon-reservas/db"
	"github.com/jcastellanos/salon-reservas/middleware"
	"github.com/jcastellanos/salon-reservas/models"
	"github.com/jcastellanos/salon-reservas/redis"
	"github.com/jcastellanos/salon-reservas/utils"
)

const reservationListKey = "reservations:all"

type reservationInput struct {
	ClientID   uint    `json:"client_id"`
	CreatorID  uint    `json:"creator_id"`
	EmployeeID uint    `json:"employee_id"`
	ServiceID  uint    `json:"service_id"`
	LocationID uint    `json:"location_id"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Total      float64 `json:"monto"`
	Deposit    float64 `json:"abonado"`
	Balance    float64 `json:"pendiente"`
}

// reservationPatch distinguishes absent fields from zero values: only
// non-nil fields mutate the reservation.
type reservationPatch struct {
	ClientID   *uint    `json:"client_id"`
	CreatorID  *uint    `json:"creator_id"`
	EmployeeID *uint    `json:"employee_id"`
	ServiceID  *uint    `json:"service_id"`
	LocationID *uint    `json:"location_id"`
	Date       *string  `json:"date"`
	StartTime  *string  `json:"start_time"`
	EndTime    *string  `json:"end_time"`
	Total      *float64 `json:"monto"`
	Deposit    *float64 `json:"abonado"`
	Balance    *float64 `json:"pendiente"`
}

// missingReference looks up every supplied reference id and reports the
// first one that does not resolve. Nil ids are skipped, which gives the
// partial-update path its semantics.
func missingReference(tx *gorm.DB, clientID, creatorID, employeeID, serviceID, locationID *uint) string {
	if clientID != nil {
		var client models.Client
		if err := tx.First(&client, *clientID).Error; err != nil {
			return "client"
		}
	}
	if creatorID != nil {
		var creator models.User
		if err := tx.First(&creator, *creatorID).Error; err != nil {
			return "creator"
		}
	}
	if employeeID != nil {
		var employee models.User
		if err := tx.First(&employee, *employeeID).Error; err != nil {
			return "employee"
		}
	}
	if serviceID != nil {
		var service models.Service
		if err := tx.First(&service, *serviceID).Error; err != nil {
			return "service"
		}
	}
	if locationID != nil {
		var location models.Location
		if err := tx.First(&location, *locationID).Error; err != nil {
			return "location"
		}
	}
	return ""
}

var referenceMessages = map[string]string{
	"client":   "Client not found",
	"creator":  "Creator not found",
	"employee": "Employee not found",
	"service":  "Service not found",
	"location": "Location not found",
}

// applyReservationPatch copies every supplied field onto the reservation,
// parsing date/time strings. It returns the name of the first field that
// fails to parse.
func applyReservationPatch(res *models.Reservation, patch *reservationPatch) (string, error) {
	if patch.Date != nil {
		date, err := utils.ParseDate(*patch.Date)
		if err != nil {
			return "date", err
		}
		res.Date = date
	}
	if patch.StartTime != nil {
		start, err := utils.ParseDateTime(*patch.StartTime)
		if err != nil {
			return "start_time", err
		}
		res.StartTime = start
	}
	if patch.EndTime != nil {
		end, err := utils.ParseDateTime(*patch.EndTime)
		if err != nil {
			return "end_time", err
		}
		res.EndTime = end
	}
	if patch.ClientID != nil {
		res.ClientID = *patch.ClientID
	}
	if patch.CreatorID != nil {
		res.CreatorID = *patch.CreatorID
	}
	if patch.EmployeeID != nil {
		res.EmployeeID = *patch.EmployeeID
	}
	if patch.ServiceID != nil {
		res.ServiceID = *patch.ServiceID
	}
	if patch.LocationID != nil {
		res.LocationID = *patch.LocationID
	}
	if patch.Total != nil {
		res.Total = *patch.Total
	}
	if patch.Deposit != nil {
		res.Deposit = *patch.Deposit
	}
	if patch.Balance != nil {
		res.Balance = *patch.Balance
	}
	return "", nil
}

// depositPayment builds the payment row that must accompany a reservation
// created with abonado > 0: recorded by the creator, for the deposit
// amount, against the new reservation. A reservation without a deposit
// gets no payment.
func depositPayment(r *models.Reservation) *models.Payment {
	if r.Deposit <= 0 {
		return nil
	}
	return &models.Payment{
		UserID:        r.CreatorID,
		ReservationID: r.ID,
		Amount:        r.Deposit,
		Status:        models.PaymentRecorded,
	}
}

func invalidateReservationCache() {
	if redis.Client == nil {
		return
	}
	if err := redis.Client.Del(redis.Ctx, reservationListKey).Err(); err != nil {
		log.Printf("Failed to invalidate reservation cache: %v", err)
	}
}

// CreateReservation validates the five references, then writes the
// reservation and, when a deposit was paid, its payment in one transaction.
// A reservation with abonado > 0 is never visible without that payment.
func CreateReservation(c *fiber.Ctx) error {
	input := new(reservationInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	// The authenticated principal is the creator unless one was supplied
	if input.CreatorID == 0 {
		principal, err := middleware.CurrentUser(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		input.CreatorID = principal.ID
	}

	required := []struct {
		name string
		id   uint
	}{
		{"client_id", input.ClientID},
		{"creator_id", input.CreatorID},
		{"employee_id", input.EmployeeID},
		{"service_id", input.ServiceID},
		{"location_id", input.LocationID},
	}
	for _, field := range required {
		if field.id == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("%s is required", field.name),
			})
		}
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date",
			Error:   err.Error(),
		})
	}
	startTime, err := utils.ParseDateTime(input.StartTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid start_time",
			Error:   err.Error(),
		})
	}
	endTime, err := utils.ParseDateTime(input.EndTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid end_time",
			Error:   err.Error(),
		})
	}

	reservation := models.Reservation{
		ClientID:   input.ClientID,
		CreatorID:  input.CreatorID,
		EmployeeID: input.EmployeeID,
		ServiceID:  input.ServiceID,
		LocationID: input.LocationID,
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
		Total:      input.Total,
		Deposit:    input.Deposit,
		Balance:    input.Balance,
	}

	var missing string
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		// References are checked inside the transaction so a concurrent
		// delete cannot slip between validation and insert
		missing = missingReference(tx,
			&input.ClientID, &input.CreatorID, &input.EmployeeID,
			&input.ServiceID, &input.LocationID)
		if missing != "" {
			return fmt.Errorf("%s not found", missing)
		}

		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		if payment := depositPayment(&reservation); payment != nil {
			if err := tx.Create(payment).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if missing != "" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": referenceMessages[missing],
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create reservation",
			Error:   err.Error(),
		})
	}

	invalidateReservationCache()

	if err := db.DB.
		Preload("Client").Preload("Creator").Preload("Employee").
		Preload("Service").Preload("Location").Preload("Payments").
		First(&reservation, reservation.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load reservation",
			Error:   err.Error(),
		})
	}
	scrubReservation(&reservation)

	notifyEmployee(&reservation)

	return c.Status(fiber.StatusCreated).JSON(reservation)
}

// GetAllReservations returns every reservation with its references and
// payments, served from redis when the cached copy is still fresh
func GetAllReservations(c *fiber.Ctx) error {
	if redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, reservationListKey).Bytes(); err == nil {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(cached)
		}
	}

	var reservations []models.Reservation
	if err := db.DB.
		Preload("Client").Preload("Creator").Preload("Employee").
		Preload("Service").Preload("Location").Preload("Payments").
		Find(&reservations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch reservations",
			Error:   err.Error(),
		})
	}
	for i := range reservations {
		scrubReservation(&reservations[i])
	}

	if redis.Client != nil {
		if body, err := json.Marshal(reservations); err == nil {
			redis.Client.Set(redis.Ctx, reservationListKey, body, 30*time.Second)
		}
	}

	return c.JSON(reservations)
}

// GetReservation returns a reservation with its references and payments
func GetReservation(c *fiber.Ctx) error {
	id := c.Params("id")
	var reservation models.Reservation
	if err := db.DB.
		Preload("Client").Preload("Creator").Preload("Employee").
		Preload("Service").Preload("Location").Preload("Payments").
		First(&reservation, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Reservation not found",
		})
	}
	scrubReservation(&reservation)
	return c.JSON(reservation)
}

// UpdateReservation applies a partial payload. Only supplied reference ids
// are re-validated; a failed validation mutates nothing. Payments are never
// adjusted here.
func UpdateReservation(c *fiber.Ctx) error {
	id := c.Params("id")

	var reservation models.Reservation
	if err := db.DB.First(&reservation, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Reservation not found",
		})
	}

	patch := new(reservationPatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if missing := missingReference(db.DB,
		patch.ClientID, patch.CreatorID, patch.EmployeeID,
		patch.ServiceID, patch.LocationID); missing != "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": referenceMessages[missing],
		})
	}

	if field, err := applyReservationPatch(&reservation, patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid " + field,
			Error:   err.Error(),
		})
	}

	if err := db.DB.Save(&reservation).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update reservation",
			Error:   err.Error(),
		})
	}

	invalidateReservationCache()

	if err := db.DB.
		Preload("Client").Preload("Creator").Preload("Employee").
		Preload("Service").Preload("Location").Preload("Payments").
		First(&reservation, reservation.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load reservation",
			Error:   err.Error(),
		})
	}
	scrubReservation(&reservation)

	return c.JSON(reservation)
}

// DeleteReservation removes a reservation. Deletion is rejected while
// payments still reference it, so payment rows never point at a missing
// reservation.
func DeleteReservation(c *fiber.Ctx) error {
	id := c.Params("id")

	var reservation models.Reservation
	if db.DB.First(&reservation, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Reservation not found",
		})
	}

	var paymentCount int64
	if err := db.DB.Model(&models.Payment{}).
		Where("reservation_id = ?", reservation.ID).
		Count(&paymentCount).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check payments",
		})
	}
	if paymentCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Reservation has payments and cannot be deleted",
		})
	}

	if err := db.DB.Delete(&reservation).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete reservation",
		})
	}

	invalidateReservationCache()

	return c.SendStatus(fiber.StatusNoContent)
}

func scrubReservation(r *models.Reservation) {
	r.Creator.Password = ""
	r.Employee.Password = ""
	for i := range r.Payments {
		r.Payments[i].User.Password = ""
	}
}

func notifyEmployee(r *models.Reservation) {
	if r.Employee.Email == "" {
		return
	}
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>A new reservation was booked for you.</p>
		<ul>
			<li><strong>Client:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Location:</strong> %s</li>
			<li><strong>Start:</strong> %s</li>
			<li><strong>End:</strong> %s</li>
		</ul>
	`, r.Employee.Name, r.Client.Name, r.Service.Name, r.Location.Name,
		r.StartTime.Format("2006-01-02 15:04"), r.EndTime.Format("2006-01-02 15:04"))

	if err := utils.SendEmail(r.Employee.Email, "New reservation scheduled", body); err != nil {
		log.Printf("Failed to send reservation notification for %d: %v", r.ID, err)
	}
}
