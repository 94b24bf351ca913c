package controllers

import (
	"encoding/json"
	"testing"

	"github.com/jcastellanos/salon-reservas/models"
)

func TestPaymentInputIgnoresNestedObjects(t *testing.T) {
	// A body smuggling nested rows and storage-managed fields must only
	// reach the payment through the scalar ids.
	body := []byte(`{
		"id": 999,
		"user_id": 3,
		"reservation_id": 7,
		"monto": 12.5,
		"status": "pending",
		"user": {"username": "intruder", "role": "ADMIN"},
		"reservation": {"monto": 100, "abonado": 100}
	}`)

	input := new(paymentInput)
	if err := json.Unmarshal(body, input); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}

	payment := paymentFromInput(input)
	if payment.ID != 0 {
		t.Errorf("ID = %d, want 0", payment.ID)
	}
	if payment.UserID != 3 || payment.ReservationID != 7 {
		t.Errorf("refs = (%d, %d), want (3, 7)", payment.UserID, payment.ReservationID)
	}
	if payment.Amount != 12.5 {
		t.Errorf("Amount = %v, want 12.5", payment.Amount)
	}
	if payment.Reservation != nil {
		t.Errorf("Reservation association populated from body: %+v", payment.Reservation)
	}
	if payment.User != (models.User{}) {
		t.Errorf("User association populated from body: %+v", payment.User)
	}
}

func TestPaymentFromInputCopiesScalars(t *testing.T) {
	input := &paymentInput{
		UserID:        1,
		ReservationID: 2,
		Amount:        30,
		Status:        models.PaymentRecorded,
		Receipt:       "https://example.com/r/1",
	}

	payment := paymentFromInput(input)
	if payment.UserID != 1 || payment.ReservationID != 2 {
		t.Errorf("refs = (%d, %d), want (1, 2)", payment.UserID, payment.ReservationID)
	}
	if payment.Amount != 30 {
		t.Errorf("Amount = %v, want 30", payment.Amount)
	}
	if payment.Status != models.PaymentRecorded {
		t.Errorf("Status = %q, want %q", payment.Status, models.PaymentRecorded)
	}
	if payment.Receipt != "https://example.com/r/1" {
		t.Errorf("Receipt = %q", payment.Receipt)
	}
}
