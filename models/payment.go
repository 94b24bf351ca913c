package models

import "gorm.io/gorm"

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentRecorded PaymentStatus = "recorded"
	PaymentCanceled PaymentStatus = "canceled"
)

// Payment is money received against a Reservation, recorded by a staff
// User. Receipt optionally holds the comprobante URL.
type Payment struct {
	gorm.Model
	UserID        uint          `json:"user_id"`
	User          User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ReservationID uint          `json:"reservation_id"`
	Reservation   *Reservation  `json:"reservation,omitempty" gorm:"foreignKey:ReservationID"`
	Amount        float64       `json:"monto"`
	Status        PaymentStatus `json:"status"`
	Receipt       string        `json:"receipt,omitempty"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = PaymentPending
	}
	return nil
}

// ValidPaymentStatus reports whether s is an accepted payment status.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentRecorded, PaymentCanceled:
		return true
	}
	return false
}
