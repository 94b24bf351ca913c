package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation books a Service for a Client at a Location, staffed by an
// assigned employee. Monetary fields keep the business vocabulary on the
// wire: monto is the total, abonado what was paid up front, pendiente the
// outstanding balance.
type Reservation struct {
	gorm.Model
	ClientID   uint      `json:"client_id"`
	Client     Client    `json:"client" gorm:"foreignKey:ClientID"`
	CreatorID  uint      `json:"creator_id"`
	Creator    User      `json:"creator" gorm:"foreignKey:CreatorID"`
	EmployeeID uint      `json:"employee_id"`
	Employee   User      `json:"employee" gorm:"foreignKey:EmployeeID"`
	ServiceID  uint      `json:"service_id"`
	Service    Service   `json:"service" gorm:"foreignKey:ServiceID"`
	LocationID uint      `json:"location_id"`
	Location   Location  `json:"location" gorm:"foreignKey:LocationID"`
	Date       time.Time `json:"date"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Total      float64   `json:"monto"`
	Deposit    float64   `json:"abonado"`
	Balance    float64   `json:"pendiente"`
	Payments   []Payment `json:"payments,omitempty" gorm:"foreignKey:ReservationID"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.Balance == 0 && r.Total > r.Deposit {
		r.Balance = r.Total - r.Deposit
	}
	return nil
}
