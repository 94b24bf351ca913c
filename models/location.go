package models

import (
	"time"

	"gorm.io/gorm"
)

// Location is a physical branch ("sede") of the business.
type Location struct {
	gorm.Model
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	OpensAt  time.Time `json:"opens_at"`
	ClosesAt time.Time `json:"closes_at"`
}
