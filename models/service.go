package models

import "gorm.io/gorm"

type ServiceStatus string

const (
	ServiceActive   ServiceStatus = "ACTIVE"
	ServiceInactive ServiceStatus = "INACTIVE"
)

type Service struct {
	gorm.Model
	Name     string        `json:"name"`
	Price    float64       `json:"price"`
	Duration int           `json:"duration"` // minutes
	Status   ServiceStatus `json:"status"`
}

// ValidServiceStatus reports whether s is an accepted service status.
func ValidServiceStatus(s ServiceStatus) bool {
	return s == ServiceActive || s == ServiceInactive
}
