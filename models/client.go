package models

import "gorm.io/gorm"

// Client is a person the salon serves. Phone is unique among clients.
type Client struct {
	gorm.Model
	Name  string `json:"name"`
	Phone string `json:"phone" gorm:"uniqueIndex"`
}
