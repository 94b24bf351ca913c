package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleOperator UserRole = "OPERATOR"
	RoleClient   UserRole = "CLIENT"
	RoleEmployee UserRole = "EMPLOYEE"
)

type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
)

// User is a staff account. PublicID is the identifier exposed to
// clients of the API, the numeric ID stays internal.
type User struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	PublicID   string     `json:"public_id" gorm:"uniqueIndex"`
	Username   string     `json:"username" gorm:"uniqueIndex"`
	Password   string     `json:"password,omitempty"`
	Name       string     `json:"name"`
	Email      string     `json:"email,omitempty"`
	Role       UserRole   `json:"role"`
	Status     UserStatus `json:"status"`
	Image      string     `json:"image,omitempty"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	LocationID *uint      `json:"location_id,omitempty"`
	Location   *Location  `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.PublicID == "" {
		u.PublicID = uuid.NewString()
	}
	if u.Status == "" {
		u.Status = UserActive
	}
	return nil
}

// ValidRole reports whether r is one of the accepted staff roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleOperator, RoleClient, RoleEmployee:
		return true
	}
	return false
}

// ValidUserStatus reports whether s is an accepted account status.
func ValidUserStatus(s UserStatus) bool {
	return s == UserActive || s == UserSuspended
}
