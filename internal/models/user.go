package models

import "time"

const (
	RoleUser   = "USER"
	RoleAdmin  = "ADMIN"
	RoleBarber = "BARBER"
)

// IsValidRole reporta se o cargo pertence ao conjunto fechado aceito em escrita.
func IsValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleBarber:
		return true
	}
	return false
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Image        string `gorm:"size:255" json:"image"`
	Role         string `gorm:"size:20;default:'USER'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
