package models

import "time"

// A existência da linha significa agendamento confirmado;
// cancelar é deletar (com trilha em Log).
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	Date time.Time `gorm:"not null" json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
