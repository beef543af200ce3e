package models

import "time"

const ActionCancelBooking = "CANCEL_BOOKING"

// Log é append-only: nunca atualizado nem deletado.
type Log struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action  string `gorm:"size:50;not null" json:"action"`
	Details string `gorm:"type:text" json:"details"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	CreatedAt time.Time `json:"created_at"`
}
