package models

import "time"

type Barbershop struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Address     string `gorm:"size:255" json:"address"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:255" json:"image_url"`

	// Telefones de contato separados por vírgula
	Phones string `gorm:"size:255" json:"phones"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
