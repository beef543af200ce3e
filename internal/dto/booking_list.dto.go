package dto

import "time"

// Projeção segura do usuário: nunca carrega o hash de senha.
type SafeUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Image string `json:"image"`
	Role  string `json:"role,omitempty"`
}

type BarbershopSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

type ServiceSummary struct {
	ID         uint              `json:"id"`
	Name       string            `json:"name"`
	Price      float64           `json:"price"`
	Barbershop BarbershopSummary `json:"barbershop"`
}

type BookingListDTO struct {
	ID      uint           `json:"id"`
	Date    time.Time      `json:"date"`
	Service ServiceSummary `json:"service"`
	User    SafeUser       `json:"user"`
}
