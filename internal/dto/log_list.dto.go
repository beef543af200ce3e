package dto

import "time"

type LogListDTO struct {
	ID        uint      `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`

	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}
