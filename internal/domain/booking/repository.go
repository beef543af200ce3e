package booking

import (
	"context"
	"time"

	"github.com/fswbarber/booking-api/internal/models"
)

// Filtros opcionais da listagem: barbearia e janela [início, fim] do dia.
type ListFilter struct {
	BarbershopID uint
	From         *time.Time
	To           *time.Time
}

type Repository interface {
	// -------- Booking --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Booking, error)

	// CancelBooking grava a linha de auditoria e apaga o agendamento em
	// UMA transação: ou os dois comitam, ou nenhum.
	CancelBooking(
		ctx context.Context,
		bookingID uint,
		entry *models.Log,
	) error
}
