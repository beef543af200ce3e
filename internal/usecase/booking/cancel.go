package booking

import (
	"context"
	"fmt"

	domain "github.com/fswbarber/booking-api/internal/domain/booking"
	"github.com/fswbarber/booking-api/internal/guard"
	"github.com/fswbarber/booking-api/internal/httperr"
	"github.com/fswbarber/booking-api/internal/models"
	"github.com/fswbarber/booking-api/internal/timezone"
)

type CancelBooking struct {
	repo domain.Repository
}

func NewCancelBooking(repo domain.Repository) *CancelBooking {
	return &CancelBooking{repo: repo}
}

// Execute cancela o agendamento em nome de ident. BARBER só cancela dentro
// da própria barbearia (callerShopID obrigatório); ADMIN cancela qualquer um.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	ident *guard.Identity,
	bookingID uint,
	callerShopID *uint,
) error {

	bk, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return httperr.ErrBusiness("booking_not_found")
	}

	if !ident.IsStaff() {
		return httperr.ErrBusiness("forbidden_role")
	}

	if ident.Role == models.RoleBarber {
		if callerShopID == nil {
			return httperr.ErrBusiness("missing_barbershop_id")
		}
		if *callerShopID != bk.Service.BarbershopID {
			return httperr.ErrBusiness("wrong_barbershop")
		}
	}

	entry := &models.Log{
		Action: models.ActionCancelBooking,
		Details: fmt.Sprintf(
			"Agendamento cancelado por %s (%s): %s na barbearia %s para o cliente %s - Data: %s",
			ident.Name,
			ident.Role,
			bk.Service.Name,
			bk.Service.Barbershop.Name,
			bk.User.Name,
			timezone.FormatPtBR(bk.Date),
		),
		UserID: ident.UserID,
	}

	return uc.repo.CancelBooking(ctx, bk.ID, entry)
}
