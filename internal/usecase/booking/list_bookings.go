package booking

import (
	"context"
	"time"

	domain "github.com/fswbarber/booking-api/internal/domain/booking"
	"github.com/fswbarber/booking-api/internal/dto"
	"github.com/fswbarber/booking-api/internal/timezone"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute lista os agendamentos, opcionalmente restritos a uma barbearia
// e/ou ao dia de date. Ordenação por data decrescente, sem paginação:
// o volume por barbearia é pequeno por premissa.
func (uc *ListBookings) Execute(
	ctx context.Context,
	barbershopID uint,
	date *time.Time,
) ([]dto.BookingListDTO, error) {

	filter := domain.ListFilter{
		BarbershopID: barbershopID,
	}

	if date != nil {
		// o dia-calendário pedido, interpretado no fuso da aplicação
		loc := timezone.Location(timezone.DefaultTimezone)
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
		start, end := domain.DayWindow(day)
		filter.From = &start
		filter.To = &end
	}

	bookings, err := uc.repo.ListBookings(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, bk := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:   bk.ID,
			Date: bk.Date,
			Service: dto.ServiceSummary{
				ID:    bk.Service.ID,
				Name:  bk.Service.Name,
				Price: bk.Service.Price,
				Barbershop: dto.BarbershopSummary{
					ID:       bk.Service.Barbershop.ID,
					Name:     bk.Service.Barbershop.Name,
					ImageURL: bk.Service.Barbershop.ImageURL,
				},
			},
			User: dto.SafeUser{
				ID:    bk.User.ID,
				Name:  bk.User.Name,
				Email: bk.User.Email,
				Phone: bk.User.Phone,
				Image: bk.User.Image,
			},
		})
	}

	return out, nil
}
