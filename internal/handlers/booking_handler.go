package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fswbarber/booking-api/internal/guard"
	"github.com/fswbarber/booking-api/internal/httperr"
	ucBooking "github.com/fswbarber/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	resolver *guard.Resolver
	listUC   *ucBooking.ListBookings
	cancelUC *ucBooking.CancelBooking
}

func NewBookingHandler(
	resolver *guard.Resolver,
	listUC *ucBooking.ListBookings,
	cancelUC *ucBooking.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		resolver: resolver,
		listUC:   listUC,
		cancelUC: cancelUC,
	}
}

// ======================================================
// GET /api/admin/bookings?barbershopId=&date=
// ======================================================
func (h *BookingHandler) List(c *gin.Context) {
	ident, ok := resolveIdentity(c, h.resolver)
	if !ok {
		return
	}

	if !ident.IsStaff() {
		httperr.Forbidden(c, "staff_only", "Não autorizado.")
		return
	}

	var barbershopID uint
	if raw := c.Query("barbershopId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barbershop_id", "Identificador de barbearia inválido.")
			return
		}
		barbershopID = uint(id)
	}

	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida, use AAAA-MM-DD.")
			return
		}
		date = &d
	}

	bookings, err := h.listUC.Execute(c.Request.Context(), barbershopID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro interno do servidor.")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ======================================================
// DELETE /api/admin/bookings/:id?barbershopId=
// ======================================================
func (h *BookingHandler) Cancel(c *gin.Context) {
	ident, ok := resolveIdentity(c, h.resolver)
	if !ok {
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Identificador de agendamento inválido.")
		return
	}

	var callerShopID *uint
	if raw := c.Query("barbershopId"); raw != "" {
		id, parseErr := strconv.ParseUint(raw, 10, 64)
		if parseErr != nil {
			httperr.BadRequest(c, "invalid_barbershop_id", "Identificador de barbearia inválido.")
			return
		}
		shopID := uint(id)
		callerShopID = &shopID
	}

	err = h.cancelUC.Execute(c.Request.Context(), ident, uint(bookingID), callerShopID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Agendamento cancelado com sucesso"})

	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")

	case httperr.IsBusiness(err, "forbidden_role"):
		httperr.Forbidden(c, "staff_only", "Não autorizado.")

	case httperr.IsBusiness(err, "missing_barbershop_id"):
		httperr.BadRequest(c, "missing_barbershop_id", "ID da barbearia não fornecido.")

	case httperr.IsBusiness(err, "wrong_barbershop"):
		httperr.Forbidden(c, "wrong_barbershop",
			"Você não tem permissão para cancelar agendamentos desta barbearia.")

	default:
		httperr.Internal(c, "failed_to_cancel_booking", "Erro interno do servidor.")
	}
}
