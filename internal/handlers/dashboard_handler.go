package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/fswbarber/booking-api/internal/domain/booking"
	"github.com/fswbarber/booking-api/internal/guard"
	"github.com/fswbarber/booking-api/internal/httperr"
	"github.com/fswbarber/booking-api/internal/models"
	"github.com/fswbarber/booking-api/internal/timezone"
)

// O painel do admin puxa esses agregados num poll fixo de 30s; contrato de
// pull apenas, sem push.

type DashboardHandler struct {
	db       *gorm.DB
	resolver *guard.Resolver
}

func NewDashboardHandler(db *gorm.DB, resolver *guard.Resolver) *DashboardHandler {
	return &DashboardHandler{db: db, resolver: resolver}
}

// ======================================================
// GET /api/admin/dashboard?barbershopId=
// ======================================================
func (h *DashboardHandler) Get(c *gin.Context) {
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

	scoped := func() *gorm.DB {
		q := h.db.Model(&models.Booking{})
		if barbershopID != 0 {
			q = q.Joins("JOIN services ON services.id = bookings.service_id").
				Where("services.barbershop_id = ?", barbershopID)
		}
		return q
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Erro interno do servidor.")
		return
	}

	start, end := domain.DayWindow(timezone.Now())

	var today int64
	if err := scoped().
		Where("bookings.date >= ? AND bookings.date <= ?", start, end).
		Count(&today).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Erro interno do servidor.")
		return
	}

	resp := gin.H{
		"bookings_total": total,
		"bookings_today": today,
	}

	// contagem de usuários só interessa (e só aparece) para ADMIN
	if ident.HasRole(models.RoleAdmin) {
		var users int64
		if err := h.db.Model(&models.User{}).Count(&users).Error; err != nil {
			httperr.Internal(c, "dashboard_failed", "Erro interno do servidor.")
			return
		}
		resp["users_total"] = users
	}

	c.JSON(http.StatusOK, resp)
}
