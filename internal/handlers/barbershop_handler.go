package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fswbarber/booking-api/internal/dto"
	"github.com/fswbarber/booking-api/internal/guard"
	"github.com/fswbarber/booking-api/internal/httperr"
)

type BarbershopHandler struct {
	db       *gorm.DB
	resolver *guard.Resolver
}

func NewBarbershopHandler(db *gorm.DB, resolver *guard.Resolver) *BarbershopHandler {
	return &BarbershopHandler{db: db, resolver: resolver}
}

// ======================================================
// GET /api/admin/barbershops (ADMIN ou BARBER)
// ======================================================
func (h *BarbershopHandler) List(c *gin.Context) {
	ident, ok := resolveIdentity(c, h.resolver)
	if !ok {
		return
	}

	if !ident.IsStaff() {
		httperr.Forbidden(c, "staff_only", "Não autorizado.")
		return
	}

	var shops []dto.BarbershopSummary
	if err := h.db.
		Table("barbershops").
		Select("id", "name", "image_url").
		Order("name ASC").
		Find(&shops).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbershops", "Erro interno do servidor.")
		return
	}

	c.JSON(http.StatusOK, shops)
}
