package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fswbarber/booking-api/internal/dto"
	"github.com/fswbarber/booking-api/internal/guard"
	"github.com/fswbarber/booking-api/internal/httperr"
	"github.com/fswbarber/booking-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type LogsHandler struct {
	db       *gorm.DB
	resolver *guard.Resolver
}

func NewLogsHandler(db *gorm.DB, resolver *guard.Resolver) *LogsHandler {
	return &LogsHandler{db: db, resolver: resolver}
}

// List devolve a trilha de cancelamentos, mais recente primeiro, com o
// nome/email de quem cancelou.
func (h *LogsHandler) List(c *gin.Context) {
	ident, ok := resolveIdentity(c, h.resolver)
	if !ok {
		return
	}

	if !ident.HasRole(models.RoleAdmin) {
		httperr.Forbidden(c, "admin_only", "Acesso restrito a administradores.")
		return
	}

	var logs []models.Log
	if err := h.db.
		Preload("User").
		Where("action = ?", models.ActionCancelBooking).
		Order("created_at DESC").
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_logs", "Erro ao carregar logs do sistema.")
		return
	}

	out := make([]dto.LogListDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.LogListDTO{
			ID:        l.ID,
			Action:    l.Action,
			Details:   l.Details,
			CreatedAt: l.CreatedAt,
			UserName:  l.User.Name,
			UserEmail: l.User.Email,
		})
	}

	c.JSON(http.StatusOK, out)
}
