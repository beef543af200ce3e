package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fswbarber/booking-api/internal/audit"
	"github.com/fswbarber/booking-api/internal/dto"
	"github.com/fswbarber/booking-api/internal/guard"
	"github.com/fswbarber/booking-api/internal/httperr"
	"github.com/fswbarber/booking-api/internal/httpresp"
	"github.com/fswbarber/booking-api/internal/models"
	"github.com/fswbarber/booking-api/internal/validators"
)

type UserHandler struct {
	db       *gorm.DB
	resolver *guard.Resolver
	audit    *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, resolver *guard.Resolver, dispatcher *audit.Dispatcher) *UserHandler {
	return &UserHandler{
		db:       db,
		resolver: resolver,
		audit:    dispatcher,
	}
}

// Patch parcial: só os campos presentes são aplicados.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Image *string `json:"image"`
	Role  *string `json:"role"`
}

// ======================================================
// GET /api/user/role — cargo do próprio chamador
// ======================================================
func (h *UserHandler) GetRole(c *gin.Context) {
	ident, ok := resolveIdentity(c, h.resolver)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": ident.Role})
}

// ======================================================
// GET /api/users — listagem (ADMIN)
// ======================================================
func (h *UserHandler) List(c *gin.Context) {
	ident, ok := resolveIdentity(c, h.resolver)
	if !ok {
		return
	}

	if !ident.HasRole(models.RoleAdmin) {
		httperr.Forbidden(c, "admin_only", "Acesso restrito a administradores.")
		return
	}

	var users []models.User
	if err := h.db.Order("created_at DESC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Erro ao listar usuários.")
		return
	}

	out := make([]dto.SafeUser, 0, len(users))
	for _, u := range users {
		out = append(out, dto.SafeUser{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Phone: u.Phone,
			Image: u.Image,
			Role:  u.Role,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// PATCH /api/users/:id — atualização de não-admin (ADMIN)
// ======================================================
func (h *UserHandler) Update(c *gin.Context) {
	ident, ok := resolveIdentity(c, h.resolver)
	if !ok {
		return
	}

	if !ident.HasRole(models.RoleAdmin) {
		httperr.Forbidden(c, "admin_only", "Não autorizado.")
		return
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_user_id", "Identificador de usuário inválido.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	var target models.User
	if err := h.db.First(&target, uint(targetID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Erro interno do servidor.")
		return
	}

	// Administradores são imutáveis por este caminho
	if target.Role == models.RoleAdmin {
		httperr.Forbidden(c, "cannot_update_admin", "Não é possível alterar um administrador.")
		return
	}

	// Este caminho nunca promove ninguém a ADMIN
	if req.Role != nil && *req.Role != models.RoleBarber && *req.Role != models.RoleUser {
		httperr.BadRequest(c, "role_not_allowed", "Alteração de cargo não permitida.")
		return
	}

	if req.Name != nil {
		target.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := validators.Normalize(*req.Email)
		if !validators.IsEmailValid(email) {
			httperr.BadRequest(c, "invalid_email", "Email inválido.")
			return
		}
		target.Email = email
	}
	if req.Phone != nil {
		target.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Image != nil {
		target.Image = strings.TrimSpace(*req.Image)
	}
	if req.Role != nil {
		target.Role = *req.Role
	}

	if err := h.db.Save(&target).Error; err != nil {
		if isUniqueViolation(err) {
			httperr.Conflict(c, "email_already_registered", "Email já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_user", "Erro interno do servidor.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:  ident.UserID,
		Action:  audit.ActionUserUpdated,
		Details: "Usuário " + target.Name + " atualizado por " + ident.Name,
	})

	c.JSON(http.StatusOK, dto.SafeUser{
		ID:    target.ID,
		Name:  target.Name,
		Email: target.Email,
		Phone: target.Phone,
		Image: target.Image,
		Role:  target.Role,
	})
}
