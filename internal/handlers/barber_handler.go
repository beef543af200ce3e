package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fswbarber/booking-api/internal/audit"
	"github.com/fswbarber/booking-api/internal/dto"
	"github.com/fswbarber/booking-api/internal/guard"
	"github.com/fswbarber/booking-api/internal/httperr"
	"github.com/fswbarber/booking-api/internal/models"
)

type BarberHandler struct {
	db       *gorm.DB
	resolver *guard.Resolver
	audit    *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, resolver *guard.Resolver, dispatcher *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{
		db:       db,
		resolver: resolver,
		audit:    dispatcher,
	}
}

type CreateBarberRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Image    string `json:"image"`
}

// ======================================================
// LIST BARBERS (PÚBLICO)
// ======================================================
func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.User
	if err := h.db.
		Where("role = ?", models.RoleBarber).
		Order("name ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erro ao buscar barbeiros.")
		return
	}

	out := make([]dto.SafeUser, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, dto.SafeUser{
			ID:    b.ID,
			Name:  b.Name,
			Email: b.Email,
			Phone: b.Phone,
			Image: b.Image,
		})
	}

	c.JSON(http.StatusOK, gin.H{"barbers": out})
}

// ======================================================
// CREATE BARBER (ADMIN)
// ======================================================
func (h *BarberHandler) Create(c *gin.Context) {
	ident, ok := resolveIdentity(c, h.resolver)
	if !ok {
		return
	}

	if !ident.HasRole(models.RoleAdmin) {
		httperr.Forbidden(c, "admin_only", "Acesso restrito a administradores.")
		return
	}

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	in := newAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Image:    strings.TrimSpace(req.Image),
	}

	switch validateNewAccount(&in) {
	case "name_required":
		httperr.BadRequest(c, "name_required", "Dados incompletos.")
		return
	case "invalid_email":
		httperr.BadRequest(c, "invalid_email", "Email inválido.")
		return
	case "password_too_short":
		httperr.BadRequest(c, "password_too_short", "A senha deve ter no mínimo 6 caracteres.")
		return
	}

	taken, err := emailTaken(h.db, in.Email)
	if err != nil {
		httperr.Internal(c, "email_check_failed", "Erro ao criar barbeiro.")
		return
	}
	if taken {
		httperr.Conflict(c, "email_already_registered", "Email já cadastrado.")
		return
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar barbeiro.")
		return
	}

	barber := models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hashed,
		Phone:        in.Phone,
		Image:        in.Image,
		Role:         models.RoleBarber,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		if isUniqueViolation(err) {
			httperr.Conflict(c, "email_already_registered", "Email já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:  ident.UserID,
		Action:  audit.ActionBarberCreated,
		Details: "Barbeiro " + barber.Name + " (" + barber.Email + ") criado por " + ident.Name,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Barbeiro criado com sucesso",
		"barber": dto.SafeUser{
			ID:    barber.ID,
			Name:  barber.Name,
			Email: barber.Email,
			Phone: barber.Phone,
			Image: barber.Image,
		},
	})
}
