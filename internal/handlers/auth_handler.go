package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fswbarber/booking-api/internal/config"
	"github.com/fswbarber/booking-api/internal/dto"
	"github.com/fswbarber/booking-api/internal/httperr"
	"github.com/fswbarber/booking-api/internal/models"
	"github.com/fswbarber/booking-api/internal/session"
	"github.com/fswbarber/booking-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	store  session.Store
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, store session.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, store: store, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register cria a conta de cliente (cargo sempre USER).
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	in := newAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	}

	switch validateNewAccount(&in) {
	case "name_required":
		httperr.BadRequest(c, "name_required", "Nome é obrigatório.")
		return
	case "invalid_email":
		httperr.BadRequest(c, "invalid_email", "Email inválido.")
		return
	case "password_too_short":
		httperr.BadRequest(c, "password_too_short", "Senha deve ter no mínimo 6 caracteres.")
		return
	}

	taken, err := emailTaken(h.db, in.Email)
	if err != nil {
		httperr.Internal(c, "email_check_failed", "Erro ao verificar disponibilidade do email.")
		return
	}
	if taken {
		httperr.Conflict(c, "email_already_registered", "Email já cadastrado.")
		return
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar usuário.")
		return
	}

	user := models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hashed,
		Phone:        in.Phone,
		Role:         models.RoleUser,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			httperr.Conflict(c, "email_already_registered", "Email já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuário criado com sucesso",
		"user": dto.SafeUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	email := validators.Normalize(req.Email)

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Email ou senha incorretos.")
			return
		}
		httperr.Internal(c, "login_failed", "Erro interno do servidor.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Email ou senha incorretos.")
		return
	}

	token, err := h.store.Create(c.Request.Context(), user.ID, h.config.SessionTTL)
	if err != nil {
		httperr.Internal(c, "failed_to_create_session", "Erro interno do servidor.")
		return
	}

	h.setSessionCookie(c, token, int(h.config.SessionTTL.Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"user": dto.SafeUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
			Image: user.Image,
			Role:  user.Role,
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		_ = h.store.Delete(c.Request.Context(), token)
	}

	h.setSessionCookie(c, "", -1)

	c.JSON(http.StatusOK, gin.H{"message": "Sessão encerrada."})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, maxAge, "/", "", false, true)
}
