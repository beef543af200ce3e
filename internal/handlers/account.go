package handlers

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fswbarber/booking-api/internal/models"
	"github.com/fswbarber/booking-api/internal/validators"
)

// Cadastro de cliente e provisionamento de barbeiro têm o mesmo formato;
// só muda o cargo gravado e quem pode chamar.

type newAccountInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Image    string
}

// validateNewAccount normaliza e valida os campos. Devolve o código de
// erro de negócio, ou "" quando tudo está certo.
func validateNewAccount(in *newAccountInput) string {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = validators.Normalize(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Name == "" {
		return "name_required"
	}
	if !validators.IsEmailValid(in.Email) {
		return "invalid_email"
	}
	if len(in.Password) < 6 {
		return "password_too_short"
	}

	return ""
}

// emailTaken faz a pré-checagem case-insensitive de duplicidade. Não é
// atômica com o insert: a corrida fica coberta pelo índice único do banco
// (ver isUniqueViolation).
func emailTaken(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&count).Error

	return count > 0, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
