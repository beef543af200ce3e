package audit

import (
	"gorm.io/gorm"

	"github.com/fswbarber/booking-api/internal/models"
)

// Ações registradas na trilha de auditoria.
const (
	ActionCancelBooking = models.ActionCancelBooking
	ActionBarberCreated = "BARBER_CREATED"
	ActionUserUpdated   = "USER_UPDATED"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

// WithTx devolve um Logger preso à transação: a linha de auditoria
// comita (ou desfaz) junto com o resto da operação.
func (l *Logger) WithTx(tx *gorm.DB) *Logger {
	return &Logger{db: tx}
}

func (l *Logger) Log(userID uint, action, details string) error {
	entry := models.Log{
		Action:  action,
		Details: details,
		UserID:  userID,
	}

	return l.db.Create(&entry).Error
}
