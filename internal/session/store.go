package session

import (
	"context"
	"errors"
	"time"
)

// CookieName é o nome do cookie de sessão opaco enviado ao navegador.
const CookieName = "fswb_session"

var ErrNotFound = errors.New("session not found")

// Store guarda sessões opacas do lado do servidor: o token nunca carrega
// dados, apenas aponta para o usuário dono da sessão.
type Store interface {
	Create(ctx context.Context, userID uint, ttl time.Duration) (string, error)
	Get(ctx context.Context, token string) (uint, error)
	Delete(ctx context.Context, token string) error
}
