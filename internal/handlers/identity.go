package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fswbarber/booking-api/internal/guard"
	"github.com/fswbarber/booking-api/internal/httperr"
	"github.com/fswbarber/booking-api/internal/middleware"
)

// resolveIdentity carrega o chamador da requisição. Cada operação
// privilegiada paga uma consulta de identidade + uma de cargo, sem cache.
func resolveIdentity(c *gin.Context, resolver *guard.Resolver) (*guard.Identity, bool) {
	userID, ok := c.MustGet(middleware.ContextUserID).(uint)
	if !ok {
		httperr.Unauthorized(c, "invalid_session", "Não autorizado.")
		return nil, false
	}

	ident, err := resolver.Resolve(c.Request.Context(), userID)
	if err != nil {
		// sessão aponta para usuário que não existe mais
		httperr.Unauthorized(c, "user_not_found", "Não autorizado.")
		return nil, false
	}

	return ident, true
}
