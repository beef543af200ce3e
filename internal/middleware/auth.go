package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fswbarber/booking-api/internal/session"
)

const ContextUserID = "userID"

// SessionMiddleware troca o cookie de sessão opaco pelo id do usuário dono
// dela. A carga do cargo fica a cargo de cada operação (guard.Resolver);
// aqui só se sabe QUEM é, nunca O QUE pode.
func SessionMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(session.CookieName)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
			return
		}

		userID, err := store.Get(c.Request.Context(), cookie)
		if err == session.ErrNotFound {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_session"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session_lookup_failed"})
			return
		}

		c.Set(ContextUserID, userID)

		c.Next()
	}
}
