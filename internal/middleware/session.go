package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
)

// RequireSession creates a Gin middleware that gates routes on a stored
// session. It is the route guard equivalent for the authenticated area:
// without a stored bearer token the request is rejected before any backend
// call can fail on it.
func RequireSession(sessions portsrepo.SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := sessions.Token(c.Request.Context())
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to read stored session", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to read stored session"})
			return
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required. Please login first."})
			return
		}

		c.Next()
	}
}
