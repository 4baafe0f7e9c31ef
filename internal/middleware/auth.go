package middleware

import (
	"net/http"
	"strings"

	"oakline-partners/internal/auth"
	"oakline-partners/pkg/config"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and exposes the partner claims
// to downstream handlers. Token errors are never echoed to the client.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			return
		}

		claims, err := auth.ValidateJWT(token, cfg.JWT.Secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("partner_id", claims.PartnerID)
		c.Set("full_name", claims.FullName)
		c.Set("email", claims.Email)
		c.Set("company", claims.Company)
		c.Next()
	}
}

// bearerToken extracts the credential from an "Authorization: Bearer x"
// header. The scheme comparison is case-insensitive per RFC 7235.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
