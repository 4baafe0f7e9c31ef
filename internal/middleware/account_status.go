package middleware

import (
	"net/http"

	"oakline-partners/internal/errors"
	"oakline-partners/internal/models"
	"oakline-partners/internal/repositories"
	"oakline-partners/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AccountStatusMiddleware loads the authenticated partner from the database
// and blocks accounts that are not active. The database is authoritative: a
// token minted before an approval or denial does not decide access. The
// loaded partner is stored in the context for handlers that need it.
func AccountStatusMiddleware(partnerRepo repositories.PartnerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		partnerID := c.GetString("partner_id")
		if partnerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		partner, err := partnerRepo.FindByID(c, partnerID)
		if err != nil {
			logger.GlobalLogger.Errorf("Failed to load partner account: partner=%s, error=%v", partnerID, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "partner account not found"})
			return
		}

		switch partner.Status {
		case models.PartnerStatusActive:
			c.Set("partner", partner)
			c.Next()
		case models.PartnerStatusDenied:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{
					"message": errors.MsgAccountDenied,
					"code":    errors.ErrCodeAccountDenied,
				},
			})
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{
					"message": errors.MsgAccountPending,
					"code":    errors.ErrCodeAccountPending,
				},
			})
		}
	}
}
