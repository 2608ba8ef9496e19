package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dayloop/dayloop/internal/models"
)

// IdentityHeader carries the authenticated user's email. Login itself happens
// at the fronting auth proxy; by the time a request reaches this service the
// header is trusted.
const IdentityHeader = "X-Auth-Email"

// RequireUser resolves the identity header to a user row and sets user_id
// and user_email on the request context for downstream handlers.
func RequireUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetHeader(IdentityHeader)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user_email", user.Email)

		c.Next()
	}
}
