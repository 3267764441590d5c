package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vihansr/Ecommerce-Website/auth"
	"github.com/vihansr/Ecommerce-Website/models"
	"gorm.io/gorm"
)

// RequireLogin resolves the current user once per request from the session
// cookie and stores the identity in the request context. Cart, checkout and
// catalog-mutation handlers all sit behind it.
func RequireLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(auth.SessionCookie)
		if err != nil || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		userID, err := auth.VerifySessionToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("username", user.Username)

		c.Next()
	}
}
