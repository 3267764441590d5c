package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the auth, storefront,
// cart and checkout route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Catalog browsing + login-gated product management
	SetupStoreRoutes(r, db)

	// Cart routes (session-protected)
	SetupCartRoutes(r, db)

	// Checkout + payment webhook
	SetupCheckoutRoutes(r, db)
}
