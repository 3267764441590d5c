package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/vihansr/Ecommerce-Website/controllers/cart"
	"github.com/vihansr/Ecommerce-Website/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the session-protected cart endpoints.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.RequireLogin(db))
	{
		cartGroup.GET("", cartControllers.GetCart(db))                     // GET /cart
		cartGroup.POST("/items", cartControllers.AddCartItem(db))          // POST /cart/items
		cartGroup.DELETE("/items/:id", cartControllers.RemoveCartItem(db)) // DELETE /cart/items/:id
	}
}
