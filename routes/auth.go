package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/vihansr/Ecommerce-Website/controllers/user"
	"github.com/vihansr/Ecommerce-Website/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers registration, login and session endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/register", userControllers.Register(db))
	r.POST("/login", userControllers.Login(db))
	r.GET("/logout", userControllers.Logout())

	r.GET("/me", middleware.RequireLogin(db), userControllers.Me(db))
}
