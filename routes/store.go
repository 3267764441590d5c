package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/vihansr/Ecommerce-Website/controllers/product"
	"github.com/vihansr/Ecommerce-Website/middleware"
	"gorm.io/gorm"
)

// SetupStoreRoutes registers the public catalog pages and the login-gated
// product management endpoints.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", productcontroller.Index(db))
	r.GET("/product/:id", productcontroller.GetProductByID(db))
	r.GET("/category/:category", productcontroller.ListByCategory(db))

	manage := r.Group("/")
	manage.Use(middleware.RequireLogin(db))
	{
		manage.GET("/add_product", productcontroller.AddProductForm())
		manage.POST("/add_product", productcontroller.CreateProduct(db))
		manage.GET("/products/export", productcontroller.ExportProductsToExcel(db))
	}
}
