package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vihansr/Ecommerce-Website/models"
	"gorm.io/gorm"
)

// Index builds the homepage payload: the first product of each promoted
// category plus the full per-category listing. Categories with no products
// are simply absent from the maps.
func Index(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		topItems := make(map[string]models.Product)
		allItems := make(map[string][]models.Product)

		for _, category := range models.StoreCategories {
			var first models.Product
			err := db.Where("category = ?", category).Order("id asc").First(&first).Error
			if err == nil {
				topItems[category] = first
			} else if err != gorm.ErrRecordNotFound {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
				return
			}

			var products []models.Product
			if err := db.Where("category = ?", category).Order("id asc").Find(&products).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
				return
			}
			if len(products) > 0 {
				allItems[category] = products
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"top_items": topItems,
			"all_items": allItems,
		})
	}
}

// ListByCategory returns every product whose category label matches exactly.
// An empty listing is a 404, not an empty page.
func ListByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")

		var products []models.Product
		if err := db.Where("category = ?", category).Order("id asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		if len(products) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No products found in this category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"category": category,
			"products": products,
		})
	}
}
