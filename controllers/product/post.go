package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/vihansr/Ecommerce-Website/models"
	"gorm.io/gorm"
)

// AddProductForm backs the add-product form: the promoted category labels.
func AddProductForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": models.StoreCategories})
	}
}

// CreateProduct inserts a new product. No uniqueness check; the only
// validation is that the price parses as a non-negative amount.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		category := c.PostForm("category")
		priceStr := c.PostForm("price")
		if name == "" || category == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, category, and price are required"})
			return
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a number"})
			return
		}
		if price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}

		// Optional fields
		imageURL := c.PostForm("image_url")
		description := c.PostForm("description")

		product := models.Product{
			Name:        name,
			Category:    category,
			Price:       price,
			ImageURL:    imageURL,
			Description: description,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
