package checkoutControllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vihansr/Ecommerce-Website/models"
	"github.com/vihansr/Ecommerce-Website/payment"
	"gorm.io/gorm"
)

const checkoutCurrency = "usd"

// minorUnits converts a price into minor currency units (19.99 -> 1999).
func minorUnits(price decimal.Decimal) int64 {
	return price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func cartTotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}
	return total
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// GET /checkout
func ReviewCheckout(db *gorm.DB) gin.HandlerFunc {
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

		total := cartTotal(items)

		c.JSON(http.StatusOK, gin.H{
			"items":             items,
			"total":             total.StringFixed(2),
			"total_minor_units": minorUnits(total),
			"currency":          checkoutCurrency,
			"public_key":        os.Getenv("PAYMENT_PUBLIC_KEY"),
		})
	}
}

// POST /checkout
//
// Creates a pending order snapshotting the cart, then asks the processor for
// a hosted checkout session and sends the client there. The cart stays
// intact until the processor confirms payment over the webhook.
func StartCheckout(db *gorm.DB) gin.HandlerFunc {
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
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		orderItems := make([]models.OrderItem, 0, len(items))
		lineItems := make([]payment.LineItem, 0, len(items))
		for _, item := range items {
			orderItems = append(orderItems, models.OrderItem{
				ProductName: item.ProductName,
				Price:       item.Price,
				ImageURL:    item.ImageURL,
			})
			lineItems = append(lineItems, payment.LineItem{
				Name:       item.ProductName,
				UnitAmount: minorUnits(item.Price),
				Currency:   checkoutCurrency,
				Quantity:   1,
			})
		}

		order := models.Order{
			OrderRef:      generateOrderRef(),
			UserID:        userID,
			Items:         orderItems,
			TotalAmount:   cartTotal(items),
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusPending,
			CreatedAt:     time.Now(),
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		sessionURL, sessionID, err := payment.CreateCheckoutSession(
			order.OrderRef,
			lineItems,
			os.Getenv("CHECKOUT_SUCCESS_URL"),
			os.Getenv("CHECKOUT_CANCEL_URL"),
		)
		if err != nil {
			db.Model(&models.Order{}).Where("id = ?", order.ID).
				Update("status", models.OrderStatusCancelled)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		if err := db.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("payment_ref", sessionID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment session"})
			return
		}

		c.Redirect(http.StatusSeeOther, sessionURL)
	}
}

// GET /success
//
// Landing page after the processor redirects back. It only reports the
// latest order; cart clearing and confirmation happen on the webhook, never
// on this redirect.
func Success(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		userID := userIDVal.(string)

		var order models.Order
		if err := db.Preload("Items").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			First(&order).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "no recent order"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Thank you for your purchase",
			"order":   order,
		})
	}
}
