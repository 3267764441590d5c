package paymentControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	cartControllers "github.com/vihansr/Ecommerce-Website/controllers/cart"
	checkoutControllers "github.com/vihansr/Ecommerce-Website/controllers/checkout"
	"github.com/vihansr/Ecommerce-Website/models"
	"gorm.io/gorm"
)

// WebhookEvent is the processor's server-to-server payment notification.
type WebhookEvent struct {
	OrderRef  string `json:"order_ref"`
	SessionID string `json:"session_id"`
	Status    string `json:"status"` // "approved" or "declined"
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
}

// PaymentWebhookHandler finalizes a checkout once the processor reports the
// outcome. Only an approved event confirms the order and empties the paying
// user's cart; a redirect to /success on its own changes nothing.
func PaymentWebhookHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event WebhookEvent
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
			return
		}

		if event.OrderRef == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing order_ref"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").Where("order_ref = ?", event.OrderRef).First(&order).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
			return
		}

		if event.Status != "approved" {
			if err := db.Model(&models.Order{}).Where("id = ?", order.ID).
				Update("payment_status", models.PaymentStatusFailed).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Payment not successful"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
				Updates(map[string]interface{}{
					"status":         models.OrderStatusConfirmed,
					"payment_status": models.PaymentStatusPaid,
				}).Error; err != nil {
				return err
			}
			return cartControllers.ClearCart(tx, order.UserID)
		})
		if err != nil {
			fmt.Println("Failed to confirm order:", order.OrderRef, "error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm order"})
			return
		}

		order.Status = models.OrderStatusConfirmed
		order.PaymentStatus = models.PaymentStatusPaid
		checkoutControllers.BroadcastOrderUpdate(order)

		c.JSON(http.StatusOK, gin.H{"message": "Order confirmed"})
	}
}
