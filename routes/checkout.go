package routes

import (
	"github.com/gin-gonic/gin"
	checkoutControllers "github.com/vihansr/Ecommerce-Website/controllers/checkout"
	paymentControllers "github.com/vihansr/Ecommerce-Website/controllers/payment"
	"github.com/vihansr/Ecommerce-Website/middleware"
	"gorm.io/gorm"
)

// SetupCheckoutRoutes registers the checkout flow and the processor webhook.
func SetupCheckoutRoutes(r *gin.Engine, db *gorm.DB) {
	checkout := r.Group("/")
	checkout.Use(middleware.RequireLogin(db))
	{
		checkout.GET("/checkout", checkoutControllers.ReviewCheckout(db))
		checkout.POST("/checkout", checkoutControllers.StartCheckout(db))
		checkout.GET("/success", checkoutControllers.Success(db))

		// websocket endpoint for real-time order updates
		checkout.GET("/checkout/ws", checkoutControllers.CheckoutWebSocketHandler)
	}

	payment := r.Group("/payment")
	{
		// Webhook endpoint: middleware handles sandbox/prod verification
		payment.POST("/webhook",
			middleware.PaymentWebhookAuth(),
			paymentControllers.PaymentWebhookHandler(db),
		)
	}
}
