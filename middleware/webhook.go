package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// PaymentWebhookAuth verifies the processor's webhook signature, skips the
// check in sandbox/dev mode. The signature is an HMAC-SHA256 of the raw
// request body under the shared webhook secret, sent hex-encoded in the
// X-Payment-Signature header.
func PaymentWebhookAuth() gin.HandlerFunc {
	secretKey := os.Getenv("PAYMENT_WEBHOOK_SECRET")
	if secretKey == "" {
		panic("PAYMENT_WEBHOOK_SECRET is not set")
	}

	mode := strings.ToLower(os.Getenv("PAYMENT_MODE"))

	return func(c *gin.Context) {
		if mode == "sandbox" || mode == "dev" {
			fmt.Println("Sandbox/dev mode: skipping payment webhook signature verification")
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body for signature verification"})
			c.Abort()
			return
		}
		// Handlers downstream still need the body.
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

		provided := c.GetHeader("X-Payment-Signature")
		if provided == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "missing webhook signature"})
			c.Abort()
			return
		}

		mac := hmac.New(sha256.New, []byte(secretKey))
		mac.Write(body)
		calculated := hex.EncodeToString(mac.Sum(nil))

		providedRaw, err := hex.DecodeString(provided)
		if err != nil || !hmac.Equal(providedRaw, mac.Sum(nil)) {
			fmt.Println("Webhook signature mismatch, calculated:", calculated)
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid webhook signature"})
			c.Abort()
			return
		}

		c.Next()
	}
}
