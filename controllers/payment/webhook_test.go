package paymentControllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vihansr/Ecommerce-Website/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/payment/webhook", PaymentWebhookHandler(db))
	return r
}

func seedUserWithCart(t *testing.T, db *gorm.DB, itemCount int) models.User {
	t.Helper()
	u := models.User{ID: uuid.NewString(), Username: "u-" + uuid.NewString()[:8], PasswordHash: "x"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	for i := 0; i < itemCount; i++ {
		item := models.CartItem{UserID: u.ID, ProductName: "Tee", Price: decimal.RequireFromString("9.99")}
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("seed cart item: %v", err)
		}
	}
	return u
}

func seedPendingOrder(t *testing.T, db *gorm.DB, userID string) models.Order {
	t.Helper()
	order := models.Order{
		OrderRef:      "ref-" + uuid.NewString(),
		UserID:        userID,
		TotalAmount:   decimal.RequireFromString("9.99"),
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func postEvent(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/payment/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookApprovedConfirmsOrderAndClearsCart(t *testing.T) {
	db := setupTestDB(t)
	payer := seedUserWithCart(t, db, 2)
	bystander := seedUserWithCart(t, db, 3)
	order := seedPendingOrder(t, db, payer.ID)
	r := newRouter(db)

	w := postEvent(t, r, fmt.Sprintf(`{"order_ref":%q,"status":"approved"}`, order.OrderRef))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var after models.Order
	db.First(&after, order.ID)
	if after.Status != models.OrderStatusConfirmed || after.PaymentStatus != models.PaymentStatusPaid {
		t.Fatalf("order state = %s/%s, want confirmed/paid", after.Status, after.PaymentStatus)
	}

	// Exactly the paying user's cart is cleared.
	var payerCount, bystanderCount int64
	db.Model(&models.CartItem{}).Where("user_id = ?", payer.ID).Count(&payerCount)
	db.Model(&models.CartItem{}).Where("user_id = ?", bystander.ID).Count(&bystanderCount)
	if payerCount != 0 {
		t.Fatalf("payer cart count = %d, want 0", payerCount)
	}
	if bystanderCount != 3 {
		t.Fatalf("bystander cart count = %d, want 3", bystanderCount)
	}
}

func TestWebhookDeclinedKeepsCart(t *testing.T) {
	db := setupTestDB(t)
	payer := seedUserWithCart(t, db, 2)
	order := seedPendingOrder(t, db, payer.ID)
	r := newRouter(db)

	w := postEvent(t, r, fmt.Sprintf(`{"order_ref":%q,"status":"declined"}`, order.OrderRef))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var after models.Order
	db.First(&after, order.ID)
	if after.PaymentStatus != models.PaymentStatusFailed {
		t.Fatalf("payment status = %s, want failed", after.PaymentStatus)
	}
	if after.Status != models.OrderStatusPending {
		t.Fatalf("order status = %s, want still pending", after.Status)
	}

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", payer.ID).Count(&count)
	if count != 2 {
		t.Fatalf("cart count = %d, want 2", count)
	}
}

func TestWebhookUnknownOrderRef(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)

	w := postEvent(t, r, `{"order_ref":"no-such-ref","status":"approved"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestWebhookMissingOrderRef(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)

	w := postEvent(t, r, `{"status":"approved"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
