package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Created at checkout, awaiting the processor
	OrderStatusConfirmed OrderStatus = "confirmed" // Processor reported a successful payment
	OrderStatusCancelled OrderStatus = "cancelled" // Session creation failed or was abandoned

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OrderRef      string          `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID        string          `gorm:"not null;index" json:"user_id"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status        OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentRef    string          `json:"payment_ref"` // Processor checkout-session reference
	CreatedAt     time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"index" json:"order_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	ImageURL    string          `json:"image_url"`
}
