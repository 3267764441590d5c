package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is a snapshot of a product at the moment it was added. The copied
// columns keep the cart stable when the catalog changes afterwards; ProductID
// records provenance only and is not a foreign key.
type CartItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      string          `gorm:"index;not null" json:"user_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `gorm:"not null" json:"product_name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string          `json:"image_url"`
	AddedAt     time.Time       `json:"added_at"`
}
