package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StoreCategories is the fixed set previewed on the homepage. Products may
// carry any category label; these are just the ones the store promotes.
var StoreCategories = []string{"T-Shirts", "Sweatshirts", "Hoodies", "Jeans", "Pants"}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Category    string          `gorm:"not null;index" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}
