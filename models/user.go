package models

import "time"

type User struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string     `gorm:"not null" json:"-"`
	CartItems    []CartItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart_items,omitempty"`
	Orders       []Order    `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
