package models

import "time"

type Basket struct {
	ID         uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint         `gorm:"uniqueIndex" json:"user_id"` // Enforces ONE basket per user
	Quantity   int          `json:"quantity"`
	TotalPrice float64      `json:"total_price"`
	Items      []BasketItem `gorm:"foreignKey:BasketID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

type BasketItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	BasketID  uint `gorm:"index" json:"basket_id"` // Faster queries
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
	// Captured at add time from the product's unit price, never re-derived.
	TotalPrice float64   `json:"total_price"`
	AddedAt    time.Time `json:"added_at"`
}
