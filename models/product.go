package models

import "time"

type Product struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"not null;uniqueIndex:idx_name_expiration" json:"name"`
	Price          float64   `gorm:"not null" json:"price"`
	Stock          int       `json:"stock"`
	Category       string    `json:"category"`
	ExpirationDate time.Time `gorm:"uniqueIndex:idx_name_expiration" json:"expiration_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
