package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	IsAdmin   bool      `json:"is_admin"`
	Basket    Basket    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"basket"`
	CreatedAt time.Time `json:"created_at"`
}
