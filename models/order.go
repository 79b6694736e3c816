package models

import "gorm.io/gorm"

type Order struct {
	gorm.Model
	UserID     uint   `gorm:"not null"`
	Status     string `gorm:"not null"`
	OrderItems []OrderItem
}
