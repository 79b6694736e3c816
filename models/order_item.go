package models

import "gorm.io/gorm"

type OrderItem struct {
	gorm.Model
	OrderID   uint `gorm:"not null"`
	ProductID uint `gorm:"not null"`
	Quantity  uint `gorm:"not null"`
	// UnitPrice is the product price captured when the item was created.
	UnitPrice uint `gorm:"not null"`
}
