package repositories

import (
	"gin-catalog/models"

	"gorm.io/gorm"
)

type IOrderItemRepository interface {
	FindAll() (*[]models.OrderItem, error)
	FindById(itemID uint) (*models.OrderItem, error)
	Create(newItem models.OrderItem) (*models.OrderItem, error)
	Update(item models.OrderItem) (*models.OrderItem, error)
	Delete(itemID uint) error
}

type OrderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) IOrderItemRepository {
	return &OrderItemRepository{db: db}
}

func (r *OrderItemRepository) FindAll() (*[]models.OrderItem, error) {
	var items []models.OrderItem
	result := r.db.Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return &items, nil
}

func (r *OrderItemRepository) FindById(itemID uint) (*models.OrderItem, error) {
	var item models.OrderItem
	result := r.db.First(&item, "id = ?", itemID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func (r *OrderItemRepository) Create(newItem models.OrderItem) (*models.OrderItem, error) {
	result := r.db.Create(&newItem)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newItem, nil
}

func (r *OrderItemRepository) Update(item models.OrderItem) (*models.OrderItem, error) {
	result := r.db.Save(&item)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func (r *OrderItemRepository) Delete(itemID uint) error {
	result := r.db.Delete(&models.OrderItem{}, "id = ?", itemID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
