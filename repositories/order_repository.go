package repositories

import (
	"gin-catalog/models"

	"gorm.io/gorm"
)

type IOrderRepository interface {
	FindAll() (*[]models.Order, error)
	FindById(orderID uint) (*models.Order, error)
	Create(newOrder models.Order) (*models.Order, error)
	Update(order models.Order) (*models.Order, error)
	Delete(orderID uint) error
	ExistsByID(orderID uint) (bool, error)
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) FindAll() (*[]models.Order, error) {
	var orders []models.Order
	result := r.db.Preload("OrderItems").Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}
	return &orders, nil
}

func (r *OrderRepository) FindById(orderID uint) (*models.Order, error) {
	var order models.Order
	result := r.db.Preload("OrderItems").First(&order, "id = ?", orderID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &order, nil
}

func (r *OrderRepository) Create(newOrder models.Order) (*models.Order, error) {
	result := r.db.Create(&newOrder)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newOrder, nil
}

func (r *OrderRepository) Update(order models.Order) (*models.Order, error) {
	result := r.db.Save(&order)
	if result.Error != nil {
		return nil, result.Error
	}
	return &order, nil
}

func (r *OrderRepository) Delete(orderID uint) error {
	result := r.db.Delete(&models.Order{}, "id = ?", orderID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *OrderRepository) ExistsByID(orderID uint) (bool, error) {
	var count int64
	result := r.db.Model(&models.Order{}).Where("id = ?", orderID).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
