package services

import (
	"errors"

	"gin-catalog/dto"
	"gin-catalog/models"
	"gin-catalog/repositories"

	"gorm.io/gorm"
)

type IOrderItemService interface {
	FindAll() (*[]models.OrderItem, error)
	FindById(itemID uint) (*models.OrderItem, error)
	Create(input dto.CreateOrderItemInput) (*models.OrderItem, error)
	Update(itemID uint, input dto.UpdateOrderItemInput) (*models.OrderItem, error)
	Delete(itemID uint) error
}

type OrderItemService struct {
	repository        repositories.IOrderItemRepository
	orderRepository   repositories.IOrderRepository
	productRepository repositories.IProductRepository
}

func NewOrderItemService(repository repositories.IOrderItemRepository, orderRepository repositories.IOrderRepository, productRepository repositories.IProductRepository) IOrderItemService {
	return &OrderItemService{
		repository:        repository,
		orderRepository:   orderRepository,
		productRepository: productRepository,
	}
}

func (s *OrderItemService) FindAll() (*[]models.OrderItem, error) {
	return s.repository.FindAll()
}

func (s *OrderItemService) FindById(itemID uint) (*models.OrderItem, error) {
	item, err := s.repository.FindById(itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return item, err
}

// Create validates both entity references and the quantity, then snapshots
// the product price onto the item.
func (s *OrderItemService) Create(input dto.CreateOrderItemInput) (*models.OrderItem, error) {
	exists, err := s.orderRepository.ExistsByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, invalidArgumentf("order %d does not exist", input.OrderID)
	}

	product, err := s.productRepository.FindById(input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidArgumentf("product %d does not exist", input.ProductID)
		}
		return nil, err
	}

	if input.Quantity == 0 {
		return nil, invalidArgumentf("quantity must be positive")
	}

	newItem := models.OrderItem{
		OrderID:   input.OrderID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		UnitPrice: product.Price,
	}
	return s.repository.Create(newItem)
}

func (s *OrderItemService) Update(itemID uint, input dto.UpdateOrderItemInput) (*models.OrderItem, error) {
	target, err := s.FindById(itemID)
	if err != nil || target == nil {
		return nil, err
	}

	if input.OrderID != nil {
		exists, err := s.orderRepository.ExistsByID(*input.OrderID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, invalidArgumentf("order %d does not exist", *input.OrderID)
		}
		target.OrderID = *input.OrderID
	}
	if input.ProductID != nil {
		// Moving the item to another product re-snapshots the unit price.
		product, err := s.productRepository.FindById(*input.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, invalidArgumentf("product %d does not exist", *input.ProductID)
			}
			return nil, err
		}
		target.ProductID = *input.ProductID
		target.UnitPrice = product.Price
	}
	if input.Quantity != nil {
		if *input.Quantity == 0 {
			return nil, invalidArgumentf("quantity must be positive")
		}
		target.Quantity = *input.Quantity
	}
	return s.repository.Update(*target)
}

func (s *OrderItemService) Delete(itemID uint) error {
	return s.repository.Delete(itemID)
}
