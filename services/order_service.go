package services

import (
	"errors"

	"gin-catalog/dto"
	"gin-catalog/models"
	"gin-catalog/repositories"

	"gorm.io/gorm"
)

type IOrderService interface {
	FindAll() (*[]models.Order, error)
	FindById(orderID uint) (*models.Order, error)
	Create(input dto.CreateOrderInput) (*models.Order, error)
	Update(orderID uint, input dto.UpdateOrderInput) (*models.Order, error)
	Delete(orderID uint) error
}

type OrderService struct {
	repository     repositories.IOrderRepository
	userRepository repositories.IUserRepository
}

func NewOrderService(repository repositories.IOrderRepository, userRepository repositories.IUserRepository) IOrderService {
	return &OrderService{
		repository:     repository,
		userRepository: userRepository,
	}
}

func (s *OrderService) FindAll() (*[]models.Order, error) {
	return s.repository.FindAll()
}

func (s *OrderService) FindById(orderID uint) (*models.Order, error) {
	order, err := s.repository.FindById(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return order, err
}

// Create requires the owner to exist.
func (s *OrderService) Create(input dto.CreateOrderInput) (*models.Order, error) {
	exists, err := s.userRepository.ExistsByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, invalidArgumentf("user %d does not exist", input.UserID)
	}

	newOrder := models.Order{
		UserID: input.UserID,
		Status: input.Status,
	}
	return s.repository.Create(newOrder)
}

func (s *OrderService) Update(orderID uint, input dto.UpdateOrderInput) (*models.Order, error) {
	target, err := s.FindById(orderID)
	if err != nil || target == nil {
		return nil, err
	}

	if input.UserID != nil {
		exists, err := s.userRepository.ExistsByID(*input.UserID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, invalidArgumentf("user %d does not exist", *input.UserID)
		}
		target.UserID = *input.UserID
	}
	if input.Status != nil {
		target.Status = *input.Status
	}
	return s.repository.Update(*target)
}

// Delete on a missing id succeeds silently, preserving idempotence.
func (s *OrderService) Delete(orderID uint) error {
	return s.repository.Delete(orderID)
}
