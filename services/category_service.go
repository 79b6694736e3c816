package services

import (
	"errors"

	"gin-catalog/dto"
	"gin-catalog/models"
	"gin-catalog/repositories"

	"gorm.io/gorm"
)

type ICategoryService interface {
	FindAll() (*[]models.Category, error)
	// FindById returns nil without error when the id is absent.
	FindById(categoryID uint) (*models.Category, error)
	Create(input dto.CreateCategoryInput) (*models.Category, error)
	Update(categoryID uint, input dto.UpdateCategoryInput) (*models.Category, error)
	// Delete on a missing id is a silent no-op, matching the order and
	// order-item deletes.
	Delete(categoryID uint) error
}

type CategoryService struct {
	repository repositories.ICategoryRepository
}

func NewCategoryService(repository repositories.ICategoryRepository) ICategoryService {
	return &CategoryService{repository: repository}
}

func (s *CategoryService) FindAll() (*[]models.Category, error) {
	return s.repository.FindAll()
}

func (s *CategoryService) FindById(categoryID uint) (*models.Category, error) {
	category, err := s.repository.FindById(categoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return category, err
}

func (s *CategoryService) Create(input dto.CreateCategoryInput) (*models.Category, error) {
	newCategory := models.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	return s.repository.Create(newCategory)
}

func (s *CategoryService) Update(categoryID uint, input dto.UpdateCategoryInput) (*models.Category, error) {
	target, err := s.FindById(categoryID)
	if err != nil || target == nil {
		return nil, err
	}

	if input.Name != nil {
		target.Name = *input.Name
	}
	if input.Description != nil {
		target.Description = *input.Description
	}
	return s.repository.Update(*target)
}

func (s *CategoryService) Delete(categoryID uint) error {
	return s.repository.Delete(categoryID)
}
