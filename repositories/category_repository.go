package repositories

import (
	"gin-catalog/models"

	"gorm.io/gorm"
)

type ICategoryRepository interface {
	FindAll() (*[]models.Category, error)
	FindById(categoryID uint) (*models.Category, error)
	Create(newCategory models.Category) (*models.Category, error)
	Update(category models.Category) (*models.Category, error)
	// Delete is a no-op when the id is absent.
	Delete(categoryID uint) error
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) ICategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAll() (*[]models.Category, error) {
	var categories []models.Category
	result := r.db.Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return &categories, nil
}

func (r *CategoryRepository) FindById(categoryID uint) (*models.Category, error) {
	var category models.Category
	result := r.db.First(&category, "id = ?", categoryID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

func (r *CategoryRepository) Create(newCategory models.Category) (*models.Category, error) {
	result := r.db.Create(&newCategory)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newCategory, nil
}

func (r *CategoryRepository) Update(category models.Category) (*models.Category, error) {
	result := r.db.Save(&category)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

func (r *CategoryRepository) Delete(categoryID uint) error {
	result := r.db.Delete(&models.Category{}, "id = ?", categoryID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
