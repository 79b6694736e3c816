package repositories

import (
	"gin-catalog/models"

	"gorm.io/gorm"
)

type IProductRepository interface {
	FindAll() (*[]models.Product, error)
	FindById(productID uint) (*models.Product, error)
	Create(newProduct models.Product) (*models.Product, error)
	Update(product models.Product) (*models.Product, error)
	Delete(productID uint) error
	ExistsByID(productID uint) (bool, error)
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindAll() (*[]models.Product, error) {
	var products []models.Product
	result := r.db.Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}
	return &products, nil
}

func (r *ProductRepository) FindById(productID uint) (*models.Product, error) {
	var product models.Product
	result := r.db.First(&product, "id = ?", productID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &product, nil
}

func (r *ProductRepository) Create(newProduct models.Product) (*models.Product, error) {
	result := r.db.Create(&newProduct)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newProduct, nil
}

func (r *ProductRepository) Update(product models.Product) (*models.Product, error) {
	result := r.db.Save(&product)
	if result.Error != nil {
		return nil, result.Error
	}
	return &product, nil
}

func (r *ProductRepository) Delete(productID uint) error {
	result := r.db.Delete(&models.Product{}, "id = ?", productID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *ProductRepository) ExistsByID(productID uint) (bool, error) {
	var count int64
	result := r.db.Model(&models.Product{}).Where("id = ?", productID).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
