package repositories

import (
	"gin-catalog/models"

	"gorm.io/gorm"
)

type IUserRepository interface {
	CreateUser(user *models.User) error
	// FindUser looks up the unique user by email, roles preloaded.
	FindUser(email string) (*models.User, error)
	FindByID(userID uint) (*models.User, error)
	FindAll() (*[]models.User, error)
	Update(user *models.User) error
	ExistsByID(userID uint) (bool, error)
	// Delete removes the user row and its role associations for good, so
	// the email becomes available again. Returns gorm.ErrRecordNotFound
	// when the id is absent.
	Delete(userID uint) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(user *models.User) error {
	result := r.db.Create(user)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *UserRepository) FindUser(email string) (*models.User, error) {
	var user models.User
	result := r.db.Preload("Roles").First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) FindByID(userID uint) (*models.User, error) {
	var user models.User
	result := r.db.Preload("Roles").First(&user, "id = ?", userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) FindAll() (*[]models.User, error) {
	var users []models.User
	result := r.db.Preload("Roles").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return &users, nil
}

func (r *UserRepository) Update(user *models.User) error {
	result := r.db.Save(user)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *UserRepository) ExistsByID(userID uint) (bool, error) {
	var count int64
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (r *UserRepository) Delete(userID uint) error {
	var user models.User
	if err := r.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}
	if err := r.db.Model(&user).Association("Roles").Clear(); err != nil {
		return err
	}
	// Hard delete: a soft-deleted row would keep occupying the unique email.
	return r.db.Unscoped().Delete(&user).Error
}
