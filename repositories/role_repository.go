package repositories

import (
	"gin-catalog/models"

	"gorm.io/gorm"
)

type IRoleRepository interface {
	// FindByName resolves a role by exact name lookup.
	FindByName(name string) (*models.Role, error)
}

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) IRoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) FindByName(name string) (*models.Role, error) {
	var role models.Role
	result := r.db.First(&role, "name = ?", name)
	if result.Error != nil {
		return nil, result.Error
	}
	return &role, nil
}
