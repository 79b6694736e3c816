package infra

import (
	"fmt"

	"gin-catalog/constants"
	"gin-catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedRoles inserts the fixed role set. Existing rows are left untouched.
func SeedRoles(db *gorm.DB) error {
	roles := []models.Role{
		{Name: constants.RoleUser},
		{Name: constants.RoleAdmin},
		{Name: constants.RoleSeller},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error
}

// VerifyRoles checks that the base role exists. Registration cannot work
// without it, so a failure here must stop startup.
func VerifyRoles(db *gorm.DB) error {
	var role models.Role
	if err := db.First(&role, "name = ?", constants.RoleUser).Error; err != nil {
		return fmt.Errorf("%s is missing, seed roles before starting: %w", constants.RoleUser, err)
	}
	return nil
}
