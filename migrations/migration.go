package main

import (
	"gin-catalog/infra"
	"gin-catalog/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		panic("Failed to migrate database")
	}

	if err := infra.SeedRoles(db); err != nil {
		panic("Failed to seed roles")
	}

	tokenDB := infra.SetupTokenDB()
	if err := tokenDB.AutoMigrate(&models.BlacklistedToken{}); err != nil {
		panic("Failed to migrate token blacklist database")
	}
}
