package dto

type CreateProductInput struct {
	Name        string `json:"name" binding:"required"`
	Price       uint   `json:"price" binding:"required"`
	Stock       uint   `json:"stock"`
	Description string `json:"description"`
}

type UpdateProductInput struct {
	Name        *string `json:"name"`
	Price       *uint   `json:"price"`
	Stock       *uint   `json:"stock"`
	Description *string `json:"description"`
}
