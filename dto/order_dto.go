package dto

type CreateOrderInput struct {
	UserID uint   `json:"userId" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type UpdateOrderInput struct {
	UserID *uint   `json:"userId"`
	Status *string `json:"status"`
}

type CreateOrderItemInput struct {
	OrderID   uint `json:"orderId" binding:"required"`
	ProductID uint `json:"productId" binding:"required"`
	Quantity  uint `json:"quantity"`
}

type UpdateOrderItemInput struct {
	OrderID   *uint `json:"orderId"`
	ProductID *uint `json:"productId"`
	Quantity  *uint `json:"quantity"`
}
