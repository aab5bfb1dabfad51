package http

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

type ProductRequest struct {
	Name          string           `json:"name" binding:"required"`
	Description   string           `json:"description"`
	Image         string           `json:"image"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discountPrice"`
	Quantity      int              `json:"quantity"`
	Status        string           `json:"status"`
	CategoryID    uint64           `json:"categoryId" binding:"required"`
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type OrderItemRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type PlaceOrderRequest struct {
	CustomerName  string             `json:"customerName" binding:"required"`
	Email         string             `json:"email" binding:"required,email"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address" binding:"required"`
	PaymentMethod string             `json:"paymentMethod" binding:"required"`
	UserID        *uint64            `json:"userId"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type PaymentRequest struct {
	OrderID       uint64          `json:"orderId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod" binding:"required"`
	Status        string          `json:"status"`
}

type InventoryLogRequest struct {
	ProductID      uint64 `json:"productId" binding:"required"`
	ChangeQuantity int    `json:"changeQuantity" binding:"required"`
	LogType        string `json:"logType" binding:"required"`
	Notes          string `json:"notes"`
}

type CartItemRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type WishlistRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
}

type RatingRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}
