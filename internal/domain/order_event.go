package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderCreatedEvent struct {
	OrderID     uint64          `json:"orderId"`
	OrderCode   string          `json:"orderCode"`
	Email       string          `json:"email"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type OrderStatusChangedEvent struct {
	OrderID   uint64      `json:"orderId"`
	OrderCode string      `json:"orderCode"`
	From      OrderStatus `json:"from"`
	To        OrderStatus `json:"to"`
	ChangedAt time.Time   `json:"changedAt"`
}

type InventoryLoggedEvent struct {
	LogID          uint64    `json:"logId"`
	ProductID      uint64    `json:"productId"`
	ChangeQuantity int       `json:"changeQuantity"`
	LogType        LogType   `json:"logType"`
	NewQuantity    int       `json:"newQuantity"`
	LoggedAt       time.Time `json:"loggedAt"`
}
