package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(s) {
	case string(OrderPending):
		return OrderPending, nil
	case string(OrderConfirmed):
		return OrderConfirmed, nil
	case string(OrderPaid):
		return OrderPaid, nil
	case string(OrderShipped):
		return OrderShipped, nil
	case string(OrderDelivered):
		return OrderDelivered, nil
	case string(OrderCancelled):
		return OrderCancelled, nil
	}
	return "", Validationf("unknown order status: %q", s)
}

// CanTransitionTo encodes the forward-only lifecycle. Cancellation is routed
// through Cancellable since it also restores stock.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if next == OrderCancelled {
		return s.Cancellable()
	}
	switch s {
	case OrderPending:
		return next == OrderConfirmed
	case OrderConfirmed:
		return next == OrderPaid
	case OrderPaid:
		return next == OrderShipped
	case OrderShipped:
		return next == OrderDelivered
	}
	return false
}

// Cancellable is true until the order has shipped, been delivered, or was
// already cancelled.
func (s OrderStatus) Cancellable() bool {
	switch s {
	case OrderShipped, OrderDelivered, OrderCancelled:
		return false
	}
	return true
}

type Order struct {
	ID            uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderCode     string          `json:"orderCode" gorm:"size:50;not null;uniqueIndex"`
	CustomerName  string          `json:"customerName" gorm:"size:100;not null"`
	Email         string          `json:"email" gorm:"size:100;not null;index"`
	Phone         string          `json:"phone" gorm:"size:20;not null"`
	Address       string          `json:"address" gorm:"type:text;not null"`
	UserID        *uint64         `json:"userId,omitempty" gorm:"index"`
	TotalAmount   decimal.Decimal `json:"totalAmount" gorm:"type:decimal(15,2);not null"`
	PaymentMethod string          `json:"paymentMethod" gorm:"size:50;not null"`
	Status        OrderStatus     `json:"status" gorm:"size:20;not null;default:'pending';index"`
	Lines         []OrderLine     `json:"items" gorm:"foreignKey:OrderID"`
	Payments      []Payment       `json:"payments,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

// OrderLine is a unit-price snapshot taken at purchase time; rows are never
// updated after creation.
type OrderLine struct {
	ID        uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64          `json:"orderId" gorm:"not null;index"`
	ProductID uint64          `json:"productId" gorm:"not null;index"`
	Product   *Product        `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(15,2);not null"`
	Subtotal  decimal.Decimal `json:"subtotal" gorm:"type:decimal(15,2);not null"`
}

func (OrderLine) TableName() string { return "order_details" }
