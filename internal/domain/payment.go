package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch strings.ToLower(s) {
	case string(PaymentPending):
		return PaymentPending, nil
	case string(PaymentPaid):
		return PaymentPaid, nil
	case string(PaymentFailed):
		return PaymentFailed, nil
	case string(PaymentRefunded):
		return PaymentRefunded, nil
	}
	return "", Validationf("unknown payment status: %q", s)
}

// Payment is one attempt to settle an order. An order may accumulate several
// rows (retries); each advances independently. PaidAt is stamped on the first
// transition to paid and never overwritten.
type Payment struct {
	ID            uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID       uint64          `json:"orderId" gorm:"not null;index"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(15,2);not null"`
	PaymentMethod string          `json:"paymentMethod" gorm:"size:50;not null"`
	Status        PaymentStatus   `json:"status" gorm:"size:20;not null;default:'pending'"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}
