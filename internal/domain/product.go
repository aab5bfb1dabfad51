package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
)

// ParseProductStatus accepts status values case-insensitively and rejects
// anything outside the known set instead of falling back to a default.
func ParseProductStatus(s string) (ProductStatus, error) {
	switch strings.ToLower(s) {
	case string(ProductActive):
		return ProductActive, nil
	case string(ProductInactive):
		return ProductInactive, nil
	}
	return "", Validationf("unknown product status: %q", s)
}

type Product struct {
	ID            uint64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string           `json:"name" gorm:"size:200;not null"`
	Description   string           `json:"description" gorm:"type:text"`
	Image         string           `json:"image" gorm:"size:500"`
	Price         decimal.Decimal  `json:"price" gorm:"type:decimal(15,2);not null"`
	DiscountPrice *decimal.Decimal `json:"discountPrice,omitempty" gorm:"type:decimal(15,2)"`
	Quantity      int              `json:"quantity" gorm:"not null;default:0"`
	Status        ProductStatus    `json:"status" gorm:"size:20;not null;default:'active'"`
	CategoryID    uint64           `json:"categoryId" gorm:"not null;index"`
	Category      *Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Ratings       []ProductRating  `json:"ratings,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt     time.Time        `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time        `json:"updatedAt" gorm:"autoUpdateTime"`
}
