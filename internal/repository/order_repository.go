package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"product-management/internal/domain"
)

// TopProduct is an aggregate over order lines used by the dashboard.
type TopProduct struct {
	ProductID uint64          `json:"productId"`
	Name      string          `json:"name"`
	UnitsSold int64           `json:"unitsSold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	Save(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	FindByCode(ctx context.Context, code string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByEmail(ctx context.Context, email string) ([]domain.Order, error)
	FindByUserID(ctx context.Context, userID uint64) ([]domain.Order, error)
	FindByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Order, error)
	Count(ctx context.Context) (int64, error)
	SumTotalByStatuses(ctx context.Context, statuses []domain.OrderStatus) (decimal.Decimal, error)
	TopProducts(ctx context.Context, limit int) ([]TopProduct, error)
}
