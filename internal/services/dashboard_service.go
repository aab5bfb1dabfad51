package services

import (
	"context"

	"github.com/shopspring/decimal"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

const (
	recentOrderLimit  = 10
	topProductLimit   = 5
	lowStockThreshold = 5
	lowStockLimit     = 10
)

type DashboardStats struct {
	TotalOrders   int64                  `json:"totalOrders"`
	TotalRevenue  decimal.Decimal        `json:"totalRevenue"`
	TotalProducts int64                  `json:"totalProducts"`
	TotalUsers    int64                  `json:"totalUsers"`
	RecentOrders  []domain.Order         `json:"recentOrders"`
	TopProducts   []repository.TopProduct `json:"topProducts"`
	LowStock      []domain.Product       `json:"lowStock"`
}

type DashboardService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	users    repository.UserRepository
}

func NewDashboardService(orders repository.OrderRepository, products repository.ProductRepository, users repository.UserRepository) *DashboardService {
	return &DashboardService{orders: orders, products: products, users: users}
}

// GetStats aggregates the back-office landing numbers. Revenue counts orders
// that have been paid for, including those further along the lifecycle.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalOrders, err = s.orders.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = s.orders.SumTotalByStatuses(ctx, []domain.OrderStatus{
		domain.OrderPaid, domain.OrderShipped, domain.OrderDelivered,
	}); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = s.products.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.RecentOrders, err = s.orders.FindRecent(ctx, recentOrderLimit); err != nil {
		return nil, err
	}
	if stats.TopProducts, err = s.orders.TopProducts(ctx, topProductLimit); err != nil {
		return nil, err
	}
	if stats.LowStock, err = s.products.FindLowStock(ctx, lowStockThreshold, lowStockLimit); err != nil {
		return nil, err
	}
	return stats, nil
}
