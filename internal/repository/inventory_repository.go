package repository

import (
	"context"

	"product-management/internal/domain"
)

type InventoryLogRepository interface {
	Create(ctx context.Context, l *domain.InventoryLog) error
	FindAll(ctx context.Context) ([]domain.InventoryLog, error)
	FindByProductID(ctx context.Context, productID uint64) ([]domain.InventoryLog, error)
}
