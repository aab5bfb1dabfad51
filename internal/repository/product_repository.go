package repository

import (
	"context"

	"product-management/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	Save(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByStatus(ctx context.Context, status domain.ProductStatus) ([]domain.Product, error)
	FindByCategoryID(ctx context.Context, categoryID uint64) ([]domain.Product, error)
	Search(ctx context.Context, keyword string) ([]domain.Product, error)
	Count(ctx context.Context) (int64, error)
	FindLowStock(ctx context.Context, threshold, limit int) ([]domain.Product, error)

	// AdjustStock applies a signed delta with a conditional UPDATE that
	// refuses to drive quantity negative. Returns false when the guard
	// rejects the change or the product does not exist.
	AdjustStock(ctx context.Context, id uint64, delta int) (bool, error)
}
