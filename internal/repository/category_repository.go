package repository

import (
	"context"

	"product-management/internal/domain"
)

type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	Save(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (*domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)

	// NameTaken reports whether another category (id != excludeID) already
	// uses the name. Pass 0 on create.
	NameTaken(ctx context.Context, name string, excludeID uint64) (bool, error)
}
