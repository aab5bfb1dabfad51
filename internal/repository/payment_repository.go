package repository

import (
	"context"

	"product-management/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	Save(ctx context.Context, p *domain.Payment) error
	FindByID(ctx context.Context, id uint64) (*domain.Payment, error)
	FindByOrderID(ctx context.Context, orderID uint64) ([]domain.Payment, error)
	FindByUserID(ctx context.Context, userID uint64) ([]domain.Payment, error)
	FindAll(ctx context.Context) ([]domain.Payment, error)
}
