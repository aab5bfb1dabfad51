package mysql

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

type inventoryLogRepo struct {
	db *gorm.DB
}

func NewInventoryLogRepository(db *gorm.DB) repository.InventoryLogRepository {
	return &inventoryLogRepo{db: db}
}

func (r *inventoryLogRepo) Create(ctx context.Context, l *domain.InventoryLog) error {
	return errors.Wrap(conn(ctx, r.db).Create(l).Error, "create inventory log")
}

func (r *inventoryLogRepo) FindAll(ctx context.Context) ([]domain.InventoryLog, error) {
	var out []domain.InventoryLog
	err := conn(ctx, r.db).Preload("Product").Order("created_at DESC").Find(&out).Error
	return out, errors.Wrap(err, "list inventory logs")
}

func (r *inventoryLogRepo) FindByProductID(ctx context.Context, productID uint64) ([]domain.InventoryLog, error) {
	var out []domain.InventoryLog
	err := conn(ctx, r.db).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&out).Error
	return out, errors.Wrap(err, "list inventory logs by product")
}
