package mysql

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) FindByUserID(ctx context.Context, userID uint64) ([]domain.CartItem, error) {
	var out []domain.CartItem
	err := conn(ctx, r.db).Preload("Product").Preload("Product.Category").
		Where("user_id = ?", userID).
		Find(&out).Error
	return out, errors.Wrap(err, "list cart items")
}

func (r *cartRepo) FindByUserAndProduct(ctx context.Context, userID, productID uint64) (*domain.CartItem, error) {
	var item domain.CartItem
	err := conn(ctx, r.db).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find cart item")
	}
	return &item, nil
}

func (r *cartRepo) Create(ctx context.Context, item *domain.CartItem) error {
	return errors.Wrap(conn(ctx, r.db).Create(item).Error, "create cart item")
}

func (r *cartRepo) Save(ctx context.Context, item *domain.CartItem) error {
	return errors.Wrap(conn(ctx, r.db).Save(item).Error, "save cart item")
}

func (r *cartRepo) Delete(ctx context.Context, id uint64) error {
	return errors.Wrap(conn(ctx, r.db).Delete(&domain.CartItem{}, id).Error, "delete cart item")
}

func (r *cartRepo) DeleteByUserID(ctx context.Context, userID uint64) error {
	err := conn(ctx, r.db).Where("user_id = ?", userID).Delete(&domain.CartItem{}).Error
	return errors.Wrap(err, "clear cart")
}
