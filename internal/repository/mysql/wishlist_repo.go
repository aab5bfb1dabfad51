package mysql

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

type wishlistRepo struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepo{db: db}
}

func (r *wishlistRepo) FindByUserID(ctx context.Context, userID uint64) ([]domain.Wishlist, error) {
	var out []domain.Wishlist
	err := conn(ctx, r.db).Preload("Product").Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, errors.Wrap(err, "list wishlist")
}

func (r *wishlistRepo) FindByUserAndProduct(ctx context.Context, userID, productID uint64) (*domain.Wishlist, error) {
	var w domain.Wishlist
	err := conn(ctx, r.db).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find wishlist item")
	}
	return &w, nil
}

func (r *wishlistRepo) Create(ctx context.Context, w *domain.Wishlist) error {
	return errors.Wrap(conn(ctx, r.db).Create(w).Error, "create wishlist item")
}

func (r *wishlistRepo) Delete(ctx context.Context, id uint64) error {
	return errors.Wrap(conn(ctx, r.db).Delete(&domain.Wishlist{}, id).Error, "delete wishlist item")
}
