package mysql

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

type ratingRepo struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepo{db: db}
}

func (r *ratingRepo) FindByID(ctx context.Context, id uint64) (*domain.ProductRating, error) {
	var rating domain.ProductRating
	err := conn(ctx, r.db).First(&rating, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find rating")
	}
	return &rating, nil
}

func (r *ratingRepo) FindByProductID(ctx context.Context, productID uint64) ([]domain.ProductRating, error) {
	var out []domain.ProductRating
	err := conn(ctx, r.db).Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&out).Error
	return out, errors.Wrap(err, "list ratings by product")
}

func (r *ratingRepo) FindByUserID(ctx context.Context, userID uint64) ([]domain.ProductRating, error) {
	var out []domain.ProductRating
	err := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, errors.Wrap(err, "list ratings by user")
}

func (r *ratingRepo) Create(ctx context.Context, rating *domain.ProductRating) error {
	return errors.Wrap(conn(ctx, r.db).Create(rating).Error, "create rating")
}

func (r *ratingRepo) Delete(ctx context.Context, id uint64) error {
	return errors.Wrap(conn(ctx, r.db).Delete(&domain.ProductRating{}, id).Error, "delete rating")
}
