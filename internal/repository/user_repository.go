package repository

import (
	"context"

	"product-management/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	Save(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)
	EmailTaken(ctx context.Context, email string, excludeID uint64) (bool, error)
	UsernameTaken(ctx context.Context, username string, excludeID uint64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type CartRepository interface {
	FindByUserID(ctx context.Context, userID uint64) ([]domain.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID, productID uint64) (*domain.CartItem, error)
	Create(ctx context.Context, item *domain.CartItem) error
	Save(ctx context.Context, item *domain.CartItem) error
	Delete(ctx context.Context, id uint64) error
	DeleteByUserID(ctx context.Context, userID uint64) error
}

type WishlistRepository interface {
	FindByUserID(ctx context.Context, userID uint64) ([]domain.Wishlist, error)
	FindByUserAndProduct(ctx context.Context, userID, productID uint64) (*domain.Wishlist, error)
	Create(ctx context.Context, w *domain.Wishlist) error
	Delete(ctx context.Context, id uint64) error
}

type RatingRepository interface {
	FindByID(ctx context.Context, id uint64) (*domain.ProductRating, error)
	FindByProductID(ctx context.Context, productID uint64) ([]domain.ProductRating, error)
	FindByUserID(ctx context.Context, userID uint64) ([]domain.ProductRating, error)
	Create(ctx context.Context, r *domain.ProductRating) error
	Delete(ctx context.Context, id uint64) error
}
