package services

import (
	"context"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

type WishlistService struct {
	wishlists repository.WishlistRepository
	users     repository.UserRepository
	products  repository.ProductRepository
}

func NewWishlistService(wishlists repository.WishlistRepository, users repository.UserRepository, products repository.ProductRepository) *WishlistService {
	return &WishlistService{wishlists: wishlists, users: users, products: products}
}

func (s *WishlistService) GetWishlist(ctx context.Context, userID uint64) ([]domain.Wishlist, error) {
	return s.wishlists.FindByUserID(ctx, userID)
}

func (s *WishlistService) Add(ctx context.Context, userID, productID uint64) (*domain.Wishlist, error) {
	existing, err := s.wishlists.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflictf("product already in wishlist")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFoundf("user not found with id: %d", userID)
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFoundf("product not found with id: %d", productID)
	}

	w := &domain.Wishlist{UserID: userID, ProductID: productID}
	if err := s.wishlists.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID uint64) error {
	w, err := s.wishlists.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return err
	}
	if w == nil {
		return domain.NotFoundf("wishlist item not found")
	}
	return s.wishlists.Delete(ctx, w.ID)
}
