package services

import (
	"context"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

type RatingService struct {
	ratings  repository.RatingRepository
	products repository.ProductRepository
	users    repository.UserRepository
}

func NewRatingService(ratings repository.RatingRepository, products repository.ProductRepository, users repository.UserRepository) *RatingService {
	return &RatingService{ratings: ratings, products: products, users: users}
}

func (s *RatingService) GetByProduct(ctx context.Context, productID uint64) ([]domain.ProductRating, error) {
	return s.ratings.FindByProductID(ctx, productID)
}

func (s *RatingService) GetByUser(ctx context.Context, userID uint64) ([]domain.ProductRating, error) {
	return s.ratings.FindByUserID(ctx, userID)
}

func (s *RatingService) Create(ctx context.Context, productID, userID uint64, rating int, comment string) (*domain.ProductRating, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.Validationf("rating must be between 1 and 5")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFoundf("product not found with id: %d", productID)
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFoundf("user not found with id: %d", userID)
	}

	r := &domain.ProductRating{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.ratings.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RatingService) Delete(ctx context.Context, id uint64) error {
	r, err := s.ratings.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.NotFoundf("rating not found with id: %d", id)
	}
	return s.ratings.Delete(ctx, id)
}
