package services

import (
	"context"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

type CartService struct {
	carts    repository.CartRepository
	users    repository.UserRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, users repository.UserRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, users: users, products: products}
}

func (s *CartService) GetCart(ctx context.Context, userID uint64) ([]domain.CartItem, error) {
	return s.carts.FindByUserID(ctx, userID)
}

// AddToCart merges quantities when the product is already in the cart. Stock
// is only checked, not reserved; reservation happens at checkout.
func (s *CartService) AddToCart(ctx context.Context, userID, productID uint64, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, domain.Validationf("quantity must be greater than 0")
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
	if product.Quantity < quantity {
		return nil, domain.Conflictf("not enough stock for product: %s", product.Name)
	}

	item, err := s.carts.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		item = &domain.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
		if err := s.carts.Create(ctx, item); err != nil {
			return nil, err
		}
		return item, nil
	}

	item.Quantity += quantity
	if err := s.carts.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateQuantity sets an absolute quantity; zero or below removes the item.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID uint64, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, s.RemoveFromCart(ctx, userID, productID)
	}

	item, err := s.carts.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFoundf("cart item not found")
	}

	if quantity > item.Quantity {
		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.NotFoundf("product not found with id: %d", productID)
		}
		if product.Quantity < quantity {
			return nil, domain.Conflictf("not enough stock for product: %s", product.Name)
		}
	}

	item.Quantity = quantity
	if err := s.carts.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID uint64) error {
	item, err := s.carts.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.NotFoundf("cart item not found")
	}
	return s.carts.Delete(ctx, item.ID)
}

func (s *CartService) ClearCart(ctx context.Context, userID uint64) error {
	return s.carts.DeleteByUserID(ctx, userID)
}
