package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"product-management/internal/domain"
	"product-management/internal/mocks"
)

type cartFixture struct {
	carts    *mocks.MockCartRepository
	users    *mocks.MockUserRepository
	products *mocks.MockProductRepository
	svc      *CartService
}

func newCartFixture() *cartFixture {
	f := &cartFixture{
		carts:    new(mocks.MockCartRepository),
		users:    new(mocks.MockUserRepository),
		products: new(mocks.MockProductRepository),
	}
	f.svc = NewCartService(f.carts, f.users, f.products)
	return f
}

func activeUser(id uint64) *domain.User {
	return &domain.User{ID: id, Status: domain.UserActive}
}

func TestAddToCartCreatesItem(t *testing.T) {
	f := newCartFixture()

	f.users.On("FindByID", mock.Anything, uint64(1)).Return(activeUser(1), nil)
	f.products.On("FindByID", mock.Anything, uint64(2)).Return(testProduct(2, 10, 5), nil)
	f.carts.On("FindByUserAndProduct", mock.Anything, uint64(1), uint64(2)).Return(nil, nil)
	f.carts.On("Create", mock.Anything, mock.AnythingOfType("*domain.CartItem")).Return(nil)

	item, err := f.svc.AddToCart(context.Background(), 1, 2, 3)

	assert.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
}

func TestAddToCartMergesQuantities(t *testing.T) {
	f := newCartFixture()

	f.users.On("FindByID", mock.Anything, uint64(1)).Return(activeUser(1), nil)
	f.products.On("FindByID", mock.Anything, uint64(2)).Return(testProduct(2, 10, 10), nil)
	f.carts.On("FindByUserAndProduct", mock.Anything, uint64(1), uint64(2)).
		Return(&domain.CartItem{ID: 9, UserID: 1, ProductID: 2, Quantity: 2}, nil)
	f.carts.On("Save", mock.Anything, mock.AnythingOfType("*domain.CartItem")).Return(nil)

	item, err := f.svc.AddToCart(context.Background(), 1, 2, 3)

	assert.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
}

func TestAddToCartInsufficientStock(t *testing.T) {
	f := newCartFixture()

	f.users.On("FindByID", mock.Anything, uint64(1)).Return(activeUser(1), nil)
	f.products.On("FindByID", mock.Anything, uint64(2)).Return(testProduct(2, 10, 1), nil)

	_, err := f.svc.AddToCart(context.Background(), 1, 2, 3)

	assert.True(t, domain.IsConflict(err))
	f.carts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	f := newCartFixture()

	_, err := f.svc.AddToCart(context.Background(), 1, 2, 0)

	assert.True(t, domain.IsValidation(err))
}

func TestUpdateQuantityZeroRemovesItem(t *testing.T) {
	f := newCartFixture()

	f.carts.On("FindByUserAndProduct", mock.Anything, uint64(1), uint64(2)).
		Return(&domain.CartItem{ID: 9, UserID: 1, ProductID: 2, Quantity: 2}, nil)
	f.carts.On("Delete", mock.Anything, uint64(9)).Return(nil)

	item, err := f.svc.UpdateQuantity(context.Background(), 1, 2, 0)

	assert.NoError(t, err)
	assert.Nil(t, item)
	f.carts.AssertCalled(t, "Delete", mock.Anything, uint64(9))
}

func TestUpdateQuantityChecksStockOnIncrease(t *testing.T) {
	f := newCartFixture()

	f.carts.On("FindByUserAndProduct", mock.Anything, uint64(1), uint64(2)).
		Return(&domain.CartItem{ID: 9, UserID: 1, ProductID: 2, Quantity: 2}, nil)
	f.products.On("FindByID", mock.Anything, uint64(2)).Return(testProduct(2, 10, 3), nil)

	_, err := f.svc.UpdateQuantity(context.Background(), 1, 2, 5)

	assert.True(t, domain.IsConflict(err))
	f.carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRemoveFromCartMissingItem(t *testing.T) {
	f := newCartFixture()

	f.carts.On("FindByUserAndProduct", mock.Anything, uint64(1), uint64(2)).Return(nil, nil)

	err := f.svc.RemoveFromCart(context.Background(), 1, 2)

	assert.True(t, domain.IsNotFound(err))
}
