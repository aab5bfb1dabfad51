package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

// TxManagerStub runs the function inline so service tests exercise the
// transactional logic without a database.
type TxManagerStub struct{}

func (TxManagerStub) InTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// ProductCacheStub records which product entries were evicted.
type ProductCacheStub struct {
	Invalidated []uint64
}

func (s *ProductCacheStub) InvalidateProduct(_ context.Context, id uint64) {
	s.Invalidated = append(s.Invalidated, id)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, p *domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Save(ctx context.Context, p *domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	var p *domain.Product
	if v := args.Get(0); v != nil {
		p = v.(*domain.Product)
	}
	return p, args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	var out []domain.Product
	if v := args.Get(0); v != nil {
		out = v.([]domain.Product)
	}
	return out, args.Error(1)
}

func (m *MockProductRepository) FindByStatus(ctx context.Context, status domain.ProductStatus) ([]domain.Product, error) {
	args := m.Called(ctx, status)
	var out []domain.Product
	if v := args.Get(0); v != nil {
		out = v.([]domain.Product)
	}
	return out, args.Error(1)
}

func (m *MockProductRepository) FindByCategoryID(ctx context.Context, categoryID uint64) ([]domain.Product, error) {
	args := m.Called(ctx, categoryID)
	var out []domain.Product
	if v := args.Get(0); v != nil {
		out = v.([]domain.Product)
	}
	return out, args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, keyword string) ([]domain.Product, error) {
	args := m.Called(ctx, keyword)
	var out []domain.Product
	if v := args.Get(0); v != nil {
		out = v.([]domain.Product)
	}
	return out, args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) FindLowStock(ctx context.Context, threshold, limit int) ([]domain.Product, error) {
	args := m.Called(ctx, threshold, limit)
	var out []domain.Product
	if v := args.Get(0); v != nil {
		out = v.([]domain.Product)
	}
	return out, args.Error(1)
}

func (m *MockProductRepository) AdjustStock(ctx context.Context, id uint64, delta int) (bool, error) {
	args := m.Called(ctx, id, delta)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *domain.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *domain.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	var o *domain.Order
	if v := args.Get(0); v != nil {
		o = v.(*domain.Order)
	}
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindByCode(ctx context.Context, code string) (*domain.Order, error) {
	args := m.Called(ctx, code)
	var o *domain.Order
	if v := args.Get(0); v != nil {
		o = v.(*domain.Order)
	}
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	var out []domain.Order
	if v := args.Get(0); v != nil {
		out = v.([]domain.Order)
	}
	return out, args.Error(1)
}

func (m *MockOrderRepository) FindByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	args := m.Called(ctx, email)
	var out []domain.Order
	if v := args.Get(0); v != nil {
		out = v.([]domain.Order)
	}
	return out, args.Error(1)
}

func (m *MockOrderRepository) FindByUserID(ctx context.Context, userID uint64) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	var out []domain.Order
	if v := args.Get(0); v != nil {
		out = v.([]domain.Order)
	}
	return out, args.Error(1)
}

func (m *MockOrderRepository) FindByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	args := m.Called(ctx, status)
	var out []domain.Order
	if v := args.Get(0); v != nil {
		out = v.([]domain.Order)
	}
	return out, args.Error(1)
}

func (m *MockOrderRepository) FindRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	args := m.Called(ctx, limit)
	var out []domain.Order
	if v := args.Get(0); v != nil {
		out = v.([]domain.Order)
	}
	return out, args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) SumTotalByStatuses(ctx context.Context, statuses []domain.OrderStatus) (decimal.Decimal, error) {
	args := m.Called(ctx, statuses)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockOrderRepository) TopProducts(ctx context.Context, limit int) ([]repository.TopProduct, error) {
	args := m.Called(ctx, limit)
	var out []repository.TopProduct
	if v := args.Get(0); v != nil {
		out = v.([]repository.TopProduct)
	}
	return out, args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) Save(ctx context.Context, p *domain.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uint64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	var p *domain.Payment
	if v := args.Get(0); v != nil {
		p = v.(*domain.Payment)
	}
	return p, args.Error(1)
}

func (m *MockPaymentRepository) FindByOrderID(ctx context.Context, orderID uint64) ([]domain.Payment, error) {
	args := m.Called(ctx, orderID)
	var out []domain.Payment
	if v := args.Get(0); v != nil {
		out = v.([]domain.Payment)
	}
	return out, args.Error(1)
}

func (m *MockPaymentRepository) FindByUserID(ctx context.Context, userID uint64) ([]domain.Payment, error) {
	args := m.Called(ctx, userID)
	var out []domain.Payment
	if v := args.Get(0); v != nil {
		out = v.([]domain.Payment)
	}
	return out, args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	var out []domain.Payment
	if v := args.Get(0); v != nil {
		out = v.([]domain.Payment)
	}
	return out, args.Error(1)
}

type MockInventoryLogRepository struct {
	mock.Mock
}

func (m *MockInventoryLogRepository) Create(ctx context.Context, l *domain.InventoryLog) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockInventoryLogRepository) FindAll(ctx context.Context) ([]domain.InventoryLog, error) {
	args := m.Called(ctx)
	var out []domain.InventoryLog
	if v := args.Get(0); v != nil {
		out = v.([]domain.InventoryLog)
	}
	return out, args.Error(1)
}

func (m *MockInventoryLogRepository) FindByProductID(ctx context.Context, productID uint64) ([]domain.InventoryLog, error) {
	args := m.Called(ctx, productID)
	var out []domain.InventoryLog
	if v := args.Get(0); v != nil {
		out = v.([]domain.InventoryLog)
	}
	return out, args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) Save(ctx context.Context, c *domain.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uint64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	var c *domain.Category
	if v := args.Get(0); v != nil {
		c = v.(*domain.Category)
	}
	return c, args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	var out []domain.Category
	if v := args.Get(0); v != nil {
		out = v.([]domain.Category)
	}
	return out, args.Error(1)
}

func (m *MockCategoryRepository) NameTaken(ctx context.Context, name string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	args := m.Called(ctx, id)
	var u *domain.User
	if v := args.Get(0); v != nil {
		u = v.(*domain.User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var out []domain.User
	if v := args.Get(0); v != nil {
		out = v.([]domain.User)
	}
	return out, args.Error(1)
}

func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	args := m.Called(ctx, identifier)
	var u *domain.User
	if v := args.Get(0); v != nil {
		u = v.(*domain.User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) EmailTaken(ctx context.Context, email string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UsernameTaken(ctx context.Context, username string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, username, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByUserID(ctx context.Context, userID uint64) ([]domain.CartItem, error) {
	args := m.Called(ctx, userID)
	var out []domain.CartItem
	if v := args.Get(0); v != nil {
		out = v.([]domain.CartItem)
	}
	return out, args.Error(1)
}

func (m *MockCartRepository) FindByUserAndProduct(ctx context.Context, userID, productID uint64) (*domain.CartItem, error) {
	args := m.Called(ctx, userID, productID)
	var item *domain.CartItem
	if v := args.Get(0); v != nil {
		item = v.(*domain.CartItem)
	}
	return item, args.Error(1)
}

func (m *MockCartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCartRepository) Save(ctx context.Context, item *domain.CartItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCartRepository) DeleteByUserID(ctx context.Context, userID uint64) error {
	return m.Called(ctx, userID).Error(0)
}

type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) FindByUserID(ctx context.Context, userID uint64) ([]domain.Wishlist, error) {
	args := m.Called(ctx, userID)
	var out []domain.Wishlist
	if v := args.Get(0); v != nil {
		out = v.([]domain.Wishlist)
	}
	return out, args.Error(1)
}

func (m *MockWishlistRepository) FindByUserAndProduct(ctx context.Context, userID, productID uint64) (*domain.Wishlist, error) {
	args := m.Called(ctx, userID, productID)
	var w *domain.Wishlist
	if v := args.Get(0); v != nil {
		w = v.(*domain.Wishlist)
	}
	return w, args.Error(1)
}

func (m *MockWishlistRepository) Create(ctx context.Context, w *domain.Wishlist) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWishlistRepository) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) FindByID(ctx context.Context, id uint64) (*domain.ProductRating, error) {
	args := m.Called(ctx, id)
	var r *domain.ProductRating
	if v := args.Get(0); v != nil {
		r = v.(*domain.ProductRating)
	}
	return r, args.Error(1)
}

func (m *MockRatingRepository) FindByProductID(ctx context.Context, productID uint64) ([]domain.ProductRating, error) {
	args := m.Called(ctx, productID)
	var out []domain.ProductRating
	if v := args.Get(0); v != nil {
		out = v.([]domain.ProductRating)
	}
	return out, args.Error(1)
}

func (m *MockRatingRepository) FindByUserID(ctx context.Context, userID uint64) ([]domain.ProductRating, error) {
	args := m.Called(ctx, userID)
	var out []domain.ProductRating
	if v := args.Get(0); v != nil {
		out = v.([]domain.ProductRating)
	}
	return out, args.Error(1)
}

func (m *MockRatingRepository) Create(ctx context.Context, r *domain.ProductRating) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRatingRepository) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}
