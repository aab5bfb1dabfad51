package services

import (
	"context"
	"strings"
	"testing"

	sqldriver "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"product-management/internal/domain"
	"product-management/internal/mocks"
)

type orderFixture struct {
	orders    *mocks.MockOrderRepository
	products  *mocks.MockProductRepository
	payments  *mocks.MockPaymentRepository
	users     *mocks.MockUserRepository
	publisher *mocks.MockPublisher
	cache     *mocks.ProductCacheStub
	svc       *OrderService
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		orders:    new(mocks.MockOrderRepository),
		products:  new(mocks.MockProductRepository),
		payments:  new(mocks.MockPaymentRepository),
		users:     new(mocks.MockUserRepository),
		publisher: new(mocks.MockPublisher),
		cache:     new(mocks.ProductCacheStub),
	}
	f.svc = NewOrderService(f.orders, f.products, f.payments, f.users, mocks.TxManagerStub{}, f.publisher, f.cache)
	return f
}

func testProduct(id uint64, price int64, quantity int) *domain.Product {
	return &domain.Product{
		ID:       id,
		Name:     "Widget",
		Price:    decimal.NewFromInt(price),
		Quantity: quantity,
		Status:   domain.ProductActive,
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	f.products.On("FindByID", mock.Anything, uint64(1)).Return(testProduct(1, 10, 5), nil)
	f.products.On("AdjustStock", mock.Anything, uint64(1), -2).Return(true, nil)
	f.orders.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Order).ID = 42
		}).
		Return(nil)
	f.payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
	f.publisher.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil)

	result, err := f.svc.PlaceOrder(ctx, PlaceOrderInput{
		CustomerName:  "Jane Doe",
		Email:         "jane@example.com",
		Address:       "1 Main St",
		PaymentMethod: "card",
		Items:         []OrderItemInput{{ProductID: 1, Quantity: 2}},
	})

	assert.NoError(t, err)
	assert.False(t, result.SideEffects.Failed())
	assert.Equal(t, domain.OrderPending, result.Order.Status)
	assert.True(t, result.Order.TotalAmount.Equal(decimal.NewFromInt(20)))
	assert.Len(t, result.Order.Lines, 1)
	assert.True(t, result.Order.Lines[0].Subtotal.Equal(decimal.NewFromInt(20)))
	assert.True(t, strings.HasPrefix(result.Order.OrderCode, "ORD"))
	assert.Len(t, result.Order.Payments, 1)
	assert.Equal(t, domain.PaymentPending, result.Order.Payments[0].Status)
	assert.Equal(t, []uint64{1}, f.cache.Invalidated)
	f.products.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.payments.AssertExpectations(t)
}

func TestPlaceOrderSecondLineFailureAbortsWholeOrder(t *testing.T) {
	f := newOrderFixture()

	f.products.On("FindByID", mock.Anything, uint64(1)).Return(testProduct(1, 10, 5), nil)
	f.products.On("FindByID", mock.Anything, uint64(2)).Return(testProduct(2, 20, 1), nil)
	f.products.On("AdjustStock", mock.Anything, uint64(1), -2).Return(true, nil)
	f.products.On("AdjustStock", mock.Anything, uint64(2), -4).Return(false, nil)

	_, err := f.svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName:  "Jane Doe",
		Email:         "jane@example.com",
		Address:       "1 Main St",
		PaymentMethod: "card",
		Items: []OrderItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 4},
		},
	})

	assert.True(t, domain.IsConflict(err))
	f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, f.cache.Invalidated)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	f := newOrderFixture()

	f.products.On("FindByID", mock.Anything, uint64(1)).Return(testProduct(1, 10, 1), nil)
	f.products.On("AdjustStock", mock.Anything, uint64(1), -3).Return(false, nil)

	_, err := f.svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName:  "Jane Doe",
		Email:         "jane@example.com",
		Address:       "1 Main St",
		PaymentMethod: "card",
		Items:         []OrderItemInput{{ProductID: 1, Quantity: 3}},
	})

	assert.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.Contains(t, err.Error(), "insufficient stock")
	f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	f := newOrderFixture()

	f.products.On("FindByID", mock.Anything, uint64(9)).Return(nil, nil)

	_, err := f.svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName:  "Jane Doe",
		Email:         "jane@example.com",
		Address:       "1 Main St",
		PaymentMethod: "card",
		Items:         []OrderItemInput{{ProductID: 9, Quantity: 1}},
	})

	assert.True(t, domain.IsNotFound(err))
}

func TestPlaceOrderValidatesQuantity(t *testing.T) {
	f := newOrderFixture()

	_, err := f.svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName:  "Jane Doe",
		Email:         "jane@example.com",
		Address:       "1 Main St",
		PaymentMethod: "card",
		Items:         []OrderItemInput{{ProductID: 1, Quantity: 0}},
	})
	assert.True(t, domain.IsValidation(err))

	_, err = f.svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName:  "Jane Doe",
		Email:         "jane@example.com",
		Address:       "1 Main St",
		PaymentMethod: "card",
	})
	assert.True(t, domain.IsValidation(err))
}

func TestPlaceOrderRetriesOnDeadlock(t *testing.T) {
	f := newOrderFixture()

	f.products.On("FindByID", mock.Anything, uint64(1)).Return(testProduct(1, 10, 5), nil)
	f.products.On("AdjustStock", mock.Anything, uint64(1), -1).
		Return(false, &sqldriver.MySQLError{Number: 1213}).Twice()
	f.products.On("AdjustStock", mock.Anything, uint64(1), -1).Return(true, nil).Once()
	f.orders.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	f.payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
	f.publisher.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil)

	result, err := f.svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName:  "Jane Doe",
		Email:         "jane@example.com",
		Address:       "1 Main St",
		PaymentMethod: "card",
		Items:         []OrderItemInput{{ProductID: 1, Quantity: 1}},
	})

	assert.NoError(t, err)
	assert.NotNil(t, result.Order)
	f.products.AssertNumberOfCalls(t, "AdjustStock", 3)
}

func TestPlaceOrderGivesUpAfterBoundedRetries(t *testing.T) {
	f := newOrderFixture()

	f.products.On("FindByID", mock.Anything, uint64(1)).Return(testProduct(1, 10, 5), nil)
	f.products.On("AdjustStock", mock.Anything, uint64(1), -1).
		Return(false, &sqldriver.MySQLError{Number: 1205})

	_, err := f.svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName:  "Jane Doe",
		Email:         "jane@example.com",
		Address:       "1 Main St",
		PaymentMethod: "card",
		Items:         []OrderItemInput{{ProductID: 1, Quantity: 1}},
	})

	assert.Error(t, err)
	f.products.AssertNumberOfCalls(t, "AdjustStock", placeOrderAttempts)
}

func TestPlaceOrderReportsPaymentFailureAsSideEffect(t *testing.T) {
	f := newOrderFixture()

	f.products.On("FindByID", mock.Anything, uint64(1)).Return(testProduct(1, 10, 5), nil)
	f.products.On("AdjustStock", mock.Anything, uint64(1), -1).Return(true, nil)
	f.orders.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	f.payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).
		Return(assert.AnError)
	f.publisher.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil)

	result, err := f.svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerName:  "Jane Doe",
		Email:         "jane@example.com",
		Address:       "1 Main St",
		PaymentMethod: "card",
		Items:         []OrderItemInput{{ProductID: 1, Quantity: 1}},
	})

	assert.NoError(t, err)
	assert.True(t, result.SideEffects.Failed())
	assert.Equal(t, "payment-auto-create", result.SideEffects[0].Name)
	assert.Empty(t, result.Order.Payments)
}

func TestUpdateStatusValidTransition(t *testing.T) {
	f := newOrderFixture()

	order := &domain.Order{ID: 7, OrderCode: "ORDX", Status: domain.OrderPending}
	f.orders.On("FindByID", mock.Anything, uint64(7)).Return(order, nil)
	f.orders.On("Save", mock.Anything, order).Return(nil)
	f.publisher.On("Publish", mock.Anything, "order.status_changed", mock.Anything).Return(nil)

	result, err := f.svc.UpdateStatus(context.Background(), 7, "confirmed")

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderConfirmed, result.Order.Status)
}

func TestUpdateStatusRejectsSkippedStep(t *testing.T) {
	f := newOrderFixture()

	order := &domain.Order{ID: 7, OrderCode: "ORDX", Status: domain.OrderPending}
	f.orders.On("FindByID", mock.Anything, uint64(7)).Return(order, nil)

	_, err := f.svc.UpdateStatus(context.Background(), 7, "shipped")

	assert.True(t, domain.IsConflict(err))
	f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	f := newOrderFixture()

	_, err := f.svc.UpdateStatus(context.Background(), 7, "done")

	assert.True(t, domain.IsValidation(err))
}

func TestUpdateStatusPaidCascadesPendingPayments(t *testing.T) {
	f := newOrderFixture()

	order := &domain.Order{ID: 7, OrderCode: "ORDX", Status: domain.OrderConfirmed}
	pending := domain.Payment{ID: 3, OrderID: 7, Status: domain.PaymentPending}
	f.orders.On("FindByID", mock.Anything, uint64(7)).Return(order, nil)
	f.orders.On("Save", mock.Anything, order).Return(nil)
	f.payments.On("FindByOrderID", mock.Anything, uint64(7)).Return([]domain.Payment{pending}, nil)
	f.payments.On("Save", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.Status == domain.PaymentPaid && p.PaidAt != nil
	})).Return(nil)
	f.publisher.On("Publish", mock.Anything, "order.status_changed", mock.Anything).Return(nil)

	result, err := f.svc.UpdateStatus(context.Background(), 7, "paid")

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderPaid, result.Order.Status)
	assert.False(t, result.SideEffects.Failed())
	f.payments.AssertExpectations(t)
}

func TestCancelRestoresStock(t *testing.T) {
	f := newOrderFixture()

	order := &domain.Order{
		ID:        7,
		OrderCode: "ORDX",
		Status:    domain.OrderPending,
		Lines: []domain.OrderLine{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	}
	f.orders.On("FindByID", mock.Anything, uint64(7)).Return(order, nil)
	f.products.On("AdjustStock", mock.Anything, uint64(1), 2).Return(true, nil)
	f.products.On("AdjustStock", mock.Anything, uint64(2), 1).Return(true, nil)
	f.orders.On("Save", mock.Anything, order).Return(nil)
	f.publisher.On("Publish", mock.Anything, "order.status_changed", mock.Anything).Return(nil)

	result, err := f.svc.Cancel(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderCancelled, result.Order.Status)
	assert.Equal(t, []uint64{1, 2}, f.cache.Invalidated)
	f.products.AssertExpectations(t)
}

func TestCancelRejectsShippedOrder(t *testing.T) {
	f := newOrderFixture()

	order := &domain.Order{ID: 7, OrderCode: "ORDX", Status: domain.OrderShipped}
	f.orders.On("FindByID", mock.Anything, uint64(7)).Return(order, nil)

	_, err := f.svc.Cancel(context.Background(), 7)

	assert.True(t, domain.IsConflict(err))
	f.products.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelTwiceFails(t *testing.T) {
	f := newOrderFixture()

	order := &domain.Order{ID: 7, OrderCode: "ORDX", Status: domain.OrderCancelled}
	f.orders.On("FindByID", mock.Anything, uint64(7)).Return(order, nil)

	_, err := f.svc.Cancel(context.Background(), 7)

	assert.True(t, domain.IsConflict(err))
}

func TestGenerateOrderCodeShape(t *testing.T) {
	a := generateOrderCode()
	b := generateOrderCode()

	assert.True(t, strings.HasPrefix(a, "ORD"))
	assert.Len(t, a, 3+14+6)
	assert.NotEqual(t, a, b)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, isTransient(&sqldriver.MySQLError{Number: 1213}))
	assert.True(t, isTransient(&sqldriver.MySQLError{Number: 1205}))
	assert.False(t, isTransient(&sqldriver.MySQLError{Number: 1062}))
	assert.False(t, isTransient(assert.AnError))
}
