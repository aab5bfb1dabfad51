package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"product-management/internal/domain"
	"product-management/internal/mocks"
)

type paymentFixture struct {
	payments *mocks.MockPaymentRepository
	orders   *mocks.MockOrderRepository
	svc      *PaymentService
}

func newPaymentFixture() *paymentFixture {
	f := &paymentFixture{
		payments: new(mocks.MockPaymentRepository),
		orders:   new(mocks.MockOrderRepository),
	}
	f.svc = NewPaymentService(f.payments, f.orders, mocks.TxManagerStub{})
	return f
}

func TestCreatePaymentDefaultsToPending(t *testing.T) {
	f := newPaymentFixture()

	f.orders.On("FindByID", mock.Anything, uint64(1)).
		Return(&domain.Order{ID: 1, Status: domain.OrderPending}, nil)
	f.payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	payment, err := f.svc.Create(context.Background(), 1, decimal.NewFromInt(50), "card", "")

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, payment.Status)
	assert.Nil(t, payment.PaidAt)
}

func TestCreatePaymentRejectsNegativeAmount(t *testing.T) {
	f := newPaymentFixture()

	_, err := f.svc.Create(context.Background(), 1, decimal.NewFromInt(-1), "card", "")

	assert.True(t, domain.IsValidation(err))
}

func TestCreatePaymentUnknownOrder(t *testing.T) {
	f := newPaymentFixture()

	f.orders.On("FindByID", mock.Anything, uint64(9)).Return(nil, nil)

	_, err := f.svc.Create(context.Background(), 9, decimal.NewFromInt(50), "card", "")

	assert.True(t, domain.IsNotFound(err))
}

func TestUpdatePaymentStatusStampsPaidAtOnce(t *testing.T) {
	f := newPaymentFixture()

	first := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	payment := &domain.Payment{ID: 3, Status: domain.PaymentPaid, PaidAt: &first}
	f.payments.On("FindByID", mock.Anything, uint64(3)).Return(payment, nil)
	f.payments.On("Save", mock.Anything, payment).Return(nil)

	updated, err := f.svc.UpdateStatus(context.Background(), 3, "paid")

	assert.NoError(t, err)
	assert.Equal(t, &first, updated.PaidAt)
}

func TestUpdatePaymentStatusSetsPaidAt(t *testing.T) {
	f := newPaymentFixture()

	payment := &domain.Payment{ID: 3, Status: domain.PaymentPending}
	f.payments.On("FindByID", mock.Anything, uint64(3)).Return(payment, nil)
	f.payments.On("Save", mock.Anything, payment).Return(nil)

	updated, err := f.svc.UpdateStatus(context.Background(), 3, "paid")

	assert.NoError(t, err)
	assert.NotNil(t, updated.PaidAt)
}

func TestUpdatePaymentStatusStrictParse(t *testing.T) {
	f := newPaymentFixture()

	_, err := f.svc.UpdateStatus(context.Background(), 3, "settled")

	assert.True(t, domain.IsValidation(err))
	f.payments.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestProcessPaidAdvancesOrder(t *testing.T) {
	f := newPaymentFixture()

	order := &domain.Order{ID: 1, OrderCode: "ORDX", Status: domain.OrderConfirmed}
	f.orders.On("FindByID", mock.Anything, uint64(1)).Return(order, nil)
	f.payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
	f.orders.On("Save", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
		return o.Status == domain.OrderPaid
	})).Return(nil)

	payment, err := f.svc.Process(context.Background(), 1, decimal.NewFromInt(50), "card", "paid")

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, payment.Status)
	assert.NotNil(t, payment.PaidAt)
	f.orders.AssertExpectations(t)
}

func TestProcessPaidRejectsIllegalOrderTransition(t *testing.T) {
	f := newPaymentFixture()

	order := &domain.Order{ID: 1, OrderCode: "ORDX", Status: domain.OrderDelivered}
	f.orders.On("FindByID", mock.Anything, uint64(1)).Return(order, nil)
	f.payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	_, err := f.svc.Process(context.Background(), 1, decimal.NewFromInt(50), "card", "paid")

	assert.True(t, domain.IsConflict(err))
	f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProcessPendingLeavesOrderAlone(t *testing.T) {
	f := newPaymentFixture()

	order := &domain.Order{ID: 1, OrderCode: "ORDX", Status: domain.OrderPending}
	f.orders.On("FindByID", mock.Anything, uint64(1)).Return(order, nil)
	f.payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	payment, err := f.svc.Process(context.Background(), 1, decimal.NewFromInt(50), "card", "")

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, payment.Status)
	f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
