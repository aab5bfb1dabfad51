package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

type PaymentService struct {
	payments repository.PaymentRepository
	orders   repository.OrderRepository
	tx       repository.TxManager
}

func NewPaymentService(payments repository.PaymentRepository, orders repository.OrderRepository, tx repository.TxManager) *PaymentService {
	return &PaymentService{payments: payments, orders: orders, tx: tx}
}

// Create attaches a new payment row to an existing order. Status defaults to
// pending when empty.
func (s *PaymentService) Create(ctx context.Context, orderID uint64, amount decimal.Decimal, method, statusStr string) (*domain.Payment, error) {
	status := domain.PaymentPending
	if statusStr != "" {
		var err error
		status, err = domain.ParsePaymentStatus(statusStr)
		if err != nil {
			return nil, err
		}
	}
	if amount.IsNegative() {
		return nil, domain.Validationf("payment amount cannot be negative")
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NotFoundf("order not found with id: %d", orderID)
	}

	payment := &domain.Payment{
		OrderID:       orderID,
		Amount:        amount,
		PaymentMethod: method,
		Status:        status,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// UpdateStatus sets the payment status. The paid-at timestamp is stamped on
// the first transition to paid and left untouched when paid is re-applied.
func (s *PaymentService) UpdateStatus(ctx context.Context, id uint64, statusStr string) (*domain.Payment, error) {
	status, err := domain.ParsePaymentStatus(statusStr)
	if err != nil {
		return nil, err
	}

	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.NotFoundf("payment not found with id: %d", id)
	}

	payment.Status = status
	if status == domain.PaymentPaid && payment.PaidAt == nil {
		now := time.Now()
		payment.PaidAt = &now
	}
	if err := s.payments.Save(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Process records a payment and, when it settles immediately, advances the
// order to paid in the same transaction. The order transition must be legal
// under the lifecycle; an order that cannot move to paid rejects the call.
func (s *PaymentService) Process(ctx context.Context, orderID uint64, amount decimal.Decimal, method, statusStr string) (*domain.Payment, error) {
	status := domain.PaymentPending
	if statusStr != "" {
		var err error
		status, err = domain.ParsePaymentStatus(statusStr)
		if err != nil {
			return nil, err
		}
	}
	if amount.IsNegative() {
		return nil, domain.Validationf("payment amount cannot be negative")
	}

	var payment *domain.Payment
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		order, err := s.orders.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.NotFoundf("order not found with id: %d", orderID)
		}

		payment = &domain.Payment{
			OrderID:       orderID,
			Amount:        amount,
			PaymentMethod: method,
			Status:        status,
		}
		if status == domain.PaymentPaid {
			now := time.Now()
			payment.PaidAt = &now
		}
		if err := s.payments.Create(ctx, payment); err != nil {
			return err
		}

		if status == domain.PaymentPaid && order.Status != domain.OrderPaid {
			if !order.Status.CanTransitionTo(domain.OrderPaid) {
				return domain.Conflictf("cannot move order %s from %s to %s", order.OrderCode, order.Status, domain.OrderPaid)
			}
			order.Status = domain.OrderPaid
			return s.orders.Save(ctx, order)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) GetByID(ctx context.Context, id uint64) (*domain.Payment, error) {
	p, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFoundf("payment not found with id: %d", id)
	}
	return p, nil
}

func (s *PaymentService) GetByOrderID(ctx context.Context, orderID uint64) ([]domain.Payment, error) {
	return s.payments.FindByOrderID(ctx, orderID)
}

func (s *PaymentService) GetByUserID(ctx context.Context, userID uint64) ([]domain.Payment, error) {
	return s.payments.FindByUserID(ctx, userID)
}

func (s *PaymentService) GetAll(ctx context.Context) ([]domain.Payment, error) {
	return s.payments.FindAll(ctx)
}
