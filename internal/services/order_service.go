package services

import (
	"context"
	"errors"
	"strings"
	"time"

	sqldriver "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"product-management/internal/domain"
	rabbit "product-management/internal/infra/rabbitmq"
	"product-management/internal/repository"
)

// placeOrderAttempts bounds retries of the placement transaction when MySQL
// reports deadlock or lock-wait timeout on the stock decrement.
const placeOrderAttempts = 3

type OrderItemInput struct {
	ProductID uint64
	Quantity  int
}

type PlaceOrderInput struct {
	CustomerName  string
	Email         string
	Phone         string
	Address       string
	PaymentMethod string
	UserID        *uint64
	Items         []OrderItemInput
}

// OrderResult pairs the committed order with any best-effort side effects
// that failed afterwards (payment auto-creation, event publishing, payment
// cascade).
type OrderResult struct {
	Order       *domain.Order
	SideEffects SideEffects
}

type OrderService struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	payments  repository.PaymentRepository
	users     repository.UserRepository
	tx        repository.TxManager
	publisher rabbit.PublisherInterface
	cache     ProductCacheInvalidator
}

func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	payments repository.PaymentRepository,
	users repository.UserRepository,
	tx repository.TxManager,
	publisher rabbit.PublisherInterface,
	cache ProductCacheInvalidator,
) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		payments:  payments,
		users:     users,
		tx:        tx,
		publisher: publisher,
		cache:     cache,
	}
}

// PlaceOrder checks out a list of items in one transaction: every line
// decrements stock via a conditional atomic update, so either all lines
// reserve stock or none do. After commit a pending payment row and an
// order.created event are attempted best-effort.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*OrderResult, error) {
	if len(in.Items) == 0 {
		return nil, domain.Validationf("order must contain at least one item")
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, domain.Validationf("quantity must be positive for product %d", it.ProductID)
		}
	}
	if in.UserID != nil {
		u, err := s.users.FindByID(ctx, *in.UserID)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, domain.NotFoundf("user not found with id: %d", *in.UserID)
		}
	}

	var order *domain.Order
	var err error
	for attempt := 1; ; attempt++ {
		order, err = s.placeOnce(ctx, in)
		if err == nil || !isTransient(err) || attempt == placeOrderAttempts {
			break
		}
		logrus.WithFields(logrus.Fields{
			"attempt": attempt,
			"email":   in.Email,
		}).Warn("order placement hit database contention, retrying")
	}
	if err != nil {
		return nil, err
	}
	for _, it := range in.Items {
		s.cache.InvalidateProduct(ctx, it.ProductID)
	}

	result := &OrderResult{Order: order}

	payment := &domain.Payment{
		OrderID:       order.ID,
		Amount:        order.TotalAmount,
		PaymentMethod: order.PaymentMethod,
		Status:        domain.PaymentPending,
	}
	if perr := s.payments.Create(ctx, payment); perr != nil {
		logrus.WithError(perr).WithField("order_id", order.ID).Error("failed to create payment record")
		result.SideEffects = append(result.SideEffects, SideEffect{Name: "payment-auto-create", Err: perr})
	} else {
		order.Payments = append(order.Payments, *payment)
	}

	evt := domain.OrderCreatedEvent{
		OrderID:     order.ID,
		OrderCode:   order.OrderCode,
		Email:       order.Email,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	}
	if perr := s.publisher.Publish(ctx, "order.created", evt); perr != nil {
		logrus.WithError(perr).WithField("order_id", order.ID).Warn("failed to publish order.created event")
		result.SideEffects = append(result.SideEffects, SideEffect{Name: "order-created-event", Err: perr})
	}

	return result, nil
}

func (s *OrderService) placeOnce(ctx context.Context, in PlaceOrderInput) (*domain.Order, error) {
	order := &domain.Order{
		OrderCode:     generateOrderCode(),
		CustomerName:  in.CustomerName,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		UserID:        in.UserID,
		PaymentMethod: in.PaymentMethod,
		Status:        domain.OrderPending,
	}

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		total := decimal.Zero
		lines := make([]domain.OrderLine, 0, len(in.Items))
		for _, it := range in.Items {
			product, err := s.products.FindByID(ctx, it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.NotFoundf("product not found with id: %d", it.ProductID)
			}

			ok, err := s.products.AdjustStock(ctx, it.ProductID, -it.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return domain.Conflictf("insufficient stock for product: %s", product.Name)
			}

			subtotal := product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
			lines = append(lines, domain.OrderLine{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     product.Price,
				Subtotal:  subtotal,
			})
			total = total.Add(subtotal)
		}

		order.TotalAmount = total
		order.Lines = lines
		return s.orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus advances the order through its lifecycle. Transitions to paid
// or delivered cascade pending payments to paid; cancellation is delegated to
// Cancel so stock restoration and the status flip share a transaction.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint64, statusStr string) (*OrderResult, error) {
	next, err := domain.ParseOrderStatus(statusStr)
	if err != nil {
		return nil, err
	}
	if next == domain.OrderCancelled {
		return s.Cancel(ctx, id)
	}

	var order *domain.Order
	var prev domain.OrderStatus
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orders.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.NotFoundf("order not found with id: %d", id)
		}
		prev = order.Status
		if !order.Status.CanTransitionTo(next) {
			return domain.Conflictf("cannot move order %s from %s to %s", order.OrderCode, order.Status, next)
		}
		order.Status = next
		return s.orders.Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	result := &OrderResult{Order: order}
	if next == domain.OrderPaid || next == domain.OrderDelivered {
		result.SideEffects = append(result.SideEffects, s.settlePendingPayments(ctx, order.ID)...)
	}
	s.publishStatusChange(ctx, order, prev, result)
	return result, nil
}

// Cancel restores every line's reserved quantity and flips the status in one
// transaction. Orders already shipped, delivered, or cancelled are rejected.
func (s *OrderService) Cancel(ctx context.Context, id uint64) (*OrderResult, error) {
	var order *domain.Order
	var prev domain.OrderStatus
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orders.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.NotFoundf("order not found with id: %d", id)
		}
		prev = order.Status
		if !order.Status.Cancellable() {
			return domain.Conflictf("cannot cancel order with status: %s", order.Status)
		}
		for _, line := range order.Lines {
			ok, err := s.products.AdjustStock(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return domain.NotFoundf("product not found with id: %d", line.ProductID)
			}
		}
		order.Status = domain.OrderCancelled
		return s.orders.Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	for _, line := range order.Lines {
		s.cache.InvalidateProduct(ctx, line.ProductID)
	}

	result := &OrderResult{Order: order}
	s.publishStatusChange(ctx, order, prev, result)
	return result, nil
}

func (s *OrderService) settlePendingPayments(ctx context.Context, orderID uint64) SideEffects {
	payments, err := s.payments.FindByOrderID(ctx, orderID)
	if err != nil {
		logrus.WithError(err).WithField("order_id", orderID).Error("failed to load payments for cascade")
		return SideEffects{{Name: "payment-cascade", Err: err}}
	}

	var out SideEffects
	for i := range payments {
		p := &payments[i]
		if p.Status != domain.PaymentPending {
			continue
		}
		p.Status = domain.PaymentPaid
		if p.PaidAt == nil {
			now := time.Now()
			p.PaidAt = &now
		}
		if err := s.payments.Save(ctx, p); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"order_id":   orderID,
				"payment_id": p.ID,
			}).Error("failed to cascade payment to paid")
			out = append(out, SideEffect{Name: "payment-cascade", Err: err})
		}
	}
	return out
}

func (s *OrderService) publishStatusChange(ctx context.Context, order *domain.Order, prev domain.OrderStatus, result *OrderResult) {
	evt := domain.OrderStatusChangedEvent{
		OrderID:   order.ID,
		OrderCode: order.OrderCode,
		From:      prev,
		To:        order.Status,
		ChangedAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, "order.status_changed", evt); err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).Warn("failed to publish order.status_changed event")
		result.SideEffects = append(result.SideEffects, SideEffect{Name: "order-status-event", Err: err})
	}
}

func (s *OrderService) GetAll(ctx context.Context) ([]domain.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *OrderService) GetByID(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.NotFoundf("order not found with id: %d", id)
	}
	return o, nil
}

func (s *OrderService) GetByCode(ctx context.Context, code string) (*domain.Order, error) {
	o, err := s.orders.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.NotFoundf("order not found with code: %s", code)
	}
	return o, nil
}

func (s *OrderService) GetByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	return s.orders.FindByEmail(ctx, email)
}

func (s *OrderService) GetByUserID(ctx context.Context, userID uint64) ([]domain.Order, error) {
	return s.orders.FindByUserID(ctx, userID)
}

func (s *OrderService) GetByStatus(ctx context.Context, statusStr string) ([]domain.Order, error) {
	status, err := domain.ParseOrderStatus(statusStr)
	if err != nil {
		return nil, err
	}
	return s.orders.FindByStatus(ctx, status)
}

// generateOrderCode keeps the human-readable ORD+timestamp shape and appends
// a short random suffix so two orders placed within the same second do not
// collide. The unique index on order_code is the backstop.
func generateOrderCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return "ORD" + time.Now().Format("20060102150405") + suffix
}

func isTransient(err error) bool {
	var me *sqldriver.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1213 || me.Number == 1205
	}
	return false
}
