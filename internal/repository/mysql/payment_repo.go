package mysql

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	return errors.Wrap(conn(ctx, r.db).Create(p).Error, "create payment")
}

func (r *paymentRepo) Save(ctx context.Context, p *domain.Payment) error {
	return errors.Wrap(conn(ctx, r.db).Save(p).Error, "save payment")
}

func (r *paymentRepo) FindByID(ctx context.Context, id uint64) (*domain.Payment, error) {
	var p domain.Payment
	err := conn(ctx, r.db).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find payment")
	}
	return &p, nil
}

func (r *paymentRepo) FindByOrderID(ctx context.Context, orderID uint64) ([]domain.Payment, error) {
	var out []domain.Payment
	err := conn(ctx, r.db).Where("order_id = ?", orderID).Find(&out).Error
	return out, errors.Wrap(err, "list payments by order")
}

func (r *paymentRepo) FindByUserID(ctx context.Context, userID uint64) ([]domain.Payment, error) {
	var out []domain.Payment
	err := conn(ctx, r.db).Model(&domain.Payment{}).
		Joins("JOIN orders ON orders.id = payments.order_id").
		Where("orders.user_id = ?", userID).
		Find(&out).Error
	return out, errors.Wrap(err, "list payments by user")
}

func (r *paymentRepo) FindAll(ctx context.Context) ([]domain.Payment, error) {
	var out []domain.Payment
	err := conn(ctx, r.db).Order("created_at DESC").Find(&out).Error
	return out, errors.Wrap(err, "list payments")
}
