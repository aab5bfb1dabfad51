package mysql

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// Create inserts the order together with its lines in one statement batch.
func (r *orderRepo) Create(ctx context.Context, o *domain.Order) error {
	return errors.Wrap(conn(ctx, r.db).Create(o).Error, "create order")
}

func (r *orderRepo) Save(ctx context.Context, o *domain.Order) error {
	return errors.Wrap(conn(ctx, r.db).Omit("Lines", "Payments").Save(o).Error, "save order")
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	err := conn(ctx, r.db).
		Preload("Lines").
		Preload("Lines.Product").
		Preload("Payments").
		First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find order")
	}
	return &o, nil
}

func (r *orderRepo) FindByCode(ctx context.Context, code string) (*domain.Order, error) {
	var o domain.Order
	err := conn(ctx, r.db).
		Preload("Lines").
		Preload("Lines.Product").
		Preload("Payments").
		Where("order_code = ?", code).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find order by code")
	}
	return &o, nil
}

func (r *orderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	err := conn(ctx, r.db).Preload("Lines").Order("created_at DESC").Find(&out).Error
	return out, errors.Wrap(err, "list orders")
}

func (r *orderRepo) FindByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	var out []domain.Order
	err := conn(ctx, r.db).Preload("Lines").
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&out).Error
	return out, errors.Wrap(err, "list orders by email")
}

func (r *orderRepo) FindByUserID(ctx context.Context, userID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := conn(ctx, r.db).Preload("Lines").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, errors.Wrap(err, "list orders by user")
}

func (r *orderRepo) FindByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	var out []domain.Order
	err := conn(ctx, r.db).Preload("Lines").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&out).Error
	return out, errors.Wrap(err, "list orders by status")
}

func (r *orderRepo) FindRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	var out []domain.Order
	err := conn(ctx, r.db).Preload("Lines").
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, errors.Wrap(err, "list recent orders")
}

func (r *orderRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := conn(ctx, r.db).Model(&domain.Order{}).Count(&n).Error
	return n, errors.Wrap(err, "count orders")
}

func (r *orderRepo) SumTotalByStatuses(ctx context.Context, statuses []domain.OrderStatus) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := conn(ctx, r.db).Model(&domain.Order{}).
		Where("status IN ?", statuses).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, errors.Wrap(err, "sum order totals")
}

func (r *orderRepo) TopProducts(ctx context.Context, limit int) ([]repository.TopProduct, error) {
	var out []repository.TopProduct
	err := conn(ctx, r.db).Table("order_details").
		Select("order_details.product_id AS product_id, products.name AS name, SUM(order_details.quantity) AS units_sold, SUM(order_details.subtotal) AS revenue").
		Joins("JOIN products ON products.id = order_details.product_id").
		Group("order_details.product_id, products.name").
		Order("units_sold DESC").
		Limit(limit).
		Scan(&out).Error
	return out, errors.Wrap(err, "rank top products")
}
