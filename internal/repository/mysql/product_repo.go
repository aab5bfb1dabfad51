package mysql

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, p *domain.Product) error {
	return errors.Wrap(conn(ctx, r.db).Create(p).Error, "create product")
}

func (r *productRepo) Save(ctx context.Context, p *domain.Product) error {
	return errors.Wrap(conn(ctx, r.db).Save(p).Error, "save product")
}

func (r *productRepo) Delete(ctx context.Context, id uint64) error {
	return errors.Wrap(conn(ctx, r.db).Delete(&domain.Product{}, id).Error, "delete product")
}

func (r *productRepo) FindByID(ctx context.Context, id uint64) (*domain.Product, error) {
	var p domain.Product
	err := conn(ctx, r.db).Preload("Category").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find product")
	}
	return &p, nil
}

func (r *productRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := conn(ctx, r.db).Preload("Category").Order("created_at DESC").Find(&out).Error
	return out, errors.Wrap(err, "list products")
}

func (r *productRepo) FindByStatus(ctx context.Context, status domain.ProductStatus) ([]domain.Product, error) {
	var out []domain.Product
	err := conn(ctx, r.db).Preload("Category").Where("status = ?", status).Find(&out).Error
	return out, errors.Wrap(err, "list products by status")
}

func (r *productRepo) FindByCategoryID(ctx context.Context, categoryID uint64) ([]domain.Product, error) {
	var out []domain.Product
	err := conn(ctx, r.db).Preload("Category").Where("category_id = ?", categoryID).Find(&out).Error
	return out, errors.Wrap(err, "list products by category")
}

func (r *productRepo) Search(ctx context.Context, keyword string) ([]domain.Product, error) {
	var out []domain.Product
	like := "%" + keyword + "%"
	err := conn(ctx, r.db).Preload("Category").
		Where("name LIKE ? OR description LIKE ?", like, like).
		Find(&out).Error
	return out, errors.Wrap(err, "search products")
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := conn(ctx, r.db).Model(&domain.Product{}).Count(&n).Error
	return n, errors.Wrap(err, "count products")
}

func (r *productRepo) FindLowStock(ctx context.Context, threshold, limit int) ([]domain.Product, error) {
	var out []domain.Product
	err := conn(ctx, r.db).
		Where("quantity <= ?", threshold).
		Order("quantity ASC").
		Limit(limit).
		Find(&out).Error
	return out, errors.Wrap(err, "list low-stock products")
}

// AdjustStock performs the conditional atomic update so two concurrent
// checkouts cannot both pass an availability check and oversell.
func (r *productRepo) AdjustStock(ctx context.Context, id uint64, delta int) (bool, error) {
	res := conn(ctx, r.db).Model(&domain.Product{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "adjust stock")
	}
	return res.RowsAffected > 0, nil
}
