package mysql

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, c *domain.Category) error {
	return errors.Wrap(conn(ctx, r.db).Create(c).Error, "create category")
}

func (r *categoryRepo) Save(ctx context.Context, c *domain.Category) error {
	return errors.Wrap(conn(ctx, r.db).Save(c).Error, "save category")
}

func (r *categoryRepo) Delete(ctx context.Context, id uint64) error {
	return errors.Wrap(conn(ctx, r.db).Delete(&domain.Category{}, id).Error, "delete category")
}

func (r *categoryRepo) FindByID(ctx context.Context, id uint64) (*domain.Category, error) {
	var c domain.Category
	err := conn(ctx, r.db).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find category")
	}
	return &c, nil
}

func (r *categoryRepo) FindAll(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	err := conn(ctx, r.db).Order("name ASC").Find(&out).Error
	return out, errors.Wrap(err, "list categories")
}

func (r *categoryRepo) NameTaken(ctx context.Context, name string, excludeID uint64) (bool, error) {
	var n int64
	q := conn(ctx, r.db).Model(&domain.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, errors.Wrap(err, "check category name")
}
