package mysql

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *domain.User) error {
	return errors.Wrap(conn(ctx, r.db).Create(u).Error, "create user")
}

func (r *userRepo) Save(ctx context.Context, u *domain.User) error {
	return errors.Wrap(conn(ctx, r.db).Save(u).Error, "save user")
}

func (r *userRepo) Delete(ctx context.Context, id uint64) error {
	return errors.Wrap(conn(ctx, r.db).Delete(&domain.User{}, id).Error, "delete user")
}

func (r *userRepo) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	var u domain.User
	err := conn(ctx, r.db).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	return &u, nil
}

func (r *userRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	err := conn(ctx, r.db).Order("created_at DESC").Find(&out).Error
	return out, errors.Wrap(err, "list users")
}

func (r *userRepo) FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	var u domain.User
	err := conn(ctx, r.db).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user by identifier")
	}
	return &u, nil
}

func (r *userRepo) EmailTaken(ctx context.Context, email string, excludeID uint64) (bool, error) {
	var n int64
	q := conn(ctx, r.db).Model(&domain.User{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, errors.Wrap(err, "check email")
}

func (r *userRepo) UsernameTaken(ctx context.Context, username string, excludeID uint64) (bool, error) {
	var n int64
	q := conn(ctx, r.db).Model(&domain.User{}).Where("username = ?", username)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, errors.Wrap(err, "check username")
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := conn(ctx, r.db).Model(&domain.User{}).Count(&n).Error
	return n, errors.Wrap(err, "count users")
}
