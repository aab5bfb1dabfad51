package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

type UserInput struct {
	Name     string
	Username string
	Email    string
	Phone    string
	Address  string
	Password string
	Role     string
	Status   string
}

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFoundf("user not found with id: %d", id)
	}
	return u, nil
}

func (s *UserService) Update(ctx context.Context, id uint64, in UserInput) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFoundf("user not found with id: %d", id)
	}

	if in.Email != "" {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		if email != u.Email {
			taken, err := s.users.EmailTaken(ctx, email, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domain.Conflictf("email already exists: %s", email)
			}
			u.Email = email
		}
	}
	if in.Username != "" {
		username := strings.ToLower(strings.TrimSpace(in.Username))
		if username != u.Username {
			taken, err := s.users.UsernameTaken(ctx, username, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domain.Conflictf("username already exists: %s", username)
			}
			u.Username = username
		}
	}

	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Phone != "" {
		u.Phone = in.Phone
	}
	if in.Address != "" {
		u.Address = in.Address
	}
	if in.Role != "" {
		role, err := domain.ParseRole(in.Role)
		if err != nil {
			return nil, err
		}
		u.Role = role
	}
	if in.Status != "" {
		status, err := domain.ParseUserStatus(in.Status)
		if err != nil {
			return nil, err
		}
		u.Status = status
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.Password = string(hash)
	}

	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id uint64) error {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.NotFoundf("user not found with id: %d", id)
	}
	return s.users.Delete(ctx, id)
}
