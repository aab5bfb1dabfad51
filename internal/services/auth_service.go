package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"product-management/internal/domain"
	"product-management/internal/infra/token"
	"product-management/internal/repository"
)

type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Phone    string
	Address  string
	Password string
}

type LoginResult struct {
	Token    string      `json:"token"`
	UserID   uint64      `json:"userId"`
	Email    string      `json:"email"`
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Role     domain.Role `json:"role"`
}

type AuthService struct {
	users  repository.UserRepository
	signer *token.Signer
}

func NewAuthService(users repository.UserRepository, signer *token.Signer) *AuthService {
	return &AuthService{users: users, signer: signer}
}

// Login deliberately returns the same message for an unknown identifier and a
// wrong password.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))

	u, err := s.users.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.Validationf("invalid username/email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, domain.Validationf("invalid username/email or password")
	}
	if u.Status == domain.UserInactive {
		return nil, domain.Conflictf("account is inactive")
	}

	t, err := s.signer.Issue(u)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:    t,
		UserID:   u.ID,
		Email:    u.Email,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if in.Password == "" {
		return nil, domain.Validationf("password is required")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if email == "" || username == "" {
		return nil, domain.Validationf("username and email are required")
	}

	taken, err := s.users.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.Conflictf("email already exists: %s", email)
	}
	taken, err = s.users.UsernameTaken(ctx, username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.Conflictf("username already exists: %s", username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Name:     in.Name,
		Username: username,
		Email:    email,
		Phone:    in.Phone,
		Address:  in.Address,
		Password: string(hash),
		Role:     domain.RoleUser,
		Status:   domain.UserActive,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
