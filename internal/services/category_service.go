package services

import (
	"context"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

type CategoryInput struct {
	Name        string
	Description string
	Status      string
}

type CategoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]domain.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id uint64) (*domain.Category, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFoundf("category not found with id: %d", id)
	}
	return c, nil
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	if in.Name == "" {
		return nil, domain.Validationf("category name is required")
	}
	taken, err := s.categories.NameTaken(ctx, in.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.Conflictf("category with name %q already exists", in.Name)
	}

	status := domain.CategoryActive
	if in.Status != "" {
		status, err = domain.ParseCategoryStatus(in.Status)
		if err != nil {
			return nil, err
		}
	}

	c := &domain.Category{Name: in.Name, Description: in.Description, Status: status}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint64, in CategoryInput) (*domain.Category, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFoundf("category not found with id: %d", id)
	}
	if in.Name == "" {
		return nil, domain.Validationf("category name is required")
	}

	if in.Name != c.Name {
		taken, err := s.categories.NameTaken(ctx, in.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.Conflictf("category with name %q already exists", in.Name)
		}
	}

	c.Name = in.Name
	c.Description = in.Description
	if in.Status != "" {
		status, err := domain.ParseCategoryStatus(in.Status)
		if err != nil {
			return nil, err
		}
		c.Status = status
	}

	if err := s.categories.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint64) error {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.NotFoundf("category not found with id: %d", id)
	}
	return s.categories.Delete(ctx, id)
}
