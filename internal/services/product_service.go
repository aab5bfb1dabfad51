package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"product-management/internal/domain"
	"product-management/internal/repository"
)

const productCacheTTL = time.Minute

type ProductInput struct {
	Name          string
	Description   string
	Image         string
	Price         decimal.Decimal
	DiscountPrice *decimal.Decimal
	Quantity      int
	Status        string
	CategoryID    uint64
}

type ProductService struct {
	products    repository.ProductRepository
	categories  repository.CategoryRepository
	redisClient *redis.Client
}

func NewProductService(products repository.ProductRepository, categories repository.CategoryRepository) *ProductService {
	return &ProductService{products: products, categories: categories}
}

func (s *ProductService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// GetByID reads through the redis cache. Every path that mutates a product,
// including stock changes made by checkout, cancellation, and inventory
// logging, invalidates the entry after commit.
func (s *ProductService) GetByID(ctx context.Context, id uint64) (*domain.Product, error) {
	cacheKey := fmt.Sprintf("product:%d", id)

	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var p domain.Product
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return &p, nil
			}
		}
	}

	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFoundf("product not found with id: %d", id)
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(p); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
		}
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if in.Name == "" {
		return nil, domain.Validationf("product name is required")
	}
	if in.Price.IsNegative() {
		return nil, domain.Validationf("product price cannot be negative")
	}
	if in.Quantity < 0 {
		return nil, domain.Validationf("product quantity cannot be negative")
	}

	status := domain.ProductActive
	if in.Status != "" {
		var err error
		status, err = domain.ParseProductStatus(in.Status)
		if err != nil {
			return nil, err
		}
	}

	category, err := s.categories.FindByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NotFoundf("category not found with id: %d", in.CategoryID)
	}

	p := &domain.Product{
		Name:          in.Name,
		Description:   in.Description,
		Image:         in.Image,
		Price:         in.Price,
		DiscountPrice: in.DiscountPrice,
		Quantity:      in.Quantity,
		Status:        status,
		CategoryID:    in.CategoryID,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id uint64, in ProductInput) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFoundf("product not found with id: %d", id)
	}
	if in.Name == "" {
		return nil, domain.Validationf("product name is required")
	}
	if in.Price.IsNegative() {
		return nil, domain.Validationf("product price cannot be negative")
	}
	if in.Quantity < 0 {
		return nil, domain.Validationf("product quantity cannot be negative")
	}

	if in.CategoryID != p.CategoryID {
		category, err := s.categories.FindByID(ctx, in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.NotFoundf("category not found with id: %d", in.CategoryID)
		}
	}

	p.Name = in.Name
	p.Description = in.Description
	p.Image = in.Image
	p.Price = in.Price
	p.DiscountPrice = in.DiscountPrice
	p.Quantity = in.Quantity
	p.CategoryID = in.CategoryID
	p.Category = nil
	if in.Status != "" {
		status, err := domain.ParseProductStatus(in.Status)
		if err != nil {
			return nil, err
		}
		p.Status = status
	}

	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}
	s.InvalidateProduct(ctx, id)
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint64) error {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.NotFoundf("product not found with id: %d", id)
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.InvalidateProduct(ctx, id)
	return nil
}

func (s *ProductService) GetAll(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *ProductService) GetActive(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindByStatus(ctx, domain.ProductActive)
}

func (s *ProductService) GetByCategory(ctx context.Context, categoryID uint64) ([]domain.Product, error) {
	return s.products.FindByCategoryID(ctx, categoryID)
}

func (s *ProductService) Search(ctx context.Context, keyword string) ([]domain.Product, error) {
	return s.products.Search(ctx, keyword)
}

// InvalidateProduct evicts the cached entry. A no-op without a redis client.
func (s *ProductService) InvalidateProduct(ctx context.Context, id uint64) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, fmt.Sprintf("product:%d", id)).Err(); err != nil {
		logrus.WithError(err).WithField("product_id", id).Warn("failed to invalidate product cache")
	}
}

var _ ProductCacheInvalidator = (*ProductService)(nil)
