package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"product-management/internal/domain"
	rabbit "product-management/internal/infra/rabbitmq"
	"product-management/internal/repository"
)

// LedgerResult pairs the committed log entry with any best-effort side
// effects that failed afterwards.
type LedgerResult struct {
	Log         *domain.InventoryLog
	SideEffects SideEffects
}

type InventoryService struct {
	logs      repository.InventoryLogRepository
	products  repository.ProductRepository
	tx        repository.TxManager
	publisher rabbit.PublisherInterface
	cache     ProductCacheInvalidator
}

func NewInventoryService(
	logs repository.InventoryLogRepository,
	products repository.ProductRepository,
	tx repository.TxManager,
	publisher rabbit.PublisherInterface,
	cache ProductCacheInvalidator,
) *InventoryService {
	return &InventoryService{logs: logs, products: products, tx: tx, publisher: publisher, cache: cache}
}

// CreateLog applies the signed change to the product's live quantity and
// appends the audit row in one transaction; a rejected quantity guard rolls
// both back.
//
// import: quantity += change (change expected positive, not enforced)
// export: requires quantity >= change, then quantity -= change
// adjustment: quantity += change, result must stay >= 0
func (s *InventoryService) CreateLog(ctx context.Context, productID uint64, change int, typeStr, notes string) (*LedgerResult, error) {
	logType, err := domain.ParseLogType(typeStr)
	if err != nil {
		return nil, err
	}

	var entry *domain.InventoryLog
	var newQuantity int
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NotFoundf("product not found with id: %d", productID)
		}

		delta := change
		if logType == domain.LogExport {
			delta = -change
		}

		ok, err := s.products.AdjustStock(ctx, productID, delta)
		if err != nil {
			return err
		}
		if !ok {
			if logType == domain.LogExport {
				return domain.Conflictf("not enough stock for export")
			}
			return domain.Conflictf("resulting quantity cannot be negative")
		}
		newQuantity = product.Quantity + delta

		entry = &domain.InventoryLog{
			ProductID:      productID,
			ChangeQuantity: change,
			LogType:        logType,
			Notes:          notes,
		}
		return s.logs.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateProduct(ctx, productID)

	result := &LedgerResult{Log: entry}
	evt := domain.InventoryLoggedEvent{
		LogID:          entry.ID,
		ProductID:      productID,
		ChangeQuantity: change,
		LogType:        logType,
		NewQuantity:    newQuantity,
		LoggedAt:       time.Now(),
	}
	if perr := s.publisher.Publish(ctx, "inventory.logged", evt); perr != nil {
		logrus.WithError(perr).WithField("product_id", productID).Warn("failed to publish inventory.logged event")
		result.SideEffects = append(result.SideEffects, SideEffect{Name: "inventory-logged-event", Err: perr})
	}
	return result, nil
}

func (s *InventoryService) GetAll(ctx context.Context) ([]domain.InventoryLog, error) {
	return s.logs.FindAll(ctx)
}

func (s *InventoryService) GetByProduct(ctx context.Context, productID uint64) ([]domain.InventoryLog, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFoundf("product not found with id: %d", productID)
	}
	return s.logs.FindByProductID(ctx, productID)
}
