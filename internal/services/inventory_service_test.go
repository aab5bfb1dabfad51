package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"product-management/internal/domain"
	"product-management/internal/mocks"
)

type inventoryFixture struct {
	logs      *mocks.MockInventoryLogRepository
	products  *mocks.MockProductRepository
	publisher *mocks.MockPublisher
	cache     *mocks.ProductCacheStub
	svc       *InventoryService
}

func newInventoryFixture() *inventoryFixture {
	f := &inventoryFixture{
		logs:      new(mocks.MockInventoryLogRepository),
		products:  new(mocks.MockProductRepository),
		publisher: new(mocks.MockPublisher),
		cache:     new(mocks.ProductCacheStub),
	}
	f.svc = NewInventoryService(f.logs, f.products, mocks.TxManagerStub{}, f.publisher, f.cache)
	return f
}

func TestCreateLogImport(t *testing.T) {
	f := newInventoryFixture()

	f.products.On("FindByID", mock.Anything, uint64(1)).Return(testProduct(1, 10, 3), nil)
	f.products.On("AdjustStock", mock.Anything, uint64(1), 10).Return(true, nil)
	f.logs.On("Create", mock.Anything, mock.AnythingOfType("*domain.InventoryLog")).Return(nil)
	f.publisher.On("Publish", mock.Anything, "inventory.logged", mock.Anything).Return(nil)

	result, err := f.svc.CreateLog(context.Background(), 1, 10, "import", "restock")

	assert.NoError(t, err)
	assert.Equal(t, domain.LogImport, result.Log.LogType)
	assert.Equal(t, 10, result.Log.ChangeQuantity)
	assert.False(t, result.SideEffects.Failed())
	assert.Equal(t, []uint64{1}, f.cache.Invalidated)
	f.products.AssertExpectations(t)
	f.logs.AssertExpectations(t)
}

func TestCreateLogExportNegatesDelta(t *testing.T) {
	f := newInventoryFixture()

	f.products.On("FindByID", mock.Anything, uint64(1)).Return(testProduct(1, 10, 8), nil)
	f.products.On("AdjustStock", mock.Anything, uint64(1), -5).Return(true, nil)
	f.logs.On("Create", mock.Anything, mock.AnythingOfType("*domain.InventoryLog")).Return(nil)
	f.publisher.On("Publish", mock.Anything, "inventory.logged", mock.Anything).Return(nil)

	result, err := f.svc.CreateLog(context.Background(), 1, 5, "export", "")

	assert.NoError(t, err)
	// The log keeps the operator's positive figure; only the stock delta flips.
	assert.Equal(t, 5, result.Log.ChangeQuantity)
	assert.Equal(t, domain.LogExport, result.Log.LogType)
}

func TestCreateLogExportBeyondStock(t *testing.T) {
	f := newInventoryFixture()

	f.products.On("FindByID", mock.Anything, uint64(1)).Return(testProduct(1, 10, 2), nil)
	f.products.On("AdjustStock", mock.Anything, uint64(1), -5).Return(false, nil)

	_, err := f.svc.CreateLog(context.Background(), 1, 5, "export", "")

	assert.True(t, domain.IsConflict(err))
	assert.Contains(t, err.Error(), "not enough stock for export")
	f.logs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, f.cache.Invalidated)
}

func TestCreateLogAdjustmentCannotGoNegative(t *testing.T) {
	f := newInventoryFixture()

	f.products.On("FindByID", mock.Anything, uint64(1)).Return(testProduct(1, 10, 2), nil)
	f.products.On("AdjustStock", mock.Anything, uint64(1), -3).Return(false, nil)

	_, err := f.svc.CreateLog(context.Background(), 1, -3, "adjustment", "shrinkage")

	assert.True(t, domain.IsConflict(err))
	assert.Contains(t, err.Error(), "cannot be negative")
	f.logs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLogRejectsUnknownType(t *testing.T) {
	f := newInventoryFixture()

	_, err := f.svc.CreateLog(context.Background(), 1, 5, "restock", "")

	assert.True(t, domain.IsValidation(err))
}

func TestCreateLogUnknownProduct(t *testing.T) {
	f := newInventoryFixture()

	f.products.On("FindByID", mock.Anything, uint64(9)).Return(nil, nil)

	_, err := f.svc.CreateLog(context.Background(), 9, 5, "import", "")

	assert.True(t, domain.IsNotFound(err))
}

func TestCreateLogPublishFailureIsSideEffect(t *testing.T) {
	f := newInventoryFixture()

	f.products.On("FindByID", mock.Anything, uint64(1)).Return(testProduct(1, 10, 3), nil)
	f.products.On("AdjustStock", mock.Anything, uint64(1), 10).Return(true, nil)
	f.logs.On("Create", mock.Anything, mock.AnythingOfType("*domain.InventoryLog")).Return(nil)
	f.publisher.On("Publish", mock.Anything, "inventory.logged", mock.Anything).Return(assert.AnError)

	result, err := f.svc.CreateLog(context.Background(), 1, 10, "import", "")

	assert.NoError(t, err)
	assert.True(t, result.SideEffects.Failed())
	assert.Equal(t, "inventory-logged-event", result.SideEffects[0].Name)
}

func TestGetByProductChecksExistence(t *testing.T) {
	f := newInventoryFixture()

	f.products.On("FindByID", mock.Anything, uint64(9)).Return(nil, nil)

	_, err := f.svc.GetByProduct(context.Background(), 9)

	assert.True(t, domain.IsNotFound(err))
}
