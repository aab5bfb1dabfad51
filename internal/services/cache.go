package services

import "context"

// ProductCacheInvalidator evicts a cached product after a write. Services
// that mutate stock outside ProductService call it post-commit so cached
// reads do not serve stale quantities.
type ProductCacheInvalidator interface {
	InvalidateProduct(ctx context.Context, id uint64)
}
