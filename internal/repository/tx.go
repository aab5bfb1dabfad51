package repository

import "context"

// TxManager runs fn inside one database transaction. Repositories called with
// the context passed to fn participate in that transaction, so a multi-step
// use case (order placement, cancellation, ledger entry) commits or rolls
// back as a single unit.
type TxManager interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
