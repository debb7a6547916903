package usecases

import (
	"context"
)

// TransactionManager runs fn in one database transaction; nested calls join
// the outer transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
