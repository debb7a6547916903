// Package db lets use cases group repository writes, such as the user deletion
// cascade or a service rename, into one gorm transaction.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey carries the open *gorm.DB transaction through the context.
type txKey struct{}

// TransactionManager opens transactions on the application database.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction executes fn inside a database transaction. Repositories called
// with the derived context join the transaction through GetTxFromContext. A nested
// call reuses the outer transaction.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetTxFromContext is how every repository picks its handle: the transaction of
// an enclosing RunInTransaction, otherwise defaultDB bound to ctx. Calling the
// plain handle inside a transaction would need a second connection, which a
// single-connection sqlite pool never hands out.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
