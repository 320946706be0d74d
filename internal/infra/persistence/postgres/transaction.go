// Package postgres implements the repositories on GORM over PostgreSQL.
package postgres

import (
	"context"

	"gorm.io/gorm"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
)

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise, panics
// included. fn's own error is returned untouched; failures to begin or
// commit surface as ErrTransactionFailed.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return domainerrors.ErrTransactionFailed.WithCause(err)
	}
}

// txRepositories binds every repository to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(r.tx)
}

func (r txRepositories) NewCategoryRepository() repository.CategoryRepository {
	return NewCategoryRepository(r.tx)
}

func (r txRepositories) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(r.tx)
}

func (r txRepositories) NewCartRepository() repository.CartRepository {
	return NewCartRepository(r.tx)
}

func (r txRepositories) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(r.tx)
}
