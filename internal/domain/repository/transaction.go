package repository

import "context"

// TransactionManager runs a unit of work atomically. Repositories obtained
// from the factory passed to fn share the transaction; anything else does not.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out transaction-bound repositories.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewCategoryRepository() CategoryRepository
	NewProductRepository() ProductRepository
	NewCartRepository() CartRepository
	NewOrderRepository() OrderRepository
}
