package persistence

import (
	"context"

	appshopping "github.com/storefront/backend/internal/application/shopping"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shopping"
	"gorm.io/gorm"
)

// GormShoppingTransactionScope implements the shopping TransactionScope
// using GORM's transaction support
type GormShoppingTransactionScope struct {
	db *gorm.DB
}

// NewGormShoppingTransactionScope creates a new GormShoppingTransactionScope
func NewGormShoppingTransactionScope(db *gorm.DB) *GormShoppingTransactionScope {
	return &GormShoppingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction. Stock
// decrements, the order insert and the cart wipe of one checkout all
// share the transaction handle.
func (s *GormShoppingTransactionScope) Execute(ctx context.Context, fn func(repos appshopping.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormShoppingRepositories{tx: tx})
	})
}

// gormShoppingRepositories provides transaction-scoped shopping repositories
type gormShoppingRepositories struct {
	tx *gorm.DB
}

func (r *gormShoppingRepositories) CartRepo() shopping.CartRepository {
	return NewGormCartRepository(r.tx)
}

func (r *gormShoppingRepositories) OrderRepo() shopping.OrderHistoryRepository {
	return NewGormOrderHistoryRepository(r.tx)
}

func (r *gormShoppingRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

var _ appshopping.TransactionScope = (*GormShoppingTransactionScope)(nil)
var _ appshopping.TransactionalRepositories = (*gormShoppingRepositories)(nil)
