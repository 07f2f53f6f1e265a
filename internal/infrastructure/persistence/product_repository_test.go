package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

func seedProduct(t *testing.T, repo *GormProductRepository, name string, count int, categoryID uuid.UUID) *catalog.Product {
	t.Helper()

	product, err := catalog.NewProduct(name, count, decimal.NewFromInt(100), 10, decimal.NewFromInt(90), categoryID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), product))
	return product
}

func TestGormProductRepository_FindByTitle(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProductRepository(db)

	seedProduct(t, repo, "Gaming Laptop", 3, uuid.New())

	found, err := repo.FindByTitle(context.Background(), "gaming_laptop")
	require.NoError(t, err)
	assert.Equal(t, "Gaming Laptop", found.Name)

	_, err = repo.FindByTitle(context.Background(), "no_such_product")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProductRepository_SearchFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProductRepository(db)
	categoryID := uuid.New()

	seedProduct(t, repo, "Red Mug", 3, categoryID)
	seedProduct(t, repo, "Blue Mug", 3, categoryID)
	seedProduct(t, repo, "Desk Lamp", 3, categoryID)

	filter := shared.DefaultFilter()
	filter.Search = "mug"

	products, err := repo.FindAll(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	count, err := repo.Count(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormProductRepository_InStockFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProductRepository(db)
	categoryID := uuid.New()

	seedProduct(t, repo, "Stocked", 5, categoryID)
	seedProduct(t, repo, "Sold Out", 0, categoryID)

	filter := shared.DefaultFilter()
	filter.Filters = map[string]interface{}{"in_stock": true}

	products, err := repo.FindAll(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Stocked", products[0].Name)
}

func TestGormProductRepository_SaveUpdatesStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := seedProduct(t, repo, "Keyboard", 5, uuid.New())

	require.NoError(t, product.DecreaseStock(2))
	require.NoError(t, repo.Save(ctx, product))

	stored, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Count)
}

func TestGormProductRepository_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProductRepository(db)

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
