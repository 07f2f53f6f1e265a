package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appshopping "github.com/storefront/backend/internal/application/shopping"
	"github.com/storefront/backend/internal/domain/shopping"
)

func TestGormShoppingTransactionScope_Commit(t *testing.T) {
	db := newTestDB(t)
	scope := NewGormShoppingTransactionScope(db)
	ctx := context.Background()

	userID := uuid.New()
	line, err := shopping.NewCartLine(userID, uuid.New(), 2)
	require.NoError(t, err)

	err = scope.Execute(ctx, func(repos appshopping.TransactionalRepositories) error {
		return repos.CartRepo().Upsert(ctx, line)
	})
	require.NoError(t, err)

	count, err := NewGormCartRepository(db).CountByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormShoppingTransactionScope_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	scope := NewGormShoppingTransactionScope(db)
	ctx := context.Background()

	userID := uuid.New()
	line, err := shopping.NewCartLine(userID, uuid.New(), 2)
	require.NoError(t, err)

	boom := errors.New("checkout failed")
	err = scope.Execute(ctx, func(repos appshopping.TransactionalRepositories) error {
		if err := repos.CartRepo().Upsert(ctx, line); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	count, err := NewGormCartRepository(db).CountByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
