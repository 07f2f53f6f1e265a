package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/feedback"
	"github.com/storefront/backend/internal/domain/i18n"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shopping"
)

// newTestDB opens an in-memory SQLite database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&identity.User{},
		&catalog.Category{},
		&catalog.Product{},
		&catalog.Banner{},
		&shopping.CartLine{},
		&shopping.OrderHistory{},
		&feedback.Comment{},
		&feedback.Review{},
		&i18n.LocalizationBundle{},
	)
	require.NoError(t, err)

	return db
}
