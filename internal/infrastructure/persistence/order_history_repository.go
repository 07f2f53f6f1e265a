package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shopping"
	"gorm.io/gorm"
)

// GormOrderHistoryRepository implements OrderHistoryRepository using GORM
type GormOrderHistoryRepository struct {
	db *gorm.DB
}

// NewGormOrderHistoryRepository creates a new GormOrderHistoryRepository
func NewGormOrderHistoryRepository(db *gorm.DB) *GormOrderHistoryRepository {
	return &GormOrderHistoryRepository{db: db}
}

// FindByID finds a purchase record by its ID
func (r *GormOrderHistoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*shopping.OrderHistory, error) {
	var record shopping.OrderHistory
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindByOrderID finds the purchase records carrying an order id
func (r *GormOrderHistoryRepository) FindByOrderID(ctx context.Context, orderID string) ([]shopping.OrderHistory, error) {
	var records []shopping.OrderHistory
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByBuyer finds the purchase records of a buyer
func (r *GormOrderHistoryRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID, filter shared.Filter) ([]shopping.OrderHistory, error) {
	var records []shopping.OrderHistory
	query := r.applyFilter(r.db.WithContext(ctx).Model(&shopping.OrderHistory{}), filter).
		Where("buyer_id = ?", buyerID)

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindAll finds all purchase records matching the filter
func (r *GormOrderHistoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shopping.OrderHistory, error) {
	var records []shopping.OrderHistory
	query := r.applyFilter(r.db.WithContext(ctx).Model(&shopping.OrderHistory{}), filter)

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByDelivered lists records filtered on the delivered flag
func (r *GormOrderHistoryRepository) FindByDelivered(ctx context.Context, delivered bool, filter shared.Filter) ([]shopping.OrderHistory, error) {
	var records []shopping.OrderHistory
	query := r.applyFilter(r.db.WithContext(ctx).Model(&shopping.OrderHistory{}), filter).
		Where("delivered = ?", delivered)

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Count counts purchase records matching the filter
func (r *GormOrderHistoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&shopping.OrderHistory{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a purchase record
func (r *GormOrderHistoryRepository) Save(ctx context.Context, record *shopping.OrderHistory) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// SaveAll persists every record of one checkout in a single insert
func (r *GormOrderHistoryRepository) SaveAll(ctx context.Context, records []*shopping.OrderHistory) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(records).Error
}

// applyFilter applies filter options to the query
func (r *GormOrderHistoryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("buy_time DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormOrderHistoryRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(product_name) LIKE ? OR LOWER(buyer_name) LIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "payment_option":
			query = query.Where("payment_option = ?", value)
		}
	}

	return query
}

// Ensure GormOrderHistoryRepository implements OrderHistoryRepository
var _ shopping.OrderHistoryRepository = (*GormOrderHistoryRepository)(nil)
