package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Category groups products for navigation. A category with a parent
// is a sub-category; top-level categories have no parent. Exactly one
// category is flagged as the default: products whose category is
// deleted are reassigned to it.
type Category struct {
	shared.BaseAggregateRoot
	Name      string     `gorm:"type:varchar(100);not null"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	IsDefault bool       `gorm:"not null;default:false;index"`
}

// NewCategory creates a new top-level category
func NewCategory(name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}

	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}, nil
}

// NewSubCategory creates a new category under a parent
func NewSubCategory(name string, parent *Category) (*Category, error) {
	if parent == nil {
		return nil, shared.NewDomainError("INVALID_PARENT", "Parent category is required")
	}
	if parent.IsSub() {
		return nil, shared.NewDomainError("INVALID_PARENT", "Sub-categories cannot have children")
	}

	category, err := NewCategory(name)
	if err != nil {
		return nil, err
	}

	parentID := parent.ID
	category.ParentID = &parentID
	return category, nil
}

// NewDefaultCategory creates the fallback category for orphaned products
func NewDefaultCategory(name string) (*Category, error) {
	category, err := NewCategory(name)
	if err != nil {
		return nil, err
	}

	category.IsDefault = true
	return category, nil
}

// Rename changes the category name
func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}

	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// PromoteToRoot detaches the category from its parent
func (c *Category) PromoteToRoot() {
	c.ParentID = nil
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// IsSub reports whether the category sits under a parent
func (c *Category) IsSub() bool {
	return c.ParentID != nil
}
