package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	category, err := NewCategory("Clothing")
	require.NoError(t, err)

	assert.Equal(t, "Clothing", category.Name)
	assert.Nil(t, category.ParentID)
	assert.False(t, category.IsSub())
	assert.False(t, category.IsDefault)
}

func TestNewSubCategory(t *testing.T) {
	parent, err := NewCategory("Clothing")
	require.NoError(t, err)

	child, err := NewSubCategory("Jackets", parent)
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, parent.ID, *child.ParentID)
	assert.True(t, child.IsSub())

	_, err = NewSubCategory("Denim", child)
	assertDomainCode(t, err, "INVALID_PARENT")

	_, err = NewSubCategory("Orphan", nil)
	assertDomainCode(t, err, "INVALID_PARENT")
}

func TestNewDefaultCategory(t *testing.T) {
	category, err := NewDefaultCategory("Uncategorized")
	require.NoError(t, err)
	assert.True(t, category.IsDefault)
}

func TestCategory_PromoteToRoot(t *testing.T) {
	parent, err := NewCategory("Clothing")
	require.NoError(t, err)
	child, err := NewSubCategory("Jackets", parent)
	require.NoError(t, err)

	child.PromoteToRoot()
	assert.Nil(t, child.ParentID)
	assert.False(t, child.IsSub())
}

func TestNewBanner(t *testing.T) {
	banner, err := NewBanner("https://cdn.example.com/banner.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/banner.png", banner.Link)

	_, err = NewBanner("  ")
	assertDomainCode(t, err, "INVALID_LINK")
}
