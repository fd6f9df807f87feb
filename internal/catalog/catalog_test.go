package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ergoshop/internal/models"
	"ergoshop/internal/store"
)

func TestEnsureSeedsOnce(t *testing.T) {
	s := store.NewMemoryStore()
	cat := New(s)

	require.NoError(t, cat.Ensure())

	products, err := cat.List()
	require.NoError(t, err)
	require.Len(t, products, 6)
	assert.Equal(t, "P001", products[0].ID)
	assert.Equal(t, "Logitech Mouse", products[0].Name)

	// A second Ensure must not reseed or reorder.
	require.NoError(t, cat.Ensure())
	again, err := cat.List()
	require.NoError(t, err)
	assert.Equal(t, products, again)
}

func TestEnsureLeavesExistingCatalogAlone(t *testing.T) {
	s := store.NewMemoryStore()
	existing := []models.Product{{ID: "X1", Name: "Custom", Price: 5, Category: "Misc"}}
	require.NoError(t, s.Put("AllProducts", existing))

	cat := New(s)
	require.NoError(t, cat.Ensure())

	products, err := cat.List()
	require.NoError(t, err)
	assert.Equal(t, existing, products)
}

func TestGet(t *testing.T) {
	cat := New(store.NewMemoryStore())
	require.NoError(t, cat.Ensure())

	p, found, err := cat.Get("P004")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Perixx Keyboard", p.Name)

	_, found, err = cat.Get("P999")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	cat := New(store.NewMemoryStore())
	require.NoError(t, cat.Ensure())

	categories, err := cat.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Mouses", "Keyboards", "Chairs"}, categories)
}
