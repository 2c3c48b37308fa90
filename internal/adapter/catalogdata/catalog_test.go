package catalogdata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmart/storefront/internal/adapter/catalogdata"
)

func TestLoadEmbedded(t *testing.T) {
	src := catalogdata.NewSource("")

	cs, ps, err := src.Load(t.Context())
	require.NoError(t, err)

	assert.Len(t, cs, 9)
	assert.Len(t, ps, 15)

	t.Run("CategorySlugsAreUnique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, c := range cs {
			assert.False(t, seen[c.Slug], "duplicate slug %q", c.Slug)
			seen[c.Slug] = true
		}
	})

	t.Run("ProductsReferenceKnownCategories", func(t *testing.T) {
		slugs := make(map[string]bool)
		for _, c := range cs {
			slugs[c.Slug] = true
		}
		for _, p := range ps {
			assert.True(t, slugs[p.Category],
				"product %q references unknown category %q", p.ID, p.Category)
			assert.NotEmpty(t, p.Images, "product %q has no images", p.ID)
		}
	})

	t.Run("DenormalizedCountsAreLoadedVerbatim", func(t *testing.T) {
		// the fixture counts deliberately drift from the actual product
		// list; loading must not "fix" them
		actual := make(map[string]int)
		for _, p := range ps {
			actual[p.Category]++
		}
		var drift bool
		for _, c := range cs {
			if c.ProductCount != actual[c.Slug] {
				drift = true
			}
		}
		assert.True(t, drift)
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("OverridesEmbedded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		doc := `{
			"categories": [{"id": "1", "name": "X", "slug": "x", "product_count": 5}],
			"products": [{
				"id": "p1", "title": "P1", "price": 10, "original_price": 12,
				"rating": 4.0, "review_count": 1, "category": "x",
				"images": ["p1.jpg"], "in_stock": true
			}]
		}`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

		cs, ps, err := catalogdata.NewSource(path).Load(t.Context())
		require.NoError(t, err)
		require.Len(t, cs, 1)
		require.Len(t, ps, 1)
		assert.Equal(t, "P1", ps[0].Title)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, _, err := catalogdata.NewSource("no/such/file.json").Load(t.Context())
		require.Error(t, err)
	})

	t.Run("UnknownCategoryReference", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		doc := `{
			"categories": [],
			"products": [{"id": "p1", "title": "P1", "price": 10,
				"category": "ghost", "images": ["p1.jpg"]}]
		}`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

		_, _, err := catalogdata.NewSource(path).Load(t.Context())
		require.Error(t, err)
	})

	t.Run("DuplicateProductID", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		doc := `{
			"categories": [{"id": "1", "name": "X", "slug": "x"}],
			"products": [
				{"id": "p1", "title": "P1", "price": 10, "category": "x", "images": ["a"]},
				{"id": "p1", "title": "P2", "price": 20, "category": "x", "images": ["b"]}
			]
		}`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

		_, _, err := catalogdata.NewSource(path).Load(t.Context())
		require.Error(t, err)
	})
}
