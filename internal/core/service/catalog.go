package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopmart/storefront/internal/core/domain"
	"github.com/shopmart/storefront/internal/core/port"
)

var _ port.ProductsQuerier = (*Catalog)(nil)

// Catalog is the read-only product store plus the query engine over it.
// Records are loaded once from the source and never mutated; every
// operation returns copies, so callers cannot reach the backing slices.
type Catalog struct {
	categories []domain.Category
	products   []domain.Product
	byID       map[string]int
	bySlug     map[string]int
}

func NewCatalog(ctx context.Context, src port.CatalogSource) (*Catalog, error) {
	const op = "NewCatalog"

	cs, ps, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c := &Catalog{
		categories: cs,
		products:   ps,
		byID:       make(map[string]int, len(ps)),
		bySlug:     make(map[string]int, len(cs)),
	}
	for i, p := range ps {
		c.byID[p.ID] = i
	}
	for i, cat := range cs {
		c.bySlug[cat.Slug] = i
	}
	return c, nil
}

func (c *Catalog) ByID(id string) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// ByCategory returns the category's products in catalog order. An unknown
// slug yields an empty slice, not an error.
func (c *Catalog) ByCategory(slug string) []domain.Product {
	var res []domain.Product
	for _, p := range c.products {
		if p.Category == slug {
			res = append(res, p)
		}
	}
	return res
}

// Search matches the query case-insensitively against title, description
// and category; a hit in any of the three includes the product. No ranking.
func (c *Catalog) Search(query string) []domain.Product {
	var res []domain.Product
	for _, p := range c.products {
		if matchesText(p, query) {
			res = append(res, p)
		}
	}
	return res
}

func (c *Catalog) Featured() []domain.Product {
	var res []domain.Product
	for _, p := range c.products {
		if p.Featured {
			res = append(res, p)
		}
	}
	return res
}

func (c *Catalog) Categories() []domain.Category {
	res := make([]domain.Category, len(c.categories))
	copy(res, c.categories)
	return res
}

func (c *Catalog) CategoryBySlug(slug string) (domain.Category, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return domain.Category{}, false
	}
	return c.categories[i], true
}

// Query applies the filter pipeline and sorts the result. Filters compose
// with AND semantics; the sort is stable with catalog order as the
// tie-break, so identical inputs always produce identical ordered output.
func (c *Catalog) Query(q domain.ProductQuery) []domain.Product {
	res := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.Search != "" && !matchesText(p, q.Search) {
			continue
		}
		if !q.InPriceRange(p.Price) {
			continue
		}
		if q.MinRating > 0 && p.Rating < q.MinRating {
			continue
		}
		res = append(res, p)
	}

	sortProducts(res, q.Sort)
	return res
}

func matchesText(p domain.Product, query string) bool {
	query = strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}

func sortProducts(ps []domain.Product, key domain.SortKey) {
	var less func(a, b domain.Product) bool
	switch key {
	case domain.SortPriceLow:
		less = func(a, b domain.Product) bool { return a.Price < b.Price }
	case domain.SortPriceHigh:
		less = func(a, b domain.Product) bool { return a.Price > b.Price }
	case domain.SortRating:
		less = func(a, b domain.Product) bool { return a.Rating > b.Rating }
	case domain.SortDiscount:
		less = func(a, b domain.Product) bool { return a.Discount > b.Discount }
	default:
		less = func(a, b domain.Product) bool { return a.ReviewCount > b.ReviewCount }
	}
	sort.SliceStable(ps, func(i, j int) bool { return less(ps[i], ps[j]) })
}
