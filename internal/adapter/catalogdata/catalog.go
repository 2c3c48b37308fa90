// Package catalogdata is the static catalog source: a JSON fixture
// embedded into the binary, optionally overridden by a file path from the
// configuration. Records are decoded once at startup and handed to the
// core as immutable domain values.
package catalogdata

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopmart/storefront/internal/core/domain"
	"github.com/shopmart/storefront/internal/core/port"
)

//go:embed products.json
var embeddedCatalog []byte

var _ port.CatalogSource = (*Source)(nil)

type (
	category struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Slug         string `json:"slug"`
		Image        string `json:"image"`
		ProductCount int    `json:"product_count"`
	}

	product struct {
		ID            string   `json:"id"`
		Title         string   `json:"title"`
		Price         float64  `json:"price"`
		OriginalPrice float64  `json:"original_price"`
		Discount      int      `json:"discount"`
		Rating        float64  `json:"rating"`
		ReviewCount   int      `json:"review_count"`
		Description   string   `json:"description"`
		Category      string   `json:"category"`
		Images        []string `json:"images"`
		InStock       bool     `json:"in_stock"`
		Featured      bool     `json:"featured"`
	}

	catalogFile struct {
		Categories []category `json:"categories"`
		Products   []product  `json:"products"`
	}
)

// Source loads the catalog fixture. An empty path selects the embedded
// fixture.
type Source struct {
	path string
}

func NewSource(path string) Source {
	return Source{path}
}

func (s Source) Load(
	ctx context.Context,
) ([]domain.Category, []domain.Product, error) {
	const op = "Source.Load"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	data := embeddedCatalog
	if s.path != "" {
		var err error
		data, err = os.ReadFile(s.path)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	var cf catalogFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := validate(cf); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	cs, ps := toDomain(cf)
	log.Info("catalog loaded", "nCategories", len(cs), "nProducts", len(ps))
	return cs, ps, nil
}

// validate checks structural invariants only: unique IDs and slugs, known
// category per product, non-empty image lists. The denormalized category
// product_count is deliberately not checked against the products.
func validate(cf catalogFile) error {
	slugs := make(map[string]struct{}, len(cf.Categories))
	for _, c := range cf.Categories {
		if _, ok := slugs[c.Slug]; ok {
			return fmt.Errorf("duplicate category slug %q", c.Slug)
		}
		slugs[c.Slug] = struct{}{}
	}

	ids := make(map[string]struct{}, len(cf.Products))
	for _, p := range cf.Products {
		if _, ok := ids[p.ID]; ok {
			return fmt.Errorf("duplicate product id %q", p.ID)
		}
		ids[p.ID] = struct{}{}

		if _, ok := slugs[p.Category]; !ok {
			return fmt.Errorf(
				"product %q references unknown category %q", p.ID, p.Category,
			)
		}
		if len(p.Images) == 0 {
			return fmt.Errorf("product %q has no images", p.ID)
		}
	}
	return nil
}

func toDomain(cf catalogFile) ([]domain.Category, []domain.Product) {
	cs := make([]domain.Category, 0, len(cf.Categories))
	for _, c := range cf.Categories {
		cs = append(cs, domain.Category{
			ID:           c.ID,
			Name:         c.Name,
			Slug:         c.Slug,
			Image:        c.Image,
			ProductCount: c.ProductCount,
		})
	}

	ps := make([]domain.Product, 0, len(cf.Products))
	for _, p := range cf.Products {
		ps = append(ps, domain.Product{
			ID:            p.ID,
			Title:         p.Title,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Discount:      p.Discount,
			Rating:        p.Rating,
			ReviewCount:   p.ReviewCount,
			Description:   p.Description,
			Category:      p.Category,
			Images:        p.Images,
			InStock:       p.InStock,
			Featured:      p.Featured,
		})
	}
	return cs, ps
}
